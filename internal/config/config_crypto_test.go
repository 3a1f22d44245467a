package config_test

import (
	"os"
	"testing"

	"github.com/careerclarity/careerclarity-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "short-key")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should panic when CRYPTO_KEY is not 32 bytes")
		}
	}()

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})

	os.Setenv("CRYPTO_KEY", "short-key")
	config.InitCrypto()
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "4821"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomized, ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})
}
