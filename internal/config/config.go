package config

import (
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Init loads configuration from the environment with sane defaults.
// It must be called before any other config accessor.
func Init() {
	v = viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "5001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STUDENT_OTP_TTL_MINUTES", 5)
	v.SetDefault("INSTITUTE_OTP_TTL_MINUTES", 2)
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
}

func GetString(key string) string {
	return v.GetString(key)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

// IsProduction reports whether the service runs with ENV=production.
// Dev-only behavior (echoing OTP codes in responses) keys off this.
func IsProduction() bool {
	return v.GetString("ENV") == "production"
}
