package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		var ldt LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2026-09-01T14:30:00"`), &ldt))
		require.Equal(t, 14, ldt.Hour())
		require.Equal(t, 30, ldt.Minute())

		out, err := json.Marshal(ldt)
		require.NoError(t, err)
		require.Equal(t, `"2026-09-01T14:30:00"`, string(out))
	})

	t.Run("ZeroMarshalsNull", func(t *testing.T) {
		out, err := json.Marshal(LocalDateTime{})
		require.NoError(t, err)
		require.Equal(t, "null", string(out))
	})

	t.Run("NullUnmarshalsZero", func(t *testing.T) {
		var ldt LocalDateTime
		require.NoError(t, json.Unmarshal([]byte("null"), &ldt))
		require.True(t, ldt.IsZero())
	})
}

func TestLocalDateTimeScan(t *testing.T) {
	var ldt LocalDateTime
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, ldt.Scan(at))
	require.True(t, ldt.Time.Equal(at))

	require.Error(t, ldt.Scan(42))
}
