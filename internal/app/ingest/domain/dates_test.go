package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("bare date parses to midnight UTC", func(t *testing.T) {
		got, err := ParseDate("2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("space separated datetime", func(t *testing.T) {
		got, err := ParseDate("2024-01-01 13:45:10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 13, 45, 10, 0, time.UTC), got)
	})

	t.Run("RFC3339", func(t *testing.T) {
		got, err := ParseDate("2024-01-01T13:45:10+02:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2024, 1, 1, 11, 45, 10, 0, time.UTC)))
	})

	t.Run("malformed value returns ErrMalformedDate", func(t *testing.T) {
		for _, v := range []string{"not-a-date", "01/05/2024", "2024-13-40", ""} {
			_, err := ParseDate(v)
			assert.ErrorIs(t, err, ErrMalformedDate, "value %q", v)
		}
	})
}
