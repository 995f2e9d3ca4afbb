package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024-3-5")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	got, err = NormalizeDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", got)

	got, err = NormalizeDate("Jan 2, 2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", got)

	_, err = NormalizeDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NormalizeDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNormalizeDateIdempotent(t *testing.T) {
	for _, in := range []string{"2024-3-5", "2025-01-02", "1999-12-31"} {
		once, err := NormalizeDate(in)
		require.NoError(t, err)
		twice, err := NormalizeDate(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime("9:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = NormalizeTime("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)

	got, err = NormalizeTime("0:00")
	require.NoError(t, err)
	assert.Equal(t, "00:00", got)

	for _, bad := range []string{"23:60", "24:00", "9:5", "930", "ten:30", "-1:00", ""} {
		_, err := NormalizeTime(bad)
		assert.ErrorIs(t, err, ErrInvalidTime, "input %q", bad)
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)

	for _, bad := range []string{"no-at-sign", "two@@example.com", "a@b", "spaces in@example.com", "@example.com", "a@"} {
		_, err := NormalizeEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidEmail, "input %q", bad)
	}
}

func TestNormalizeMode(t *testing.T) {
	got, err := NormalizeMode("ONLINE")
	require.NoError(t, err)
	assert.Equal(t, "online", got)

	got, err = NormalizeMode(" Hybrid ")
	require.NoError(t, err)
	assert.Equal(t, "hybrid", got)

	_, err = NormalizeMode("virtual")
	assert.ErrorIs(t, err, ErrInvalidMode)
}
