package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 23:30 UTC belongs to the next local day in Madrid
	ref := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	start, end := DayWindow(ref, madrid)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, madrid), start)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, madrid), end)
	assert.False(t, ref.Before(start))
	assert.True(t, ref.Before(end), "the window is half-open")
}

func TestDateKey(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	ref := time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-02", DateKey(ref, time.UTC))
	assert.Equal(t, "2026-03-03", DateKey(ref, madrid))
}

func TestMinutesOfDay(t *testing.T) {
	ref := time.Date(2026, 3, 2, 9, 41, 59, 0, time.UTC)
	assert.Equal(t, 9*60+41, MinutesOfDay(ref, time.UTC))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC), time.UTC))
	assert.True(t, IsWeekend(time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC), time.UTC))
	assert.False(t, IsWeekend(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), time.UTC))
}
