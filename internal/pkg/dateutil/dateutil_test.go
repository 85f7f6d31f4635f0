package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	got, ok := ParseDateOnly("2025-06-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), got)

	_, ok = ParseDateOnly("")
	assert.False(t, ok)

	_, ok = ParseDateOnly("10-06-2025")
	assert.False(t, ok)
}

func TestDayRange(t *testing.T) {
	day := time.Date(2025, 6, 10, 14, 30, 12, 0, time.Local)

	from, to := DayRange(day)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, int(999*time.Millisecond), time.Local), to)
}

func TestBuildRangeExplicitPairWins(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	from, to := BuildRange("2025-06-05", "2025-05-01", "2025-05-31", now)

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, 5, int(from.Month()))
	assert.Equal(t, 31, to.Day())
}

func TestBuildRangeSingleDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	from, to := BuildRange("2025-06-05", "", "", now)

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, 5, from.Day())
	assert.Equal(t, 5, to.Day())
	assert.Equal(t, 23, to.Hour())
}

func TestBuildRangeDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	from, to := BuildRange("", "", "", now)

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, 10, from.Day())
	assert.Equal(t, 10, to.Day())
}

func TestSetIfAbsent(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	got := SetIfAbsent(nil, now)
	require.NotNil(t, got)
	assert.Equal(t, now, *got)

	kept := SetIfAbsent(&earlier, now)
	assert.Equal(t, &earlier, kept)
}

func TestMinutesBetween(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

	assert.Equal(t, 90, MinutesBetween(start, start.Add(90*time.Minute)))
	assert.Equal(t, 0, MinutesBetween(start, start.Add(30*time.Second)))
	assert.Equal(t, -1, MinutesBetween(start, start.Add(-time.Minute)))
}
