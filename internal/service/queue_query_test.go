package service

import (
	"testing"
	"time"

	"antrian-truk-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		sortDir  string
		wantBy   string
		wantDesc bool
	}{
		{"defaults", "", "", "registerTime", true},
		{"whitelisted field", "customerName", "asc", "customerName", false},
		{"unknown field falls back", "drop table", "asc", "registerTime", false},
		{"explicit desc", "status", "desc", "status", true},
		{"garbage direction means desc", "status", "sideways", "status", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by, desc := normalizeSort(tt.sortBy, tt.sortDir)
			assert.Equal(t, tt.wantBy, by)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestBuildQueueFilterDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)

	filter := buildQueueFilter(dto.ListQueueRequest{}, now)

	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), *filter.From)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, int(999*time.Millisecond), time.Local), *filter.To)
}

func TestBuildQueueFilterExplicitRangeWins(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)

	filter := buildQueueFilter(dto.ListQueueRequest{
		Date:     "2025-06-01",
		DateFrom: "2025-05-01",
		DateTo:   "2025-05-31",
	}, now)

	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local), *filter.From)
	assert.Equal(t, 31, filter.To.Day())
	assert.Equal(t, 23, filter.To.Hour())
}

func TestBuildQueueFilterOpenEndedRange(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)

	filter := buildQueueFilter(dto.ListQueueRequest{DateFrom: "2025-05-01"}, now)

	require.NotNil(t, filter.From)
	assert.Nil(t, filter.To)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int
		wantPage   int
		wantLimit  int
		wantPages  int
	}{
		{"defaults", 0, 0, 40, 1, 15, 3},
		{"past end clamps to last", 99, 10, 25, 3, 10, 3},
		{"negative page becomes first", -2, 10, 25, 1, 10, 3},
		{"empty set keeps one page", 1, 10, 0, 1, 10, 1},
		{"exact boundary", 2, 10, 20, 2, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, pages := normalizePage(tt.page, tt.limit, tt.totalItems)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantPages, pages)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, paginate(items, 2, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
}
