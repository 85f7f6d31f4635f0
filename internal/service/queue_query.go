package service

import (
	"strings"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/pkg/dateutil"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/implementation"
)

const defaultPageLimit = 15

// normalizeSort applies the sortable-field whitelist, falling back to
// registerTime, with descending as the default direction.
func normalizeSort(sortBy, sortDir string) (string, bool) {
	if !implementation.SortableField(sortBy) {
		sortBy = "registerTime"
	}
	desc := strings.ToLower(sortDir) != "asc"
	return sortBy, desc
}

// buildQueueFilter turns the raw list parameters into a repository fetch
// specification. Date handling: an explicit from/to range wins (open-ended
// sides allowed), otherwise the single date (or today) expands to a full
// local day.
func buildQueueFilter(req dto.ListQueueRequest, now time.Time) contract.QueueEntryFilter {
	from, to := dateutil.BuildRange(req.Date, req.DateFrom, req.DateTo, now)
	sortBy, sortDesc := normalizeSort(req.SortBy, req.SortDir)

	return contract.QueueEntryFilter{
		From:     from,
		To:       to,
		Status:   strings.TrimSpace(req.Status),
		Category: strings.TrimSpace(req.Category),
		Search:   strings.TrimSpace(req.Search),
		SortBy:   sortBy,
		SortDesc: sortDesc,
	}
}

// normalizePage clamps the requested page into [1, totalPages]. Requests past
// the end land on the last page instead of returning an empty slice.
func normalizePage(page, limit int, totalItems int) (int, int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if page < 1 {
		page = 1
	}
	totalPages := (totalItems + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, limit, totalPages
}

// paginate slices one page out of the ranked result set.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
