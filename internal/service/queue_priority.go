package service

import (
	"sort"
	"time"

	"antrian-truk-be/internal/entity"
)

// Priority ranks, ascending urgency order for display sorting.
const (
	RankOverdue = 0
	RankWarning = 1
	RankNormal  = 2
)

// warningThresholdMinutes is the remaining-time window that flips a normal
// entry to warning.
const warningThresholdMinutes = 15

// slaBudgetMinutes returns the SLA budget and anchor instant for an entry, or
// ok=false when no budget applies (terminal status or missing anchor).
func slaBudgetMinutes(e *entity.QueueEntry) (budget int, anchor time.Time, ok bool) {
	switch e.Status {
	case entity.StatusMenunggu, entity.StatusInWH:
		return 30, e.RegisterTime, true
	case entity.StatusProses:
		if e.StartTime == nil {
			return 0, time.Time{}, false
		}
		if e.Category == entity.CategoryReceiving {
			return 120, *e.StartTime, true
		}
		return 90, *e.StartTime, true
	default:
		return 0, time.Time{}, false
	}
}

// PriorityRank classifies an entry against its SLA budget at the given
// instant: overdue when the budget is spent, warning when at most 15 minutes
// remain, normal otherwise or when no budget applies.
func PriorityRank(e *entity.QueueEntry, now time.Time) int {
	budget, anchor, ok := slaBudgetMinutes(e)
	if !ok {
		return RankNormal
	}
	elapsed := int(now.Sub(anchor) / time.Minute)
	remaining := budget - elapsed
	if remaining <= 0 {
		return RankOverdue
	}
	if remaining <= warningThresholdMinutes {
		return RankWarning
	}
	return RankNormal
}

// SortByPriority reorders entries ascending by rank. The sort is stable so
// equal ranks keep their fetch order; ranking the same snapshot twice at the
// same instant yields the same order.
func SortByPriority(entries []*entity.QueueEntry, now time.Time) {
	type ranked struct {
		entry *entity.QueueEntry
		rank  int
	}
	items := make([]ranked, len(entries))
	for i, e := range entries {
		items[i] = ranked{entry: e, rank: PriorityRank(e, now)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].rank < items[j].rank
	})
	for i := range items {
		entries[i] = items[i].entry
	}
}
