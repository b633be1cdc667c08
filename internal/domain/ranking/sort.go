package ranking

import (
	"sort"
	"time"
)

// SortRanked sorts profiles into listing order: priority descending,
// completeness descending, last activity descending with nulls last, then
// creation time descending. The SID comparison at the end makes the order a
// total one, so two calls over the same snapshot always agree regardless of
// input order.
func SortRanked(items []RankedProfile) {
	sort.SliceStable(items, func(i, j int) bool {
		return rankedBefore(items[i], items[j])
	})
}

func rankedBefore(a, b RankedProfile) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.Completeness != b.Completeness {
		return a.Completeness > b.Completeness
	}
	if c := compareLastActive(a.LastActiveAt, b.LastActiveAt); c != 0 {
		return c > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.SID > b.SID
}

// compareLastActive orders more-recent activity first and missing values last.
func compareLastActive(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.After(*b):
		return 1
	case b.After(*a):
		return -1
	default:
		return 0
	}
}

// SliceAfterCursor returns up to take items following the item with the
// cursor SID in the already-sorted sequence, plus the cursor for the next
// page (empty when the sequence is exhausted). An empty cursor starts from
// the top; an unknown cursor also starts from the top rather than erroring,
// since the underlying row may have changed between pages (weak consistency
// is accepted across page fetches).
func SliceAfterCursor(items []RankedProfile, cursor string, take int) (page []RankedProfile, nextCursor string) {
	if take <= 0 {
		return nil, ""
	}

	start := 0
	if cursor != "" {
		for i, item := range items {
			if item.SID == cursor {
				start = i + 1
				break
			}
		}
	}

	end := start + take
	if end > len(items) {
		end = len(items)
	}
	page = items[start:end]

	if end < len(items) && len(page) > 0 {
		nextCursor = page[len(page)-1].SID
	}
	return page, nextCursor
}
