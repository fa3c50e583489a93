package utils

import (
	"sort"

	"equipment-rental-backend/internal/domain"
)

// Overlaps reports whether two closed date ranges share at least one day.
// Ranges that only touch on a boundary day overlap.
func Overlaps(a, b domain.DateRange) bool {
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

// IsAvailable reports whether candidate overlaps none of the existing reservations.
// Callers pass only reservations that still hold the equipment (pending or rented).
func IsAvailable(candidate domain.DateRange, existing []domain.DateRange) bool {
	_, conflict := FindConflict(candidate, existing)
	return !conflict
}

// FindConflict returns the first existing range that overlaps candidate.
func FindConflict(candidate domain.DateRange, existing []domain.DateRange) (domain.DateRange, bool) {
	for _, r := range existing {
		if Overlaps(candidate, r) {
			return r, true
		}
	}
	return domain.DateRange{}, false
}

// ReservedDays expands ranges into the individual calendar days they cover,
// both ends included, de-duplicated and sorted ascending.
func ReservedDays(ranges []domain.DateRange) []domain.Date {
	seen := make(map[domain.Date]struct{})
	days := make([]domain.Date, 0)
	for _, r := range ranges {
		if r.End.Before(r.Start) {
			continue
		}
		for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
