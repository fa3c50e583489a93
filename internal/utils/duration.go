package utils

import (
	"errors"
	"fmt"

	"equipment-rental-backend/internal/domain"
)

// DefaultMaxRentalDays counts the pickup day: a 3-day cap allows two nights.
const DefaultMaxRentalDays = 3

var (
	ErrEndNotAfterStart = errors.New("end date must be after start date")
	ErrDurationExceeded = errors.New("rental period exceeds the maximum allowed duration")
)

// RentalDays returns the number of calendar days in r, both ends included.
func RentalDays(r domain.DateRange) int {
	return r.End.DaysSince(r.Start) + 1
}

// ValidateDuration checks that r ends strictly after it starts and spans at most maxDays days.
// A non-positive maxDays disables the cap.
func ValidateDuration(r domain.DateRange, maxDays int) error {
	if !r.End.After(r.Start) {
		return ErrEndNotAfterStart
	}
	if maxDays > 0 && RentalDays(r) > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrDurationExceeded, RentalDays(r), maxDays)
	}
	return nil
}
