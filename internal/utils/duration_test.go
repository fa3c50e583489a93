package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	assert.Equal(t, 1, RentalDays(span(1, 1)))
	assert.Equal(t, 3, RentalDays(span(1, 3)))
}

func TestValidateDuration(t *testing.T) {
	t.Run("End before start", func(t *testing.T) {
		err := ValidateDuration(span(4, 1), DefaultMaxRentalDays)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("Same day", func(t *testing.T) {
		err := ValidateDuration(span(1, 1), DefaultMaxRentalDays)
		assert.ErrorIs(t, err, ErrEndNotAfterStart)
	})

	t.Run("At the cap", func(t *testing.T) {
		assert.NoError(t, ValidateDuration(span(1, 3), DefaultMaxRentalDays))
	})

	t.Run("One day over the cap", func(t *testing.T) {
		err := ValidateDuration(span(1, 4), DefaultMaxRentalDays)
		assert.ErrorIs(t, err, ErrDurationExceeded)
		assert.Contains(t, err.Error(), "4 days requested")
	})

	t.Run("Week cap", func(t *testing.T) {
		assert.NoError(t, ValidateDuration(span(1, 7), 7))
		assert.ErrorIs(t, ValidateDuration(span(1, 8), 7), ErrDurationExceeded)
	})

	t.Run("Cap disabled", func(t *testing.T) {
		assert.NoError(t, ValidateDuration(span(1, 28), 0))
	})
}
