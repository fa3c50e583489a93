package scheduler

import (
	"testing"
	"time"

	"equipment-rental-backend/internal/config"
	"equipment-rental-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler(t *testing.T) {
	t.Run("RegistersJobs", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{ReportOverdueRentals: "0 0 9 * * *"}}
		s, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg))
		require.NoError(t, err)

		entries := s.Entries()
		require.Len(t, entries, 1)

		from := time.Date(2025, time.February, 10, 10, 0, 0, 0, time.UTC)
		next := entries[0].Schedule.Next(from)
		assert.True(t, next.Equal(time.Date(2025, time.February, 11, 9, 0, 0, 0, time.UTC)), "next run %s", next)
	})

	t.Run("InvalidSchedule", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{ReportOverdueRentals: "every morning"}}
		_, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg))
		assert.ErrorContains(t, err, "ReportOverdueRentals")
	})

	t.Run("StartStop", func(t *testing.T) {
		cfg := &config.Config{Scheduler: config.SchedulerConfig{ReportOverdueRentals: "0 0 9 * * *"}}
		s, err := NewScheduler(jobs.NewJobRunner(nil, nil, cfg))
		require.NoError(t, err)

		s.Start()
		s.Stop()
	})
}
