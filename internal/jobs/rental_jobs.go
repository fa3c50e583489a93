package jobs

import (
	"context"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"
)

// ReportOverdueRentals lists rented requests whose end date has passed and
// mails the admin one digest. It only reads; statuses are left unchanged.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
		defer cancel()

		today := domain.DateOf(jr.now().UTC())
		overdue, err := jr.rentalRepo.ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		logger.Info("Found overdue rentals", "count", len(overdue), "today", today)
		if len(overdue) == 0 {
			return
		}

		for _, r := range overdue {
			logger.Debug("Overdue rental",
				"request_id", r.ID,
				"equipment", r.EquipmentNameOr(""),
				"renter", r.Name,
				"end_date", r.EndDate,
				"days_late", today.DaysSince(r.EndDate))
		}

		if err := jr.emailSvc.SendOverdueDigest(ctx, overdue); err != nil {
			logger.Error("Failed to send overdue digest", "error", err, "count", len(overdue))
		}
	})
}
