package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending  RentalStatus = "pending"
	RentalStatusRented   RentalStatus = "rented"
	RentalStatusReturned RentalStatus = "returned"
)

// ActiveRentalStatuses are the statuses that still hold a reservation on the equipment.
var ActiveRentalStatuses = []RentalStatus{RentalStatusPending, RentalStatusRented}

// IsActive reports whether a request in this status blocks other reservations.
func (s RentalStatus) IsActive() bool {
	return s == RentalStatusPending || s == RentalStatusRented
}

type RentalRequest struct {
	ID          string       `json:"id"`
	EquipmentID string       `json:"equipment_id"`
	Name        string       `json:"name"`
	StudentID   string       `json:"student_id"`
	Phone       string       `json:"phone"`
	StartDate   Date         `json:"start_date"`
	EndDate     Date         `json:"end_date"`
	Status      RentalStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`

	// Joined from equipments; nil when the row could not be joined.
	EquipmentName *string `json:"equipment_name"`
}

func (r *RentalRequest) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// EquipmentNameOr returns the joined equipment name, or fallback when there is none.
func (r *RentalRequest) EquipmentNameOr(fallback string) string {
	if r.EquipmentName == nil {
		return fallback
	}
	return *r.EquipmentName
}
