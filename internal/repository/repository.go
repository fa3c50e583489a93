package repository

import (
	"context"
	"errors"

	"equipment-rental-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup, update or delete matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned when the store rejects a write on a foreign key.
	ErrConstraint = errors.New("constraint violation")
)

// RentalOrder selects the sort column for rental request listings.
type RentalOrder int

const (
	OrderByStartDate RentalOrder = iota
	OrderByEndDate
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByStatus(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
	Delete(ctx context.Context, id string) error
}

type RentalRequestRepository interface {
	Create(ctx context.Context, r *domain.RentalRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error

	// Listings carry the joined equipment name.
	ListByStatuses(ctx context.Context, statuses []domain.RentalStatus, order RentalOrder) ([]domain.RentalRequest, error)
	ListOverdue(ctx context.Context, today domain.Date) ([]domain.RentalRequest, error)

	// ListActiveRanges returns the date ranges of pending and rented requests for one equipment.
	ListActiveRanges(ctx context.Context, equipmentID string) ([]domain.DateRange, error)
	DeleteByEquipment(ctx context.Context, equipmentID string) (int64, error)
}
