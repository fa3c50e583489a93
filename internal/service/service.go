package service

import (
	"context"
	"time"

	"equipment-rental-backend/internal/domain"
)

// SubmitRentalInput is what a requester fills in. Dates are YYYY-MM-DD strings.
type SubmitRentalInput struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	StudentID   string `json:"student_id" validate:"required,max=50"`
	Phone       string `json:"phone" validate:"required,max=30"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
}

type EquipmentService interface {
	ListAvailable(ctx context.Context) ([]domain.Equipment, error)
	ListAll(ctx context.Context) ([]domain.Equipment, error)
	AddEquipment(ctx context.Context, name string) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type RentalService interface {
	SubmitRentalRequest(ctx context.Context, input SubmitRentalInput) (*domain.RentalRequest, error)
	ApproveRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error)
	ReturnRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error)
	ListActiveRequests(ctx context.Context) ([]domain.RentalRequest, error)
	ListRentedRequests(ctx context.Context) ([]domain.RentalRequest, error)
	ReservedDates(ctx context.Context, equipmentID string) ([]domain.Date, error)
}

type AdminService interface {
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
	Authorize(token string) error
}

type EmailService interface {
	SendRentalRequestNotification(ctx context.Context, req *domain.RentalRequest, equipmentName string) error
	SendOverdueDigest(ctx context.Context, overdue []domain.RentalRequest) error
}
