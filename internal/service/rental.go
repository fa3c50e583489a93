package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository"
	"equipment-rental-backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

// RentalPolicy holds the booking rules read from configuration.
type RentalPolicy struct {
	MaxDays             int
	MarkPendingOnSubmit bool
}

type rentalService struct {
	rentalRepo    repository.RentalRequestRepository
	equipmentRepo repository.EquipmentRepository
	emailSvc      EmailService
	policy        RentalPolicy
	validate      *validator.Validate
}

func NewRentalService(
	rentalRepo repository.RentalRequestRepository,
	equipmentRepo repository.EquipmentRepository,
	emailSvc EmailService,
	policy RentalPolicy,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		emailSvc:      emailSvc,
		policy:        policy,
		validate:      newValidator(),
	}
}

func trimInput(in SubmitRentalInput) SubmitRentalInput {
	in.EquipmentID = strings.TrimSpace(in.EquipmentID)
	in.Name = strings.TrimSpace(in.Name)
	in.StudentID = strings.TrimSpace(in.StudentID)
	in.Phone = strings.TrimSpace(in.Phone)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	return in
}

func (s *rentalService) parseRange(in SubmitRentalInput) (domain.DateRange, error) {
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return domain.DateRange{}, &ValidationError{Field: "start_date", Message: err.Error(), Err: err}
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return domain.DateRange{}, &ValidationError{Field: "end_date", Message: err.Error(), Err: err}
	}
	r := domain.NewDateRange(start, end)
	if err := utils.ValidateDuration(r, s.policy.MaxDays); err != nil {
		return domain.DateRange{}, &ValidationError{Field: "end_date", Message: err.Error(), Err: err}
	}
	return r, nil
}

func (s *rentalService) SubmitRentalRequest(ctx context.Context, input SubmitRentalInput) (*domain.RentalRequest, error) {
	logger.EnterMethod("rentalService.SubmitRentalRequest", "equipmentID", input.EquipmentID)

	input = trimInput(input)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	period, err := s.parseRange(input)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, input.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("equipment %s: %w", input.EquipmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load equipment: %w", err)
	}
	if equipment.Status != domain.EquipmentStatusAvailable {
		return nil, fmt.Errorf("%w: %s is %s", ErrEquipmentUnavailable, equipment.Name, equipment.Status)
	}

	existing, err := s.rentalRepo.ListActiveRanges(ctx, equipment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	if conflict, found := utils.FindConflict(period, existing); found {
		return nil, fmt.Errorf("%w: %s is reserved %s", ErrDateConflict, equipment.Name, conflict)
	}

	req := &domain.RentalRequest{
		EquipmentID: equipment.ID,
		Name:        input.Name,
		StudentID:   input.StudentID,
		Phone:       input.Phone,
		StartDate:   period.Start,
		EndDate:     period.End,
		Status:      domain.RentalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, req); err != nil {
		logger.ExitMethodWithError("rentalService.SubmitRentalRequest", err, "equipmentID", equipment.ID)
		return nil, fmt.Errorf("failed to create rental request: %w", err)
	}
	name := equipment.Name
	req.EquipmentName = &name

	if s.policy.MarkPendingOnSubmit {
		if err := s.equipmentRepo.UpdateStatus(ctx, equipment.ID, domain.EquipmentStatusPending); err != nil {
			perr := &PartialUpdateError{
				Op:      "submit",
				Applied: "rental request " + req.ID + " -> pending",
				Failed:  "equipment " + equipment.ID + " -> pending",
				Err:     err,
			}
			logger.ErrorContext(ctx, "Rental request stored but equipment status not updated", "error", perr)
			return req, perr
		}
	}

	if err := s.emailSvc.SendRentalRequestNotification(ctx, req, equipment.Name); err != nil {
		logger.WarnContext(ctx, "Failed to notify admin of rental request", "requestID", req.ID, "error", err)
	}

	logger.ExitMethod("rentalService.SubmitRentalRequest", "requestID", req.ID)
	return req, nil
}

// transition writes the request status and then the equipment status. The two
// writes are independent; a failure of the second leaves the first in place.
func (s *rentalService) transition(ctx context.Context, op, id string, reqStatus domain.RentalStatus, eqStatus domain.EquipmentStatus) (*domain.RentalRequest, error) {
	req, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("rental request %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load rental request: %w", err)
	}

	if err := s.rentalRepo.UpdateStatus(ctx, req.ID, reqStatus); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("rental request %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update rental request: %w", err)
	}
	req.Status = reqStatus

	if err := s.equipmentRepo.UpdateStatus(ctx, req.EquipmentID, eqStatus); err != nil {
		perr := &PartialUpdateError{
			Op:      op,
			Applied: fmt.Sprintf("rental request %s -> %s", req.ID, reqStatus),
			Failed:  fmt.Sprintf("equipment %s -> %s", req.EquipmentID, eqStatus),
			Err:     err,
		}
		logger.ErrorContext(ctx, "Rental transition partially applied", "op", op, "error", perr)
		return req, perr
	}

	logger.InfoContext(ctx, "Rental transition applied", "op", op, "requestID", req.ID, "equipmentID", req.EquipmentID, "status", reqStatus)
	return req, nil
}

func (s *rentalService) ApproveRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error) {
	return s.transition(ctx, "approve", id, domain.RentalStatusRented, domain.EquipmentStatusRented)
}

func (s *rentalService) ReturnRentalRequest(ctx context.Context, id string) (*domain.RentalRequest, error) {
	return s.transition(ctx, "return", id, domain.RentalStatusReturned, domain.EquipmentStatusAvailable)
}

func (s *rentalService) ListActiveRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	items, err := s.rentalRepo.ListByStatuses(ctx,
		[]domain.RentalStatus{domain.RentalStatusRented, domain.RentalStatusPending}, repository.OrderByStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list rental requests: %w", err)
	}
	return items, nil
}

func (s *rentalService) ListRentedRequests(ctx context.Context) ([]domain.RentalRequest, error) {
	items, err := s.rentalRepo.ListByStatuses(ctx, []domain.RentalStatus{domain.RentalStatusRented}, repository.OrderByEndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list rented requests: %w", err)
	}
	return items, nil
}

func (s *rentalService) ReservedDates(ctx context.Context, equipmentID string) ([]domain.Date, error) {
	ranges, err := s.rentalRepo.ListActiveRanges(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	return utils.ReservedDays(ranges), nil
}
