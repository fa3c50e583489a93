package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type addEquipmentInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	rentalRepo    repository.RentalRequestRepository
	validate      *validator.Validate
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, rentalRepo repository.RentalRequestRepository) EquipmentService {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		rentalRepo:    rentalRepo,
		validate:      newValidator(),
	}
}

func (s *equipmentService) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	items, err := s.equipmentRepo.ListByStatus(ctx, domain.EquipmentStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list available equipment: %w", err)
	}
	return items, nil
}

func (s *equipmentService) ListAll(ctx context.Context) ([]domain.Equipment, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return items, nil
}

func (s *equipmentService) AddEquipment(ctx context.Context, name string) (*domain.Equipment, error) {
	input := addEquipmentInput{Name: strings.TrimSpace(name)}
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	e := &domain.Equipment{Name: input.Name, Status: domain.EquipmentStatusAvailable}
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to add equipment: %w", err)
	}
	logger.InfoContext(ctx, "Equipment added", "equipmentID", e.ID, "name", e.Name)
	return e, nil
}

// DeleteEquipment removes the equipment's rental requests first, then the equipment.
func (s *equipmentService) DeleteEquipment(ctx context.Context, id string) error {
	logger.EnterMethod("equipmentService.DeleteEquipment", "equipmentID", id)

	removed, err := s.rentalRepo.DeleteByEquipment(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("equipmentService.DeleteEquipment", err, "equipmentID", id)
		return fmt.Errorf("failed to delete rental requests: %w", err)
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("equipment %s: %w", id, ErrNotFound)
		}
		if removed > 0 {
			perr := &PartialUpdateError{
				Op:      "delete equipment",
				Applied: fmt.Sprintf("%d rental requests deleted", removed),
				Failed:  "equipment " + id + " delete",
				Err:     err,
			}
			logger.ErrorContext(ctx, "Equipment delete partially applied", "error", perr)
			return perr
		}
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	logger.ExitMethod("equipmentService.DeleteEquipment", "equipmentID", id, "requestsRemoved", removed)
	return nil
}
