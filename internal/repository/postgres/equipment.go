package postgres

import (
	"context"
	"database/sql"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository"

	"github.com/google/uuid"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `INSERT INTO equipments (id, name, status) VALUES ($1, $2, $3) RETURNING created_at`
	logger.DatabaseCall("INSERT", "equipments", "equipmentID", e.ID)
	err := r.db.QueryRowContext(ctx, query, e.ID, e.Name, e.Status).Scan(&e.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "equipmentID", e.ID)
	return mapError(err)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT id, name, status, created_at FROM equipments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Status, &e.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT id, name, status, created_at FROM equipments ORDER BY name`
	return r.list(ctx, query)
}

func (r *equipmentRepository) ListByStatus(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	query := `SELECT id, name, status, created_at FROM equipments WHERE status = $1 ORDER BY name`
	return r.list(ctx, query, status)
}

func (r *equipmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	logger.DatabaseCall("SELECT", "equipments", "args", args)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Equipment, 0)
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Status, &e.CreatedAt); err != nil {
			logger.DatabaseResult("SELECT", int64(len(items)), err)
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(items)), err)
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(items)), nil)
	return items, nil
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	query := `UPDATE equipments SET status = $1 WHERE id = $2`
	logger.DatabaseCall("UPDATE", "equipments", "equipmentID", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "equipmentID", id)
		return mapError(err)
	}
	n, err := requireAffected(res)
	logger.DatabaseResult("UPDATE", n, err, "equipmentID", id)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM equipments WHERE id = $1`
	logger.DatabaseCall("DELETE", "equipments", "equipmentID", id)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "equipmentID", id)
		return mapError(err)
	}
	n, err := requireAffected(res)
	logger.DatabaseResult("DELETE", n, err, "equipmentID", id)
	return err
}
