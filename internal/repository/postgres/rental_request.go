package postgres

import (
	"context"
	"database/sql"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const rentalRequestColumns = `r.id, r.equipment_id, r.name, r.student_id, r.phone, r.start_date, r.end_date, r.status, r.created_at, e.name`

const rentalRequestFrom = `FROM rental_requests r LEFT JOIN equipments e ON e.id = r.equipment_id`

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRentalRequest reads one row selected with rentalRequestColumns. The joined
// equipment name is the only nullable column and ends up as a nil pointer when absent.
func scanRentalRequest(row rowScanner) (domain.RentalRequest, error) {
	var (
		req           domain.RentalRequest
		equipmentName sql.NullString
	)
	err := row.Scan(&req.ID, &req.EquipmentID, &req.Name, &req.StudentID, &req.Phone,
		&req.StartDate, &req.EndDate, &req.Status, &req.CreatedAt, &equipmentName)
	if err != nil {
		return domain.RentalRequest{}, err
	}
	if equipmentName.Valid {
		name := equipmentName.String
		req.EquipmentName = &name
	}
	return req, nil
}

func statusStrings(statuses []domain.RentalStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `INSERT INTO rental_requests (id, equipment_id, name, student_id, phone, start_date, end_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	logger.DatabaseCall("INSERT", "rental_requests", "requestID", req.ID, "equipmentID", req.EquipmentID)
	err := r.db.QueryRowContext(ctx, query,
		req.ID, req.EquipmentID, req.Name, req.StudentID, req.Phone, req.StartDate, req.EndDate, req.Status,
	).Scan(&req.CreatedAt)
	logger.DatabaseResult("INSERT", 1, err, "requestID", req.ID)
	return mapError(err)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	query := `SELECT ` + rentalRequestColumns + ` ` + rentalRequestFrom + ` WHERE r.id = $1`
	req, err := scanRentalRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}

func (r *rentalRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) error {
	query := `UPDATE rental_requests SET status = $1 WHERE id = $2`
	logger.DatabaseCall("UPDATE", "rental_requests", "requestID", id, "status", status)
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "requestID", id)
		return mapError(err)
	}
	n, err := requireAffected(res)
	logger.DatabaseResult("UPDATE", n, err, "requestID", id)
	return err
}

func (r *rentalRequestRepository) ListByStatuses(ctx context.Context, statuses []domain.RentalStatus, order repository.RentalOrder) ([]domain.RentalRequest, error) {
	orderBy := "r.start_date"
	if order == repository.OrderByEndDate {
		orderBy = "r.end_date"
	}
	query := `SELECT ` + rentalRequestColumns + ` ` + rentalRequestFrom +
		` WHERE r.status = ANY($1) ORDER BY ` + orderBy + `, r.created_at`
	return r.list(ctx, query, pq.Array(statusStrings(statuses)))
}

func (r *rentalRequestRepository) ListOverdue(ctx context.Context, today domain.Date) ([]domain.RentalRequest, error) {
	query := `SELECT ` + rentalRequestColumns + ` ` + rentalRequestFrom +
		` WHERE r.status = $1 AND r.end_date < $2 ORDER BY r.end_date, r.created_at`
	return r.list(ctx, query, domain.RentalStatusRented, today)
}

func (r *rentalRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.RentalRequest, error) {
	logger.DatabaseCall("SELECT", "rental_requests JOIN equipments")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.RentalRequest, 0)
	for rows.Next() {
		req, err := scanRentalRequest(rows)
		if err != nil {
			logger.DatabaseResult("SELECT", int64(len(items)), err)
			return nil, err
		}
		items = append(items, req)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("SELECT", int64(len(items)), err)
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(items)), nil)
	return items, nil
}

func (r *rentalRequestRepository) ListActiveRanges(ctx context.Context, equipmentID string) ([]domain.DateRange, error) {
	query := `SELECT start_date, end_date FROM rental_requests WHERE equipment_id = $1 AND status = ANY($2)`
	logger.DatabaseCall("SELECT", "rental_requests", "equipmentID", equipmentID)
	rows, err := r.db.QueryContext(ctx, query, equipmentID, pq.Array(statusStrings(domain.ActiveRentalStatuses)))
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "equipmentID", equipmentID)
		return nil, err
	}
	defer rows.Close()

	ranges := make([]domain.DateRange, 0)
	for rows.Next() {
		var dr domain.DateRange
		if err := rows.Scan(&dr.Start, &dr.End); err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(ranges)), nil, "equipmentID", equipmentID)
	return ranges, nil
}

func (r *rentalRequestRepository) DeleteByEquipment(ctx context.Context, equipmentID string) (int64, error) {
	query := `DELETE FROM rental_requests WHERE equipment_id = $1`
	logger.DatabaseCall("DELETE", "rental_requests", "equipmentID", equipmentID)
	res, err := r.db.ExecContext(ctx, query, equipmentID)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "equipmentID", equipmentID)
		return 0, err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("DELETE", n, err, "equipmentID", equipmentID)
	return n, err
}
