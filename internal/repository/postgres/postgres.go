package postgres

import (
	"context"
	"database/sql"
	"errors"

	"equipment-rental-backend/internal/repository"

	"github.com/lib/pq"
)

// foreign_key_violation
const pqForeignKeyViolation = "23503"

// Store is the single shared handle to the database, created once at start-up
// and handed to every service that needs it.
type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.RentalRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		EquipmentRepository:     NewEquipmentRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
	}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// mapError translates driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return errors.Join(repository.ErrConstraint, err)
	}
	return err
}

// requireAffected turns a zero-row write into ErrNotFound.
func requireAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, repository.ErrNotFound
	}
	return n, nil
}
