package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code serves both pooled and transactional sessions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.Repositories
	Reports repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		Repositories: newRepositories(db),
		Reports:      NewReportRepository(db),
	}
}

func newRepositories(db DBTX) repository.Repositories {
	return repository.Repositories{
		Members:    NewMemberRepository(db),
		Equipment:  NewEquipmentRepository(db),
		Drones:     NewDroneRepository(db),
		Rentals:    NewRentalRepository(db),
		Transports: NewTransportRepository(db),
	}
}

// WithinTx runs fn against repositories bound to a single transaction.
// Any error from fn (or a panic) rolls back every write fn issued; nil
// commits them together. Nothing fn wrote is visible to other sessions
// before commit.
func (s *Store) WithinTx(ctx context.Context, fn func(r *repository.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	repos := newRepositories(tx)
	err = fn(&repos)
	return err
}

// Postgres error codes surfaced as domain categories.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintOpenRental is the partial unique index enforcing one open
// checkout per equipment. A unique violation on it means the equipment is
// busy, not that the caller reused a key.
const constraintOpenRental = "rentals_open_serial"

// mapError translates driver errors into the domain taxonomy, preserving
// the store's own diagnostic in the wrap.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			if pqErr.Constraint == constraintOpenRental {
				return fmt.Errorf("%w: %s", domain.ErrRentConflict, pqErr.Message)
			}
			return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pqErr.Message)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrReferenced, pqErr.Message)
		}
	}
	return err
}
