package postgres

import (
	"context"
	"time"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, entry *domain.RentalLedgerEntry) error {
	query := `INSERT INTO rentals (checkOutID, serialNum, userID, checkOutDate, dueDate, rentalFees, returns)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, entry.CheckOutID, entry.SerialNum, entry.UserID, entry.CheckOutDate, entry.DueDate, entry.RentalFees, entry.Returns)
	return mapError(err)
}

func (r *rentalRepository) GetByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	query := `SELECT checkOutID, serialNum, userID, checkOutDate, dueDate, rentalFees, returns, returnDate
	          FROM rentals WHERE checkOutID = $1`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, checkOutID))
}

func (r *rentalRepository) GetOpenByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	query := `SELECT checkOutID, serialNum, userID, checkOutDate, dueDate, rentalFees, returns, returnDate
	          FROM rentals WHERE checkOutID = $1 AND returns = 'NO'`
	return r.scanEntry(r.db.QueryRowContext(ctx, query, checkOutID))
}

// MarkReturned flips the one-way Returns flag and stamps the return date.
func (r *rentalRepository) MarkReturned(ctx context.Context, checkOutID string) error {
	query := `UPDATE rentals SET returns = $1, returnDate = $2 WHERE checkOutID = $3 AND returns = $4`
	res, err := r.db.ExecContext(ctx, query, domain.ReturnsYes, time.Now(), checkOutID, domain.ReturnsNo)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAlreadyReturned
	}
	return nil
}

func (r *rentalRepository) ListByMember(ctx context.Context, userID string) ([]domain.RentalLedgerEntry, error) {
	query := `SELECT checkOutID, serialNum, userID, checkOutDate, dueDate, rentalFees, returns, returnDate
	          FROM rentals WHERE userID = $1 ORDER BY checkOutDate DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entries []domain.RentalLedgerEntry
	for rows.Next() {
		var e domain.RentalLedgerEntry
		if err := rows.Scan(&e.CheckOutID, &e.SerialNum, &e.UserID, &e.CheckOutDate, &e.DueDate, &e.RentalFees, &e.Returns, &e.ReturnDate); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *rentalRepository) scanEntry(row rowScanner) (*domain.RentalLedgerEntry, error) {
	e := &domain.RentalLedgerEntry{}
	err := row.Scan(&e.CheckOutID, &e.SerialNum, &e.UserID, &e.CheckOutDate, &e.DueDate, &e.RentalFees, &e.Returns, &e.ReturnDate)
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}
