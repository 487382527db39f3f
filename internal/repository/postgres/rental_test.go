package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"skygear-backend/internal/domain"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		entry := &domain.RentalLedgerEntry{
			CheckOutID:   "CO1",
			SerialNum:    "EQ100",
			UserID:       "U1",
			CheckOutDate: time.Now(),
			Returns:      domain.ReturnsNo,
		}

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(entry.CheckOutID, entry.SerialNum, entry.UserID, sqlmock.AnyArg(), nil, nil, domain.ReturnsNo).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, entry))
	})

	t.Run("DuplicateCheckOutID", func(t *testing.T) {
		entry := &domain.RentalLedgerEntry{CheckOutID: "CO1", SerialNum: "EQ100", UserID: "U1", Returns: domain.ReturnsNo}

		mock.ExpectExec("INSERT INTO rentals").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "rentals_pkey", Message: "duplicate key value violates unique constraint \"rentals_pkey\""})

		err := repo.Create(ctx, entry)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
		assert.NotErrorIs(t, err, domain.ErrRentConflict)
	})

	t.Run("OpenRentalExists", func(t *testing.T) {
		// The one-open-checkout index firing means the equipment is busy,
		// not that the checkout ID was reused.
		entry := &domain.RentalLedgerEntry{CheckOutID: "CO2", SerialNum: "EQ100", UserID: "U2", Returns: domain.ReturnsNo}

		mock.ExpectExec("INSERT INTO rentals").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "rentals_open_serial", Message: "duplicate key value violates unique constraint \"rentals_open_serial\""})

		err := repo.Create(ctx, entry)
		assert.ErrorIs(t, err, domain.ErrRentConflict)
		assert.NotErrorIs(t, err, domain.ErrDuplicateKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetOpenByCheckOutID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("OpenEntry", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"checkOutID", "serialNum", "userID", "checkOutDate", "dueDate", "rentalFees", "returns", "returnDate"}).
			AddRow("CO1", "EQ100", "U1", time.Now(), nil, 25.0, "NO", nil)

		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE checkOutID = \$1 AND returns = 'NO'`).
			WithArgs("CO1").
			WillReturnRows(rows)

		entry, err := repo.GetOpenByCheckOutID(ctx, "CO1")
		assert.NoError(t, err)
		assert.Equal(t, "EQ100", entry.SerialNum)
		assert.Equal(t, domain.ReturnsNo, entry.Returns)
	})

	t.Run("ClosedOrMissing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE checkOutID = \$1 AND returns = 'NO'`).
			WithArgs("CO9").
			WillReturnRows(sqlmock.NewRows([]string{"checkOutID", "serialNum", "userID", "checkOutDate", "dueDate", "rentalFees", "returns", "returnDate"}))

		_, err := repo.GetOpenByCheckOutID(ctx, "CO9")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_MarkReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rentals SET returns = \$1, returnDate = \$2 WHERE checkOutID = \$3 AND returns = \$4`).
			WithArgs(domain.ReturnsYes, sqlmock.AnyArg(), "CO1", domain.ReturnsNo).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkReturned(ctx, "CO1"))
	})

	t.Run("AlreadyReturned", func(t *testing.T) {
		// The NO->YES flip is one-way: a second return matches no rows.
		mock.ExpectExec(`UPDATE rentals SET returns = \$1, returnDate = \$2 WHERE checkOutID = \$3 AND returns = \$4`).
			WithArgs(domain.ReturnsYes, sqlmock.AnyArg(), "CO1", domain.ReturnsNo).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkReturned(ctx, "CO1")
		assert.ErrorIs(t, err, domain.ErrAlreadyReturned)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_ListByMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"checkOutID", "serialNum", "userID", "checkOutDate", "dueDate", "rentalFees", "returns", "returnDate"}).
		AddRow("CO2", "EQ200", "U1", time.Now(), nil, nil, "NO", nil).
		AddRow("CO1", "EQ100", "U1", time.Now().Add(-48*time.Hour), nil, 25.0, "YES", time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE userID = \$1 ORDER BY checkOutDate DESC`).
		WithArgs("U1").
		WillReturnRows(rows)

	entries, err := repo.ListByMember(ctx, "U1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, domain.ReturnsYes, entries[1].Returns)
	assert.NotNil(t, entries[1].ReturnDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
