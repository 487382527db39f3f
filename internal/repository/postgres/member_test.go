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

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := &domain.Member{
			UserID:    "U1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Address:   "12 Analytical Way",
			Phone:     "555-0101",
			Email:     "ada@example.com",
			StartDate: time.Now(),
		}

		mock.ExpectExec("INSERT INTO members").
			WithArgs(m.UserID, m.FirstName, m.LastName, m.Address, m.Phone, m.Email, sqlmock.AnyArg(), nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, m)
		assert.NoError(t, err)
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		m := &domain.Member{UserID: "U1", FirstName: "Ada", LastName: "Lovelace"}

		mock.ExpectExec("INSERT INTO members").
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(ctx, m)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"userID", "fname", "lname", "address", "phone", "email", "startDate", "warehouseDistance"}).
			AddRow("U1", "Ada", "Lovelace", "12 Analytical Way", "555-0101", "ada@example.com", time.Now(), 3.5)

		mock.ExpectQuery(`SELECT (.+) FROM members WHERE userID = \$1`).
			WithArgs("U1").
			WillReturnRows(rows)

		m, err := repo.GetByID(ctx, "U1")
		assert.NoError(t, err)
		assert.Equal(t, "U1", m.UserID)
		assert.Equal(t, "Lovelace", m.LastName)
		assert.NotNil(t, m.WarehouseDistance)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM members WHERE userID = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"userID", "fname", "lname", "address", "phone", "email", "startDate", "warehouseDistance"}))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_Patch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("SparseFields", func(t *testing.T) {
		phone := "555-0202"
		email := "new@example.com"

		mock.ExpectExec(`UPDATE members SET phone = \$1, email = \$2 WHERE userID = \$3`).
			WithArgs(phone, email, "U1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Patch(ctx, "U1", domain.MemberPatch{Phone: &phone, Email: &email})
		assert.NoError(t, err)
	})

	t.Run("EmptyPatchIssuesNoWrite", func(t *testing.T) {
		// No expectations registered: any SQL here would fail the test.
		err := repo.Patch(ctx, "U1", domain.MemberPatch{})
		assert.ErrorIs(t, err, domain.ErrNoChanges)
	})

	t.Run("NotFound", func(t *testing.T) {
		fname := "Grace"
		mock.ExpectExec(`UPDATE members SET fname = \$1 WHERE userID = \$2`).
			WithArgs(fname, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Patch(ctx, "missing", domain.MemberPatch{FirstName: &fname})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members").
			WithArgs("U1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "U1"))
	})

	t.Run("BlockedByOpenLedgerEntry", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members").
			WithArgs("U1").
			WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint on rentals"})

		err := repo.Delete(ctx, "U1")
		assert.ErrorIs(t, err, domain.ErrReferenced)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("U1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, "U1")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
