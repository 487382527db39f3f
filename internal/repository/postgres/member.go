package postgres

import (
	"context"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type memberRepository struct {
	db DBTX
}

func NewMemberRepository(db DBTX) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (userID, fname, lname, address, phone, email, startDate, warehouseDistance)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, m.UserID, m.FirstName, m.LastName, m.Address, m.Phone, m.Email, m.StartDate, m.WarehouseDistance)
	return mapError(err)
}

func (r *memberRepository) GetByID(ctx context.Context, userID string) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT userID, fname, lname, address, phone, email, startDate, warehouseDistance FROM members WHERE userID = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&m.UserID, &m.FirstName, &m.LastName, &m.Address, &m.Phone, &m.Email, &m.StartDate, &m.WarehouseDistance)
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *memberRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE userID = $1)`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *memberRepository) Patch(ctx context.Context, userID string, p domain.MemberPatch) error {
	patch := newPatch("members", "userID")
	if p.FirstName != nil {
		patch.Set("fname", *p.FirstName)
	}
	if p.LastName != nil {
		patch.Set("lname", *p.LastName)
	}
	if p.Address != nil {
		patch.Set("address", *p.Address)
	}
	if p.Phone != nil {
		patch.Set("phone", *p.Phone)
	}
	if p.Email != nil {
		patch.Set("email", *p.Email)
	}
	if patch.Empty() {
		return domain.ErrNoChanges
	}
	query, args := patch.Build(userID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE userID = $1`, userID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *memberRepository) SearchByLastName(ctx context.Context, lname string) ([]domain.Member, error) {
	query := `SELECT userID, fname, lname, address, phone, email, startDate, warehouseDistance
	          FROM members WHERE lname LIKE $1 ORDER BY lname, fname`
	return r.queryMembers(ctx, query, "%"+lname+"%")
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT userID, fname, lname, address, phone, email, startDate, warehouseDistance
	          FROM members ORDER BY lname, fname`
	return r.queryMembers(ctx, query)
}

func (r *memberRepository) queryMembers(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.FirstName, &m.LastName, &m.Address, &m.Phone, &m.Email, &m.StartDate, &m.WarehouseDistance); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
