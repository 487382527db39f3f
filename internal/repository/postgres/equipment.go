package postgres

import (
	"context"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type equipmentRepository struct {
	db DBTX
}

func NewEquipmentRepository(db DBTX) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (serialNum, description, type, model, year, status, renterID, warehouseID)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, e.SerialNum, e.Description, e.Type, e.Model, e.Year, e.Status, e.RenterID, e.WarehouseID)
	return mapError(err)
}

func (r *equipmentRepository) GetBySerial(ctx context.Context, serialNum string) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT serialNum, description, type, model, year, status, renterID, warehouseID FROM equipment WHERE serialNum = $1`
	err := r.db.QueryRowContext(ctx, query, serialNum).Scan(&e.SerialNum, &e.Description, &e.Type, &e.Model, &e.Year, &e.Status, &e.RenterID, &e.WarehouseID)
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *equipmentRepository) Exists(ctx context.Context, serialNum string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM equipment WHERE serialNum = $1)`
	if err := r.db.QueryRowContext(ctx, query, serialNum).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *equipmentRepository) Patch(ctx context.Context, serialNum string, p domain.EquipmentPatch) error {
	patch := newPatch("equipment", "serialNum")
	if p.Description != nil {
		patch.Set("description", *p.Description)
	}
	if p.Type != nil {
		patch.Set("type", *p.Type)
	}
	if p.Model != nil {
		patch.Set("model", *p.Model)
	}
	if p.Status != nil {
		patch.Set("status", *p.Status)
	}
	if patch.Empty() {
		return domain.ErrNoChanges
	}
	query, args := patch.Build(serialNum)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, serialNum string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE serialNum = $1`, serialNum)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) SearchByType(ctx context.Context, equipType string) ([]domain.Equipment, error) {
	query := `SELECT serialNum, description, type, model, year, status, renterID, warehouseID
	          FROM equipment WHERE type LIKE $1 ORDER BY type, description`
	return r.queryEquipment(ctx, query, "%"+equipType+"%")
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT serialNum, description, type, model, year, status, renterID, warehouseID
	          FROM equipment ORDER BY type, description`
	return r.queryEquipment(ctx, query)
}

// TransitionStatus is the serialization point for conflicting claims on the
// same equipment: the status predicate makes the write a compare-and-set,
// so of two concurrent rent attempts only the first committer matches.
func (r *equipmentRepository) TransitionStatus(ctx context.Context, serialNum string, from, to domain.EquipmentStatus, renterID *string) (bool, error) {
	query := `UPDATE equipment SET status = $1, renterID = $2 WHERE serialNum = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, to, renterID, serialNum, from)
	if err != nil {
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *equipmentRepository) queryEquipment(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.SerialNum, &e.Description, &e.Type, &e.Model, &e.Year, &e.Status, &e.RenterID, &e.WarehouseID); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
