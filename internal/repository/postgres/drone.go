package postgres

import (
	"context"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type droneRepository struct {
	db DBTX
}

func NewDroneRepository(db DBTX) repository.DroneRepository {
	return &droneRepository{db: db}
}

func (r *droneRepository) Create(ctx context.Context, d *domain.Drone) error {
	query := `INSERT INTO drones (serialNum, name, model, status, weightCapacity)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, d.SerialNum, d.Name, d.Model, d.Status, d.WeightCapacity)
	return mapError(err)
}

func (r *droneRepository) GetBySerial(ctx context.Context, serialNum string) (*domain.Drone, error) {
	d := &domain.Drone{}
	query := `SELECT serialNum, name, model, status, weightCapacity FROM drones WHERE serialNum = $1`
	err := r.db.QueryRowContext(ctx, query, serialNum).Scan(&d.SerialNum, &d.Name, &d.Model, &d.Status, &d.WeightCapacity)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *droneRepository) Exists(ctx context.Context, serialNum string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM drones WHERE serialNum = $1)`
	if err := r.db.QueryRowContext(ctx, query, serialNum).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *droneRepository) Patch(ctx context.Context, serialNum string, p domain.DronePatch) error {
	patch := newPatch("drones", "serialNum")
	if p.Name != nil {
		patch.Set("name", *p.Name)
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

func (r *droneRepository) Delete(ctx context.Context, serialNum string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drones WHERE serialNum = $1`, serialNum)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *droneRepository) SearchByModel(ctx context.Context, model string) ([]domain.Drone, error) {
	query := `SELECT serialNum, name, model, status, weightCapacity
	          FROM drones WHERE model LIKE $1 ORDER BY name, model`
	return r.queryDrones(ctx, query, "%"+model+"%")
}

func (r *droneRepository) List(ctx context.Context) ([]domain.Drone, error) {
	query := `SELECT serialNum, name, model, status, weightCapacity
	          FROM drones ORDER BY name, model`
	return r.queryDrones(ctx, query)
}

// SetStatus is a plain write, not a compare-and-set: no conflicting
// concurrent claim is modeled for drones.
func (r *droneRepository) SetStatus(ctx context.Context, serialNum string, status domain.DroneStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE drones SET status = $1 WHERE serialNum = $2`, status, serialNum)
	if err != nil {
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *droneRepository) queryDrones(ctx context.Context, query string, args ...any) ([]domain.Drone, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var drones []domain.Drone
	for rows.Next() {
		var d domain.Drone
		if err := rows.Scan(&d.SerialNum, &d.Name, &d.Model, &d.Status, &d.WeightCapacity); err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, rows.Err()
}
