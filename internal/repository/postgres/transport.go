package postgres

import (
	"context"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type transportRepository struct {
	db DBTX
}

func NewTransportRepository(db DBTX) repository.TransportRepository {
	return &transportRepository{db: db}
}

// Create appends to the transport log. Rows are never updated or deleted.
func (r *transportRepository) Create(ctx context.Context, entry *domain.TransportLedgerEntry) error {
	query := `INSERT INTO transports (transportID, dSerialNum, eSerialNum, type, date)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, entry.TransportID, entry.DroneSerialNum, entry.EquipSerialNum, entry.Type, entry.Date)
	return mapError(err)
}

func (r *transportRepository) ListByDrone(ctx context.Context, droneSerialNum string) ([]domain.TransportLedgerEntry, error) {
	query := `SELECT transportID, dSerialNum, eSerialNum, type, date
	          FROM transports WHERE dSerialNum = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, droneSerialNum)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entries []domain.TransportLedgerEntry
	for rows.Next() {
		var e domain.TransportLedgerEntry
		if err := rows.Scan(&e.TransportID, &e.DroneSerialNum, &e.EquipSerialNum, &e.Type, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
