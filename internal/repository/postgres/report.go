package postgres

import (
	"context"

	"skygear-backend/internal/repository"
)

type reportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CheckoutCountByMember(ctx context.Context, userID string) (int32, error) {
	var count int32
	query := `SELECT COUNT(checkOutID) FROM rentals WHERE userID = $1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (r *reportRepository) MostRentedEquipment(ctx context.Context) (*repository.EquipmentRentCount, error) {
	query := `SELECT r.serialNum, e.description, COUNT(r.checkOutID) AS timesRented
	          FROM rentals r JOIN equipment e ON r.serialNum = e.serialNum
	          GROUP BY r.serialNum, e.description ORDER BY timesRented DESC LIMIT 1`
	row := &repository.EquipmentRentCount{}
	err := r.db.QueryRowContext(ctx, query).Scan(&row.SerialNum, &row.Description, &row.TimesRented)
	if err != nil {
		return nil, mapError(err)
	}
	return row, nil
}

func (r *reportRepository) MostUsedDrone(ctx context.Context) (*repository.DroneUseCount, error) {
	query := `SELECT t.dSerialNum, d.name, COUNT(t.transportID) AS uses
	          FROM transports t JOIN drones d ON t.dSerialNum = d.serialNum
	          GROUP BY t.dSerialNum, d.name ORDER BY uses DESC LIMIT 1`
	row := &repository.DroneUseCount{}
	err := r.db.QueryRowContext(ctx, query).Scan(&row.SerialNum, &row.Name, &row.Transports)
	if err != nil {
		return nil, mapError(err)
	}
	return row, nil
}

func (r *reportRepository) TopRenter(ctx context.Context) (*repository.MemberRentCount, error) {
	query := `SELECT r.userID, m.fname, m.lname, COUNT(r.checkOutID) AS totalRented
	          FROM rentals r JOIN members m ON r.userID = m.userID
	          GROUP BY r.userID, m.fname, m.lname ORDER BY totalRented DESC LIMIT 1`
	row := &repository.MemberRentCount{}
	err := r.db.QueryRowContext(ctx, query).Scan(&row.UserID, &row.FirstName, &row.LastName, &row.TotalRented)
	if err != nil {
		return nil, mapError(err)
	}
	return row, nil
}

func (r *reportRepository) EquipmentByTypeBeforeYear(ctx context.Context, equipType string, year int32) ([]repository.EquipmentYearRow, error) {
	query := `SELECT serialNum, description, year FROM equipment
	          WHERE type = $1 AND year < $2 ORDER BY year DESC`
	rows, err := r.db.QueryContext(ctx, query, equipType, year)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []repository.EquipmentYearRow
	for rows.Next() {
		var row repository.EquipmentYearRow
		if err := rows.Scan(&row.SerialNum, &row.Description, &row.Year); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
