package jobs

import (
	"context"
	"time"
)

// ReportOverdueRentals logs every open rental whose due date has passed.
// Read-only: overdue equipment stays RENTED until it actually comes back.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		query := `
			SELECT checkOutID, serialNum, userID, dueDate
			FROM rentals
			WHERE returns = 'NO'
			  AND dueDate IS NOT NULL
			  AND dueDate < $1
			ORDER BY dueDate
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			jr.log.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var checkOutID, serialNum, userID string
			var dueDate time.Time
			if err := rows.Scan(&checkOutID, &serialNum, &userID, &dueDate); err != nil {
				jr.log.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			jr.log.Warn("Rental overdue",
				"checkout_id", checkOutID,
				"serial_num", serialNum,
				"user_id", userID,
				"due_date", dueDate.Format("2006-01-02"))
			count++
		}
		if err := rows.Err(); err != nil {
			jr.log.Error("Error iterating overdue rentals", "error", err)
			return
		}

		jr.log.Info("Overdue rental report finished", "count", count)
	})
}

// ReportDronesInTransit logs drones currently marked IN_TRANSIT. Transport
// has no completion event, so a long-lived entry here means a drone is
// waiting for a manual reset.
func (jr *JobRunner) ReportDronesInTransit() {
	jr.runWithRecovery("ReportDronesInTransit", func() {
		ctx := context.Background()

		query := `SELECT serialNum, name, model FROM drones WHERE status = 'IN_TRANSIT' ORDER BY name`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			jr.log.Error("Failed to query in-transit drones", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var serialNum, name, model string
			if err := rows.Scan(&serialNum, &name, &model); err != nil {
				jr.log.Error("Failed to scan in-transit drone", "error", err)
				continue
			}
			jr.log.Info("Drone in transit", "serial_num", serialNum, "name", name, "model", model)
			count++
		}
		if err := rows.Err(); err != nil {
			jr.log.Error("Error iterating in-transit drones", "error", err)
			return
		}

		jr.log.Info("In-transit drone census finished", "count", count)
	})
}
