package domain

import "time"

type ReturnsFlag string

const (
	ReturnsNo  ReturnsFlag = "NO"
	ReturnsYes ReturnsFlag = "YES"
)

// RentalLedgerEntry records one checkout. Created only by a successful rent;
// the Returns flag moves NO->YES exactly once, on return. At most one entry
// per serial may carry Returns=NO at a time, mirroring the equipment's
// RENTED status.
type RentalLedgerEntry struct {
	CheckOutID   string      `json:"checkout_id"`
	SerialNum    string      `json:"serial_num"`
	UserID       string      `json:"user_id"`
	CheckOutDate time.Time   `json:"checkout_date"`
	DueDate      *time.Time  `json:"due_date,omitempty"`
	RentalFees   *float64    `json:"rental_fees,omitempty"`
	Returns      ReturnsFlag `json:"returns"`
	ReturnDate   *time.Time  `json:"return_date,omitempty"`
}
