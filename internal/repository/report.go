package repository

import "context"

type EquipmentRentCount struct {
	SerialNum   string `json:"serial_num"`
	Description string `json:"description"`
	TimesRented int32  `json:"times_rented"`
}

type DroneUseCount struct {
	SerialNum  string `json:"serial_num"`
	Name       string `json:"name"`
	Transports int32  `json:"transports"`
}

type MemberRentCount struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"fname"`
	LastName    string `json:"lname"`
	TotalRented int32  `json:"total_rented"`
}

type EquipmentYearRow struct {
	SerialNum   string `json:"serial_num"`
	Description string `json:"description"`
	Year        int32  `json:"year"`
}

// ReportRepository serves the read-only aggregate queries. It only ever
// reads committed state and takes no part in the rental transactions.
type ReportRepository interface {
	CheckoutCountByMember(ctx context.Context, userID string) (int32, error)
	MostRentedEquipment(ctx context.Context) (*EquipmentRentCount, error)
	MostUsedDrone(ctx context.Context) (*DroneUseCount, error)
	TopRenter(ctx context.Context) (*MemberRentCount, error)
	EquipmentByTypeBeforeYear(ctx context.Context, equipType string, year int32) ([]EquipmentYearRow, error)
}
