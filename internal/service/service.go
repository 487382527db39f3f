package service

import (
	"context"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

type MemberService interface {
	AddMember(ctx context.Context, m *domain.Member) error
	EditMember(ctx context.Context, userID string, p domain.MemberPatch) error
	DeleteMember(ctx context.Context, userID string) error
	GetMember(ctx context.Context, userID string) (*domain.Member, error)
	SearchMembers(ctx context.Context, lname string) ([]domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, e *domain.Equipment) error
	EditEquipment(ctx context.Context, serialNum string, p domain.EquipmentPatch) error
	DeleteEquipment(ctx context.Context, serialNum string) error
	GetEquipment(ctx context.Context, serialNum string) (*domain.Equipment, error)
	SearchEquipment(ctx context.Context, equipType string) ([]domain.Equipment, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

type DroneService interface {
	AddDrone(ctx context.Context, d *domain.Drone) error
	EditDrone(ctx context.Context, serialNum string, p domain.DronePatch) error
	DeleteDrone(ctx context.Context, serialNum string) error
	GetDrone(ctx context.Context, serialNum string) (*domain.Drone, error)
	SearchDrones(ctx context.Context, model string) ([]domain.Drone, error)
	ListDrones(ctx context.Context) ([]domain.Drone, error)
}

// RentalService is the coordinator for the compound operations. Each call
// runs as one atomic unit: every constituent write commits or none do.
type RentalService interface {
	Rent(ctx context.Context, req RentRequest) (*domain.RentalLedgerEntry, error)
	Return(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error)
	GetRental(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error)
	ScheduleDelivery(ctx context.Context, equipSerial, droneSerial string) (*domain.TransportLedgerEntry, error)
	SchedulePickup(ctx context.Context, equipSerial, droneSerial string) (*domain.TransportLedgerEntry, error)
	ListRentalsByMember(ctx context.Context, userID string) ([]domain.RentalLedgerEntry, error)
	ListTransportsByDrone(ctx context.Context, droneSerial string) ([]domain.TransportLedgerEntry, error)
}

type ReportService interface {
	CheckoutCountByMember(ctx context.Context, userID string) (int32, error)
	MostRentedEquipment(ctx context.Context) (*repository.EquipmentRentCount, error)
	MostUsedDrone(ctx context.Context) (*repository.DroneUseCount, error)
	TopRenter(ctx context.Context) (*repository.MemberRentCount, error)
	EquipmentByTypeBeforeYear(ctx context.Context, equipType string, year int32) ([]repository.EquipmentYearRow, error)
}
