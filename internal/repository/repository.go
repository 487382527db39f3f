package repository

import (
	"context"

	"skygear-backend/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, userID string) (*domain.Member, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Patch(ctx context.Context, userID string, p domain.MemberPatch) error
	Delete(ctx context.Context, userID string) error
	SearchByLastName(ctx context.Context, lname string) ([]domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetBySerial(ctx context.Context, serialNum string) (*domain.Equipment, error)
	Exists(ctx context.Context, serialNum string) (bool, error)
	Patch(ctx context.Context, serialNum string, p domain.EquipmentPatch) error
	Delete(ctx context.Context, serialNum string) error
	SearchByType(ctx context.Context, equipType string) ([]domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)

	// TransitionStatus sets status=to (and the renter reference) only if the
	// row's current status equals from. Returns whether the row changed.
	// A false result is the caller's conflict signal, not an error.
	TransitionStatus(ctx context.Context, serialNum string, from, to domain.EquipmentStatus, renterID *string) (bool, error)
}

type DroneRepository interface {
	Create(ctx context.Context, d *domain.Drone) error
	GetBySerial(ctx context.Context, serialNum string) (*domain.Drone, error)
	Exists(ctx context.Context, serialNum string) (bool, error)
	Patch(ctx context.Context, serialNum string, p domain.DronePatch) error
	Delete(ctx context.Context, serialNum string) error
	SearchByModel(ctx context.Context, model string) ([]domain.Drone, error)
	List(ctx context.Context) ([]domain.Drone, error)

	// SetStatus is an unconditional write; returns whether a row matched.
	SetStatus(ctx context.Context, serialNum string, status domain.DroneStatus) (bool, error)
}

type RentalRepository interface {
	Create(ctx context.Context, entry *domain.RentalLedgerEntry) error
	GetByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error)
	// GetOpenByCheckOutID returns the entry only while Returns=NO.
	GetOpenByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error)
	MarkReturned(ctx context.Context, checkOutID string) error
	ListByMember(ctx context.Context, userID string) ([]domain.RentalLedgerEntry, error)
}

type TransportRepository interface {
	Create(ctx context.Context, entry *domain.TransportLedgerEntry) error
	ListByDrone(ctx context.Context, droneSerialNum string) ([]domain.TransportLedgerEntry, error)
}

// Repositories bundles every per-entity repository bound to one session,
// either the shared pool or a single open transaction.
type Repositories struct {
	Members    MemberRepository
	Equipment  EquipmentRepository
	Drones     DroneRepository
	Rentals    RentalRepository
	Transports TransportRepository
}

// TxRunner executes fn against transaction-bound repositories. Every write
// issued through fn's repositories commits or rolls back as one unit; fn
// returning an error aborts the whole unit.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(r *Repositories) error) error
}
