package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/logger"
	"skygear-backend/internal/repository"
)

type RentRequest struct {
	CheckOutID string
	SerialNum  string
	UserID     string
	DueDate    *time.Time
	Fee        *float64
}

type rentalService struct {
	tx    repository.TxRunner
	repos repository.Repositories
}

func NewRentalService(tx repository.TxRunner, repos repository.Repositories) RentalService {
	return &rentalService{tx: tx, repos: repos}
}

// Rent inserts the ledger entry and flips the equipment AVAILABLE->RENTED in
// one unit. The status flip is a compare-and-set; when it reports no match
// the insert is discarded with it and the caller sees ErrRentConflict.
// First committer wins, the loser leaves no ledger row behind.
func (s *rentalService) Rent(ctx context.Context, req RentRequest) (*domain.RentalLedgerEntry, error) {
	if req.CheckOutID == "" || req.SerialNum == "" || req.UserID == "" {
		return nil, fmt.Errorf("%w: checkOutID, serialNum and userID are required", domain.ErrValidation)
	}

	// Advisory preconditions. The transaction below is authoritative; these
	// just turn the common mistakes into specific NotFound answers.
	if err := s.requireExists(ctx, s.repos.Equipment.Exists, req.SerialNum, "equipment"); err != nil {
		return nil, err
	}
	if err := s.requireExists(ctx, s.repos.Members.Exists, req.UserID, "member"); err != nil {
		return nil, err
	}

	entry := &domain.RentalLedgerEntry{
		CheckOutID:   req.CheckOutID,
		SerialNum:    req.SerialNum,
		UserID:       req.UserID,
		CheckOutDate: time.Now(),
		DueDate:      req.DueDate,
		RentalFees:   req.Fee,
		Returns:      domain.ReturnsNo,
	}

	err := s.tx.WithinTx(ctx, func(r *repository.Repositories) error {
		if err := r.Rentals.Create(ctx, entry); err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return fmt.Errorf("checkout ID %q already used: %w", req.CheckOutID, err)
			}
			return err
		}
		applied, err := transitionEquipment(ctx, r, req.SerialNum,
			domain.EquipmentStatusAvailable, domain.EquipmentStatusRented, &req.UserID)
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("equipment %s: %w", req.SerialNum, domain.ErrRentConflict)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Rent failed", "checkout_id", req.CheckOutID, "serial_num", req.SerialNum, "error", err)
		return nil, err
	}

	logger.Info("Equipment rented", "checkout_id", req.CheckOutID, "serial_num", req.SerialNum, "user_id", req.UserID)
	return entry, nil
}

// Return closes the ledger entry and flips the equipment RENTED->AVAILABLE.
// The equipment flip is re-validated with a compare-and-set even though the
// ledger row said RENTED; if the status was tampered with, the whole unit
// rolls back, ledger update included.
func (s *rentalService) Return(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	if checkOutID == "" {
		return nil, fmt.Errorf("%w: checkOutID is required", domain.ErrValidation)
	}

	var entry *domain.RentalLedgerEntry
	err := s.tx.WithinTx(ctx, func(r *repository.Repositories) error {
		var err error
		entry, err = r.Rentals.GetOpenByCheckOutID(ctx, checkOutID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrAlreadyReturned
			}
			return err
		}
		if err := r.Rentals.MarkReturned(ctx, checkOutID); err != nil {
			return err
		}
		applied, err := transitionEquipment(ctx, r, entry.SerialNum,
			domain.EquipmentStatusRented, domain.EquipmentStatusAvailable, nil)
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("equipment %s is not RENTED: %w", entry.SerialNum, domain.ErrStatusConflict)
		}
		return nil
	})
	if err != nil {
		logger.Warn("Return failed", "checkout_id", checkOutID, "error", err)
		return nil, err
	}

	logger.Info("Equipment returned", "checkout_id", checkOutID, "serial_num", entry.SerialNum)
	return entry, nil
}

func (s *rentalService) ScheduleDelivery(ctx context.Context, equipSerial, droneSerial string) (*domain.TransportLedgerEntry, error) {
	return s.scheduleTransport(ctx, equipSerial, droneSerial, domain.TransportTypeDelivery)
}

func (s *rentalService) SchedulePickup(ctx context.Context, equipSerial, droneSerial string) (*domain.TransportLedgerEntry, error) {
	return s.scheduleTransport(ctx, equipSerial, droneSerial, domain.TransportTypePickup)
}

// scheduleTransport appends the transport log row and puts the drone
// IN_TRANSIT as one unit. The drone status write is a plain set: no
// conflicting concurrent claim is modeled for drones, and nothing here
// moves a drone back to AVAILABLE; that reset is a manual edit.
func (s *rentalService) scheduleTransport(ctx context.Context, equipSerial, droneSerial string, kind domain.TransportType) (*domain.TransportLedgerEntry, error) {
	if equipSerial == "" || droneSerial == "" {
		return nil, fmt.Errorf("%w: equipment and drone serial numbers are required", domain.ErrValidation)
	}
	if err := s.requireExists(ctx, s.repos.Equipment.Exists, equipSerial, "equipment"); err != nil {
		return nil, err
	}

	entry := &domain.TransportLedgerEntry{
		TransportID:    uuid.NewString(),
		DroneSerialNum: droneSerial,
		EquipSerialNum: equipSerial,
		Type:           kind,
		Date:           time.Now(),
	}

	err := s.tx.WithinTx(ctx, func(r *repository.Repositories) error {
		matched, err := r.Drones.SetStatus(ctx, droneSerial, domain.DroneStatusInTransit)
		if err != nil {
			return err
		}
		if !matched {
			return fmt.Errorf("drone %s: %w", droneSerial, domain.ErrNotFound)
		}
		return r.Transports.Create(ctx, entry)
	})
	if err != nil {
		logger.Warn("Transport scheduling failed", "type", kind, "equip_serial", equipSerial, "drone_serial", droneSerial, "error", err)
		return nil, err
	}

	logger.Info("Transport scheduled", "type", kind, "equip_serial", equipSerial, "drone_serial", droneSerial)
	return entry, nil
}

// GetRental looks up a ledger entry, open or returned.
func (s *rentalService) GetRental(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	return s.repos.Rentals.GetByCheckOutID(ctx, checkOutID)
}

func (s *rentalService) ListRentalsByMember(ctx context.Context, userID string) ([]domain.RentalLedgerEntry, error) {
	return s.repos.Rentals.ListByMember(ctx, userID)
}

func (s *rentalService) ListTransportsByDrone(ctx context.Context, droneSerial string) ([]domain.TransportLedgerEntry, error) {
	return s.repos.Transports.ListByDrone(ctx, droneSerial)
}

// transitionEquipment is the engine entry point for equipment status: it
// rejects anything outside the transition table, then issues the
// compare-and-set. applied=false means the precondition did not hold.
func transitionEquipment(ctx context.Context, r *repository.Repositories, serialNum string, from, to domain.EquipmentStatus, renterID *string) (bool, error) {
	if !from.CanTransition(to) {
		return false, fmt.Errorf("%w: equipment %s->%s", domain.ErrInvalidTransition, from, to)
	}
	return r.Equipment.TransitionStatus(ctx, serialNum, from, to, renterID)
}

func (s *rentalService) requireExists(ctx context.Context, check func(context.Context, string) (bool, error), key, kind string) error {
	exists, err := check(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", kind, key, domain.ErrNotFound)
	}
	return nil
}
