package service

import (
	"context"
	"fmt"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/logger"
	"skygear-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) AddEquipment(ctx context.Context, e *domain.Equipment) error {
	if e.SerialNum == "" {
		return fmt.Errorf("%w: serialNum is required", domain.ErrValidation)
	}
	// New equipment always enters the pool AVAILABLE with no renter.
	e.Status = domain.EquipmentStatusAvailable
	e.RenterID = nil

	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return err
	}
	logger.Info("Equipment added", "serial_num", e.SerialNum, "type", e.Type)
	return nil
}

// EditEquipment applies a sparse patch. A status supplied here is a direct
// edit (LOST, INACTIVE and the like); it bypasses the rental engine by
// design, so the engine's own rent/return bookkeeping is not consulted.
func (s *equipmentService) EditEquipment(ctx context.Context, serialNum string, p domain.EquipmentPatch) error {
	if p.IsEmpty() {
		return domain.ErrNoChanges
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *p.Status)
	}
	exists, err := s.equipmentRepo.Exists(ctx, serialNum)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return s.equipmentRepo.Patch(ctx, serialNum, p)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, serialNum string) error {
	if err := s.equipmentRepo.Delete(ctx, serialNum); err != nil {
		return err
	}
	logger.Info("Equipment deleted", "serial_num", serialNum)
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, serialNum string) (*domain.Equipment, error) {
	return s.equipmentRepo.GetBySerial(ctx, serialNum)
}

func (s *equipmentService) SearchEquipment(ctx context.Context, equipType string) ([]domain.Equipment, error) {
	return s.equipmentRepo.SearchByType(ctx, equipType)
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}
