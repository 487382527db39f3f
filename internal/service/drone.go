package service

import (
	"context"
	"fmt"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/logger"
	"skygear-backend/internal/repository"
)

type droneService struct {
	droneRepo repository.DroneRepository
}

func NewDroneService(droneRepo repository.DroneRepository) DroneService {
	return &droneService{droneRepo: droneRepo}
}

func (s *droneService) AddDrone(ctx context.Context, d *domain.Drone) error {
	if d.SerialNum == "" {
		return fmt.Errorf("%w: serialNum is required", domain.ErrValidation)
	}
	d.Status = domain.DroneStatusAvailable

	if err := s.droneRepo.Create(ctx, d); err != nil {
		return err
	}
	logger.Info("Drone added", "serial_num", d.SerialNum, "model", d.Model)
	return nil
}

// EditDrone is the manual reset path for drone status: transport never moves
// a drone back to AVAILABLE on its own.
func (s *droneService) EditDrone(ctx context.Context, serialNum string, p domain.DronePatch) error {
	if p.IsEmpty() {
		return domain.ErrNoChanges
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *p.Status)
	}
	exists, err := s.droneRepo.Exists(ctx, serialNum)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return s.droneRepo.Patch(ctx, serialNum, p)
}

func (s *droneService) DeleteDrone(ctx context.Context, serialNum string) error {
	if err := s.droneRepo.Delete(ctx, serialNum); err != nil {
		return err
	}
	logger.Info("Drone deleted", "serial_num", serialNum)
	return nil
}

func (s *droneService) GetDrone(ctx context.Context, serialNum string) (*domain.Drone, error) {
	return s.droneRepo.GetBySerial(ctx, serialNum)
}

func (s *droneService) SearchDrones(ctx context.Context, model string) ([]domain.Drone, error) {
	return s.droneRepo.SearchByModel(ctx, model)
}

func (s *droneService) ListDrones(ctx context.Context) ([]domain.Drone, error) {
	return s.droneRepo.List(ctx)
}
