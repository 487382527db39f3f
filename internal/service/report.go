package service

import (
	"context"

	"skygear-backend/internal/repository"
)

// reportService is a thin pass-through: reports only read committed state.
type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) CheckoutCountByMember(ctx context.Context, userID string) (int32, error) {
	return s.reportRepo.CheckoutCountByMember(ctx, userID)
}

func (s *reportService) MostRentedEquipment(ctx context.Context) (*repository.EquipmentRentCount, error) {
	return s.reportRepo.MostRentedEquipment(ctx)
}

func (s *reportService) MostUsedDrone(ctx context.Context) (*repository.DroneUseCount, error) {
	return s.reportRepo.MostUsedDrone(ctx)
}

func (s *reportService) TopRenter(ctx context.Context) (*repository.MemberRentCount, error) {
	return s.reportRepo.TopRenter(ctx)
}

func (s *reportService) EquipmentByTypeBeforeYear(ctx context.Context, equipType string, year int32) ([]repository.EquipmentYearRow, error) {
	return s.reportRepo.EquipmentByTypeBeforeYear(ctx, equipType, year)
}
