package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/repository"
)

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, userID string) (*domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMemberRepo) Patch(ctx context.Context, userID string, p domain.MemberPatch) error {
	args := m.Called(ctx, userID, p)
	return args.Error(0)
}
func (m *MockMemberRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockMemberRepo) SearchByLastName(ctx context.Context, lname string) ([]domain.Member, error) {
	args := m.Called(ctx, lname)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetBySerial(ctx context.Context, serialNum string) (*domain.Equipment, error) {
	args := m.Called(ctx, serialNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Exists(ctx context.Context, serialNum string) (bool, error) {
	args := m.Called(ctx, serialNum)
	return args.Bool(0), args.Error(1)
}
func (m *MockEquipmentRepo) Patch(ctx context.Context, serialNum string, p domain.EquipmentPatch) error {
	args := m.Called(ctx, serialNum, p)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, serialNum string) error {
	args := m.Called(ctx, serialNum)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SearchByType(ctx context.Context, equipType string) ([]domain.Equipment, error) {
	args := m.Called(ctx, equipType)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) TransitionStatus(ctx context.Context, serialNum string, from, to domain.EquipmentStatus, renterID *string) (bool, error) {
	args := m.Called(ctx, serialNum, from, to, renterID)
	return args.Bool(0), args.Error(1)
}

// MockDroneRepo
type MockDroneRepo struct {
	mock.Mock
}

func (m *MockDroneRepo) Create(ctx context.Context, d *domain.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDroneRepo) GetBySerial(ctx context.Context, serialNum string) (*domain.Drone, error) {
	args := m.Called(ctx, serialNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drone), args.Error(1)
}
func (m *MockDroneRepo) Exists(ctx context.Context, serialNum string) (bool, error) {
	args := m.Called(ctx, serialNum)
	return args.Bool(0), args.Error(1)
}
func (m *MockDroneRepo) Patch(ctx context.Context, serialNum string, p domain.DronePatch) error {
	args := m.Called(ctx, serialNum, p)
	return args.Error(0)
}
func (m *MockDroneRepo) Delete(ctx context.Context, serialNum string) error {
	args := m.Called(ctx, serialNum)
	return args.Error(0)
}
func (m *MockDroneRepo) SearchByModel(ctx context.Context, model string) ([]domain.Drone, error) {
	args := m.Called(ctx, model)
	return args.Get(0).([]domain.Drone), args.Error(1)
}
func (m *MockDroneRepo) List(ctx context.Context) ([]domain.Drone, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Drone), args.Error(1)
}
func (m *MockDroneRepo) SetStatus(ctx context.Context, serialNum string, status domain.DroneStatus) (bool, error) {
	args := m.Called(ctx, serialNum, status)
	return args.Bool(0), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, entry *domain.RentalLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	args := m.Called(ctx, checkOutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalLedgerEntry), args.Error(1)
}
func (m *MockRentalRepo) GetOpenByCheckOutID(ctx context.Context, checkOutID string) (*domain.RentalLedgerEntry, error) {
	args := m.Called(ctx, checkOutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalLedgerEntry), args.Error(1)
}
func (m *MockRentalRepo) MarkReturned(ctx context.Context, checkOutID string) error {
	args := m.Called(ctx, checkOutID)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByMember(ctx context.Context, userID string) ([]domain.RentalLedgerEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.RentalLedgerEntry), args.Error(1)
}

// MockTransportRepo
type MockTransportRepo struct {
	mock.Mock
}

func (m *MockTransportRepo) Create(ctx context.Context, entry *domain.TransportLedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockTransportRepo) ListByDrone(ctx context.Context, droneSerialNum string) ([]domain.TransportLedgerEntry, error) {
	args := m.Called(ctx, droneSerialNum)
	return args.Get(0).([]domain.TransportLedgerEntry), args.Error(1)
}

// fakeTxRunner hands the bundled mocks to fn in place of tx-bound
// repositories. Rollback semantics live in the postgres store; here only
// error propagation matters.
type fakeTxRunner struct {
	repos repository.Repositories
}

func (f *fakeTxRunner) WithinTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return fn(&f.repos)
}

type rentalMocks struct {
	members    *MockMemberRepo
	equipment  *MockEquipmentRepo
	drones     *MockDroneRepo
	rentals    *MockRentalRepo
	transports *MockTransportRepo
}

func newRentalService() (RentalService, rentalMocks) {
	m := rentalMocks{
		members:    new(MockMemberRepo),
		equipment:  new(MockEquipmentRepo),
		drones:     new(MockDroneRepo),
		rentals:    new(MockRentalRepo),
		transports: new(MockTransportRepo),
	}
	repos := repository.Repositories{
		Members:    m.members,
		Equipment:  m.equipment,
		Drones:     m.drones,
		Rentals:    m.rentals,
		Transports: m.transports,
	}
	return NewRentalService(&fakeTxRunner{repos: repos}, repos), m
}
