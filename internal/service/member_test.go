package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skygear-backend/internal/domain"
)

func TestAddMember_SetsJoinDate(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := NewMemberService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(m *domain.Member) bool {
		return m.UserID == "U1" && !m.StartDate.IsZero()
	})).Return(nil)

	err := svc.AddMember(ctx, &domain.Member{UserID: "U1", FirstName: "Ada", LastName: "Lovelace"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAddMember_RequiresUserID(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := NewMemberService(repo)

	err := svc.AddMember(context.Background(), &domain.Member{FirstName: "Ada", LastName: "Lovelace"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEditMember_EmptyPatchIsNoOp(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := NewMemberService(repo)

	err := svc.EditMember(context.Background(), "U1", domain.MemberPatch{})
	assert.ErrorIs(t, err, domain.ErrNoChanges)
	repo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestEditMember_NotFound(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := NewMemberService(repo)
	ctx := context.Background()

	repo.On("Exists", ctx, "missing").Return(false, nil)

	fname := "Grace"
	err := svc.EditMember(ctx, "missing", domain.MemberPatch{FirstName: &fname})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteMember_BlockedByReference(t *testing.T) {
	repo := new(MockMemberRepo)
	svc := NewMemberService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "U1").Return(domain.ErrReferenced)

	err := svc.DeleteMember(ctx, "U1")
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestEditDrone_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockDroneRepo)
	svc := NewDroneService(repo)

	bogus := domain.DroneStatus("FLYING")
	err := svc.EditDrone(context.Background(), "DR1", domain.DronePatch{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditEquipment_AllowsDirectStatusEdit(t *testing.T) {
	repo := new(MockEquipmentRepo)
	svc := NewEquipmentService(repo)
	ctx := context.Background()

	lost := domain.EquipmentStatusLost
	repo.On("Exists", ctx, "EQ100").Return(true, nil)
	repo.On("Patch", ctx, "EQ100", domain.EquipmentPatch{Status: &lost}).Return(nil)

	err := svc.EditEquipment(ctx, "EQ100", domain.EquipmentPatch{Status: &lost})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
