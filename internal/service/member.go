package service

import (
	"context"
	"fmt"
	"time"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/logger"
	"skygear-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) AddMember(ctx context.Context, m *domain.Member) error {
	if m.UserID == "" {
		return fmt.Errorf("%w: userID is required", domain.ErrValidation)
	}
	if m.FirstName == "" || m.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrValidation)
	}
	// Join date is set once here, never editable afterwards.
	m.StartDate = time.Now()

	if err := s.memberRepo.Create(ctx, m); err != nil {
		return err
	}
	logger.Info("Member added", "user_id", m.UserID)
	return nil
}

func (s *memberService) EditMember(ctx context.Context, userID string, p domain.MemberPatch) error {
	if p.IsEmpty() {
		return domain.ErrNoChanges
	}
	exists, err := s.memberRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return s.memberRepo.Patch(ctx, userID, p)
}

func (s *memberService) DeleteMember(ctx context.Context, userID string) error {
	// A member referenced by open ledger entries is protected by the store's
	// foreign keys; the delete surfaces that as ErrReferenced.
	if err := s.memberRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info("Member deleted", "user_id", userID)
	return nil
}

func (s *memberService) GetMember(ctx context.Context, userID string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, userID)
}

func (s *memberService) SearchMembers(ctx context.Context, lname string) ([]domain.Member, error) {
	return s.memberRepo.SearchByLastName(ctx, lname)
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}
