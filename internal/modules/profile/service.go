package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scholarhub/internal/domain"
)

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Repository interface {
	Upsert(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

type Service struct {
	profiles Repository
	users    UserReader
}

func NewService(profiles Repository, users UserReader) *Service {
	return &Service{profiles: profiles, users: users}
}

// Upsert creates or replaces the caller's profile in one write.
func (s *Service) Upsert(ctx context.Context, userID int64, req UpsertRequest) (*domain.Profile, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p := &domain.Profile{
		UserID:    userID,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Address:   req.Address,
		Education: req.Education,
		Family:    req.Family,
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.GetByUserID(ctx, userID)
}

func (s *Service) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.User != nil {
		p.User = p.User.Sanitized()
	}
	return p, nil
}
