package scholarship

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholarhub/internal/domain"
	"scholarhub/internal/repository"
)

// Service implements the listing publishing workflow. Listings start
// as DRAFT and move to PUBLISHED and CLOSED by explicit transitions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest, createdBy int64) (*domain.Scholarship, error) {
	sch := &domain.Scholarship{
		Code:        uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Amount:      req.Amount,
		Deadline:    req.Deadline,
		Eligibility: req.Eligibility,
		Status:      domain.ScholarshipDraft,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, sch); err != nil {
		return nil, err
	}
	return sch, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Scholarship, error) {
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sch, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Scholarship, error) {
	sch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		sch.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != nil {
		sch.Description = *req.Description
	}
	if req.Amount != nil {
		sch.Amount = *req.Amount
	}
	if req.Deadline != nil {
		sch.Deadline = req.Deadline
	}
	if req.Eligibility != nil {
		sch.Eligibility = *req.Eligibility
	}

	if err := s.repo.Update(ctx, sch); err != nil {
		return nil, err
	}
	return sch, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Scholarship, int64, error) {
	return s.repo.List(ctx, repository.ScholarshipFilter{
		Page:   q.Page,
		Limit:  q.Limit,
		Status: domain.ScholarshipStatus(q.Status),
		Query:  q.Q,
	})
}

func (s *Service) Publish(ctx context.Context, id int64) (*domain.Scholarship, error) {
	return s.transition(ctx, id, domain.ScholarshipPublished)
}

func (s *Service) Close(ctx context.Context, id int64) (*domain.Scholarship, error) {
	return s.transition(ctx, id, domain.ScholarshipClosed)
}

func (s *Service) transition(ctx context.Context, id int64, status domain.ScholarshipStatus) (*domain.Scholarship, error) {
	sch, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	sch.Status = status
	return sch, nil
}
