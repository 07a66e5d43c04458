package scholarship

import (
	"context"

	"scholarhub/internal/domain"
	"scholarhub/internal/repository"
)

// Repository is the slice of scholarship storage the service uses.
type Repository interface {
	Create(ctx context.Context, s *domain.Scholarship) error
	GetByID(ctx context.Context, id int64) (*domain.Scholarship, error)
	Update(ctx context.Context, s *domain.Scholarship) error
	List(ctx context.Context, f repository.ScholarshipFilter) ([]domain.Scholarship, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ScholarshipStatus) error
}
