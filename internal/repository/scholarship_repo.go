package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"scholarhub/internal/domain"
)

type ScholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

type ScholarshipFilter struct {
	Page   int
	Limit  int
	Status domain.ScholarshipStatus
	Query  string
}

func (r *ScholarshipRepository) Create(ctx context.Context, s *domain.Scholarship) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*domain.Scholarship, error) {
	var s domain.Scholarship
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScholarshipRepository) Update(ctx context.Context, s *domain.Scholarship) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScholarshipRepository) List(ctx context.Context, f ScholarshipFilter) ([]domain.Scholarship, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.db.WithContext(ctx).Model(&domain.Scholarship{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + term + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Scholarship
	err := q.Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *ScholarshipRepository) UpdateStatus(ctx context.Context, id int64, status domain.ScholarshipStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Scholarship{}).Where("id = ?", id).
		Update("status", status).Error
}
