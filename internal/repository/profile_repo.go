package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarhub/internal/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert creates the profile on first write and replaces the mutable
// fields afterwards, keyed by the unique user_id.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"dob", "gender",
			"addr_line1", "addr_line2", "addr_city", "addr_state", "addr_country", "addr_postal_code",
			"education",
			"family_father_name", "family_mother_name", "family_annual_income",
			"updated_at",
		}),
	}).Create(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
