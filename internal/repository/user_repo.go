package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"scholarhub/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// RecordLoginFailure persists a bumped failure counter, plus the lock
// deadline when the attempt tripped the threshold.
func (r *UserRepository) RecordLoginFailure(ctx context.Context, id int64, attempts int, lockUntil *time.Time) error {
	updates := map[string]any{"failed_login_attempts": attempts}
	if lockUntil != nil {
		updates["lock_until"] = *lockUntil
	}
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates).Error
}

// ResetLoginState clears the failure counter and any lock after a
// successful login.
func (r *UserRepository) ResetLoginState(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"failed_login_attempts": 0,
		"lock_until":            nil,
	}).Error
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("email_verified", true).Error
}

func (r *UserRepository) SetResetToken(ctx context.Context, id int64, tokenHash string, expires time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"reset_token_hash":    tokenHash,
		"reset_token_expires": expires,
	}).Error
}

// GetByResetTokenHash matches a presented (re-hashed) reset token; the
// expiry check belongs to the caller so invalid and expired collapse to
// the same failure.
func (r *UserRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("reset_token_hash = ?", tokenHash).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword sets the new hash and clears reset-token and lock
// state in a single write.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash":         passwordHash,
		"reset_token_hash":      nil,
		"reset_token_expires":   nil,
		"failed_login_attempts": 0,
		"lock_until":            nil,
	}).Error
}
