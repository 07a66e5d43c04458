package auth

import (
	"context"
	"time"

	"scholarhub/internal/domain"
	"scholarhub/internal/pkg/jwt"
)

// UserRepository is the slice of user storage the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	RecordLoginFailure(ctx context.Context, id int64, attempts int, lockUntil *time.Time) error
	ResetLoginState(ctx context.Context, id int64) error
	MarkEmailVerified(ctx context.Context, id int64) error
	SetResetToken(ctx context.Context, id int64, tokenHash string, expires time.Time) error
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// TokenCodec issues and verifies the two signed token classes.
// Satisfied by *jwt.Codec.
type TokenCodec interface {
	IssueAccess(userID int64, role string) (string, error)
	IssueRefresh(userID int64, role string) (string, error)
	ParseRefresh(token string) (*jwt.Claims, error)
}
