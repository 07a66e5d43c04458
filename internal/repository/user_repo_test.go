package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarhub/internal/database"
	"scholarhub/internal/domain"
)

func newUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewUserRepository(db)
}

func createUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         "Ann",
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleApplicant,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepo_ExistsByEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()
	createUser(t, repo, "ann@x.com")

	exists, err := repo.ExistsByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepo_LoginStateRoundTrip(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()
	u := createUser(t, repo, "ann@x.com")

	until := time.Now().Add(15 * time.Minute)
	require.NoError(t, repo.RecordLoginFailure(ctx, u.ID, 3, &until))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.FailedLoginAttempts)
	require.NotNil(t, got.LockUntil)
	assert.True(t, got.IsLocked(time.Now()))

	require.NoError(t, repo.ResetLoginState(ctx, u.ID))

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FailedLoginAttempts)
	assert.Nil(t, got.LockUntil)
}

func TestUserRepo_MarkEmailVerified(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()
	u := createUser(t, repo, "ann@x.com")

	require.NoError(t, repo.MarkEmailVerified(ctx, u.ID))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.EmailVerified)
}

func TestUserRepo_ResetTokenLifecycle(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()
	u := createUser(t, repo, "ann@x.com")

	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.SetResetToken(ctx, u.ID, "deadbeef", expires))

	got, err := repo.GetByResetTokenHash(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotNil(t, got.ResetTokenExpires)

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "newhash"))

	// the reset token is consumed by the password change
	_, err = repo.GetByResetTokenHash(ctx, "deadbeef")
	assert.Error(t, err)

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.PasswordHash)
	assert.Nil(t, got.ResetTokenHash)
	assert.Nil(t, got.ResetTokenExpires)
}
