package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scholarhub/internal/notifier"
)

// RequestPasswordReset mints a raw reset token, persists only its hash
// and expiry on the user record, and mails the raw value.
//
// Unknown addresses return ErrUserNotFound (404), matching the
// historical API contract. This confirms account existence to the
// caller; see DESIGN.md for the hardening alternative.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	raw, err := randomToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, hashResetToken(raw), expires); err != nil {
		return err
	}

	subject, body := notifier.PasswordResetEmail(raw)
	s.notify(ctx, s.email, user.Email, subject, body)
	return nil
}

// ResetPassword matches the presented raw token by re-hashing it. A
// successful reset stores the new password hash, clears reset and lock
// state, and revokes the user's refresh token.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	user, err := s.users.GetByResetTokenHash(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if user.ResetTokenExpires == nil || !user.ResetTokenExpires.After(time.Now()) {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	// Credential change invalidates every outstanding session.
	return s.revokeRefresh(ctx, user.ID)
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
