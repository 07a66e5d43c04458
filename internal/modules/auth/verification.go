package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"gorm.io/gorm"

	"scholarhub/internal/kvstore"
	"scholarhub/internal/notifier"
)

// VerifyEmail consumes a link token minted at registration. One-shot:
// the key is deleted on success, so a replayed token fails.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) error {
	key := emailVerifyPrefix + rawToken
	stored, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	userID, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.MarkEmailVerified(ctx, userID); err != nil {
		return err
	}
	return s.kv.Delete(ctx, key)
}

// VerifyEmailByOTP is the alternate verification path: a code stored
// under the recipient's address rather than a random link token.
func (s *Service) VerifyEmailByOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return ErrInvalidToken
	}

	key := emailOTPPrefix + normalizeEmail(email)
	stored, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if stored != otp {
		return ErrInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.MarkEmailVerified(ctx, user.ID); err != nil {
		return err
	}
	return s.kv.Delete(ctx, key)
}

// SendOTP stores a six digit code under otp:<purpose>:<recipient> and
// texts it out best-effort.
func (s *Service) SendOTP(ctx context.Context, to, purpose string) error {
	if purpose == "" {
		purpose = "login"
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.kv.SetWithTTL(ctx, otpKey(purpose, to), code, s.cfg.OTPTTL); err != nil {
		return err
	}

	subject, body := notifier.OTPMessage(code)
	s.notify(ctx, s.sms, to, subject, body)
	return nil
}

// VerifyOTP checks the stored code. A wrong code leaves the entry in
// place (the real code stays valid until its TTL); the right code
// consumes it.
func (s *Service) VerifyOTP(ctx context.Context, to, code, purpose string) error {
	if purpose == "" {
		purpose = "login"
	}

	key := otpKey(purpose, to)
	stored, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if stored != code {
		return ErrInvalidToken
	}
	return s.kv.Delete(ctx, key)
}

func otpKey(purpose, to string) string {
	return otpPrefix + purpose + ":" + to
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
