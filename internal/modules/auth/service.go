package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scholarhub/internal/domain"
	"scholarhub/internal/kvstore"
	"scholarhub/internal/notifier"
)

// bcryptCost matches the original deployment; keeps a single hash in
// the ~100ms range on current hardware.
const bcryptCost = 12

const (
	refreshKeyPrefix  = "refresh:"
	emailVerifyPrefix = "emailv:"
	emailOTPPrefix    = "email_verification:"
	otpPrefix         = "otp:"
)

// Config carries the tunables the service reads; defaults mirror the
// environment-level configuration.
type Config struct {
	LockThreshold  int
	LockDuration   time.Duration
	RefreshTTL     time.Duration
	EmailVerifyTTL time.Duration
	OTPTTL         time.Duration
	ResetTokenTTL  time.Duration
	FrontendURL    string
}

// Service holds the business rules for registration, login with
// lockout, token rotation, verification and password reset. Its
// collaborators are mechanical adapters.
type Service struct {
	users UserRepository
	kv    kvstore.Store
	codec TokenCodec
	email notifier.Notifier
	sms   notifier.Notifier
	cfg   Config
}

func NewService(users UserRepository, kv kvstore.Store, codec TokenCodec, email, sms notifier.Notifier, cfg Config) *Service {
	if cfg.LockThreshold <= 0 {
		cfg.LockThreshold = 5
	}
	if cfg.LockDuration <= 0 {
		cfg.LockDuration = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}
	if cfg.EmailVerifyTTL <= 0 {
		cfg.EmailVerifyTTL = 24 * time.Hour
	}
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	return &Service{
		users: users,
		kv:    kv,
		codec: codec,
		email: email,
		sms:   sms,
		cfg:   cfg,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if !domain.ValidRole(role) {
		role = domain.RoleApplicant
	}

	user := &domain.User{
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		PasswordHash:  string(hash),
		Role:          role,
		Phone:         strings.TrimSpace(req.Phone),
		IsActive:      true,
		EmailVerified: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	rawToken, err := randomToken()
	if err != nil {
		return nil, err
	}
	userID := strconv.FormatInt(user.ID, 10)
	if err := s.kv.SetWithTTL(ctx, emailVerifyPrefix+rawToken, userID, s.cfg.EmailVerifyTTL); err != nil {
		return nil, err
	}

	subject, body := notifier.VerificationEmail(user.Name, s.cfg.FrontendURL, rawToken)
	s.notify(ctx, s.email, user.Email, subject, body)

	return &RegisterResult{User: user.Sanitized(), VerificationToken: rawToken}, nil
}

// Login walks the per-user state machine: existence, verification,
// lock, then the password. Failed comparisons bump the counter and may
// arm the lock, but the caller always sees plain invalid credentials
// on the locking attempt so lockout adds no enumeration signal.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	now := time.Now()
	if user.IsLocked(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		attempts := user.FailedLoginAttempts + 1
		var lockUntil *time.Time
		if attempts >= s.cfg.LockThreshold {
			t := now.Add(s.cfg.LockDuration)
			lockUntil = &t
		}
		if updateErr := s.users.RecordLoginFailure(ctx, user.ID, attempts, lockUntil); updateErr != nil {
			return nil, updateErr
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockUntil != nil {
		if err := s.users.ResetLoginState(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user.Sanitized(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RotateRefresh exchanges a live refresh token for a fresh pair. The
// presented token must verify AND exactly match the stored value for
// its subject; the overwrite makes every prior token single-use.
func (s *Service) RotateRefresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrMissingRefreshToken
	}

	claims, err := s.codec.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	key := refreshKeyPrefix + strconv.FormatInt(claims.UserID, 10)
	stored, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if stored != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, newRefresh, err := s.issueTokenPair(ctx, claims.UserID, claims.Role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

// Logout revokes the stored refresh token. Idempotent.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.kv.Delete(ctx, refreshKeyPrefix+strconv.FormatInt(userID, 10))
}

// revokeRefresh drops the subject's refresh token; password reset uses
// it to force re-login everywhere.
func (s *Service) revokeRefresh(ctx context.Context, userID int64) error {
	return s.kv.Delete(ctx, refreshKeyPrefix+strconv.FormatInt(userID, 10))
}

func (s *Service) issueTokenPair(ctx context.Context, userID int64, role string) (access string, refresh string, err error) {
	access, err = s.codec.IssueAccess(userID, role)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.codec.IssueRefresh(userID, role)
	if err != nil {
		return "", "", err
	}
	// One live refresh token per user: this write supersedes whatever
	// was stored before, including tokens held by other sessions.
	key := refreshKeyPrefix + strconv.FormatInt(userID, 10)
	if err = s.kv.SetWithTTL(ctx, key, refresh, s.cfg.RefreshTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// notify delivers best-effort: failures are logged and swallowed so an
// unreachable mail or SMS gateway never fails the primary operation.
func (s *Service) notify(ctx context.Context, n notifier.Notifier, to, subject, body string) {
	if n == nil {
		return
	}
	if err := n.Send(ctx, to, subject, body); err != nil {
		log.Printf("auth: notification to %s failed: %v", to, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
