package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAccessTTL       = "15m"
	defaultRefreshTTL      = "720h"
	defaultEmailVerifyTTL  = "24h"
	defaultOTPTTL          = "5m"
	defaultResetTokenTTL   = "1h"
	defaultLockDuration    = "15m"
	defaultLoginWindow     = "15m"
	defaultRecipientWindow = "1h"
	defaultAccessSecret    = "change-me-access-secret"
	defaultRefreshSecret   = "change-me-refresh-secret"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string

	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	EmailVerifyTTL time.Duration
	OTPTTL         time.Duration
	ResetTokenTTL  time.Duration

	LockThreshold int
	LockDuration  time.Duration

	LoginRateMax        int
	LoginRateWindow     time.Duration
	RecipientRateMax    int
	RecipientRateWindow time.Duration

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	EmailDisabled bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "scholarhub.db")
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.FrontendURL = strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/")

	cfg.AccessSecret = strings.TrimSpace(getEnv("JWT_ACCESS_SECRET", defaultAccessSecret))
	cfg.RefreshSecret = strings.TrimSpace(getEnv("JWT_REFRESH_SECRET", defaultRefreshSecret))

	var err error
	if cfg.AccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTTL, err = parseDurationEnv("JWT_REFRESH_TTL", defaultRefreshTTL); err != nil {
		return nil, err
	}
	if cfg.EmailVerifyTTL, err = parseDurationEnv("EMAIL_VERIFY_TTL", defaultEmailVerifyTTL); err != nil {
		return nil, err
	}
	if cfg.OTPTTL, err = parseDurationEnv("OTP_TTL", defaultOTPTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTokenTTL, err = parseDurationEnv("RESET_TOKEN_TTL", defaultResetTokenTTL); err != nil {
		return nil, err
	}
	if cfg.LockDuration, err = parseDurationEnv("ACCOUNT_LOCK_DURATION", defaultLockDuration); err != nil {
		return nil, err
	}
	if cfg.LoginRateWindow, err = parseDurationEnv("RATE_LIMIT_LOGIN_WINDOW", defaultLoginWindow); err != nil {
		return nil, err
	}
	if cfg.RecipientRateWindow, err = parseDurationEnv("RATE_LIMIT_RECIPIENT_WINDOW", defaultRecipientWindow); err != nil {
		return nil, err
	}

	cfg.LockThreshold = parseIntEnv("ACCOUNT_LOCK_THRESHOLD", 5)
	cfg.LoginRateMax = parseIntEnv("RATE_LIMIT_LOGIN_MAX", 10)
	cfg.RecipientRateMax = parseIntEnv("RATE_LIMIT_RECIPIENT_MAX", 5)

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = parseIntEnv("SMTP_PORT", 587)
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.EmailDisabled = parseBoolEnv("EMAIL_DISABLED", "false")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProdLike reports whether default secrets and dev-only behavior
// (such as exposing verification tokens) must be rejected.
func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func validate(cfg *Config) error {
	if cfg.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.RefreshTTL <= 0 {
		return fmt.Errorf("JWT_REFRESH_TTL must be > 0")
	}
	if cfg.LockThreshold <= 0 {
		return fmt.Errorf("ACCOUNT_LOCK_THRESHOLD must be > 0")
	}
	if cfg.LockDuration <= 0 {
		return fmt.Errorf("ACCOUNT_LOCK_DURATION must be > 0")
	}
	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.AccessSecret, defaultAccessSecret) {
			return fmt.Errorf("in prod/release JWT_ACCESS_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshSecret, defaultRefreshSecret) {
			return fmt.Errorf("in prod/release JWT_REFRESH_SECRET must be set and not default")
		}
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
