package domain

import "time"

type UserRole string

const (
	RoleApplicant  UserRole = "APPLICANT"
	RoleReviewer   UserRole = "REVIEWER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

func ValidRole(r UserRole) bool {
	switch r {
	case RoleApplicant, RoleReviewer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID            int64    `json:"id" gorm:"primaryKey"`
	Name          string   `json:"name"`
	Email         string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string   `json:"-" gorm:"column:password_hash;not null"`
	Role          UserRole `json:"role" gorm:"default:APPLICANT"`
	Phone         string   `json:"phone,omitempty"`
	IsActive      bool     `json:"is_active" gorm:"default:true"`
	EmailVerified bool     `json:"email_verified" gorm:"default:false"`

	// Lockout and reset state, never serialized to clients.
	FailedLoginAttempts int        `json:"-"`
	LockUntil           *time.Time `json:"-"`
	ResetTokenHash      *string    `json:"-" gorm:"column:reset_token_hash;size:64;index"`
	ResetTokenExpires   *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// Sanitized returns a copy safe to hand to the HTTP layer.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	c.FailedLoginAttempts = 0
	c.LockUntil = nil
	c.ResetTokenHash = nil
	c.ResetTokenExpires = nil
	return &c
}
