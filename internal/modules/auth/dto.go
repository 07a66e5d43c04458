package auth

import "scholarhub/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=APPLICANT REVIEWER ADMIN SUPER_ADMIN"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
	Email string `json:"email" binding:"omitempty,email"`
	OTP   string `json:"otp"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type SendOTPRequest struct {
	To      string `json:"to" binding:"required"`
	Purpose string `json:"purpose"`
}

type VerifyOTPRequest struct {
	To      string `json:"to" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Purpose string `json:"purpose"`
}

type RegisterResult struct {
	User *domain.User
	// VerificationToken is the raw email-verification token. The
	// handler only exposes it outside prod-like environments.
	VerificationToken string
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
