package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service      *Service
	exposeTokens bool
}

// NewHandler creates the auth handler. exposeTokens controls whether
// the raw verification token appears in the register response; keep it
// false in prod-like environments.
func NewHandler(service *Service, exposeTokens bool) *Handler {
	return &Handler{service: service, exposeTokens: exposeTokens}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup, loginLimiter, recipientLimiter gin.HandlerFunc) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/verify-email", h.VerifyEmail)
		authGroup.POST("/login", loginLimiter, h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/request-password-reset", recipientLimiter, h.RequestPasswordReset)
		authGroup.POST("/reset-password", h.ResetPassword)
		authGroup.POST("/send-otp", recipientLimiter, h.SendOTP)
		authGroup.POST("/verify-otp", h.VerifyOTP)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)
}

type errorMapping struct {
	status  int
	code    string
	message string
}

// serviceErrors maps the taxonomy to fixed transport statuses.
var serviceErrors = []struct {
	err     error
	mapping errorMapping
}{
	{ErrEmailAlreadyExists, errorMapping{http.StatusConflict, "EMAIL_EXISTS", "This email is already registered"}},
	{ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect"}},
	{ErrEmailNotVerified, errorMapping{http.StatusForbidden, "EMAIL_NOT_VERIFIED", "Please verify your email before logging in"}},
	{ErrAccountLocked, errorMapping{http.StatusLocked, "ACCOUNT_LOCKED", "Account locked due to multiple failed attempts"}},
	{ErrUserNotFound, errorMapping{http.StatusNotFound, "USER_NOT_FOUND", "No user with that email"}},
	{ErrMissingRefreshToken, errorMapping{http.StatusBadRequest, "MISSING_REFRESH_TOKEN", "Missing refresh token"}},
	{ErrInvalidRefreshToken, errorMapping{http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Invalid or expired refresh token"}},
	{ErrInvalidToken, errorMapping{http.StatusBadRequest, "INVALID_TOKEN", "Invalid or expired token"}},
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			response.Error(c, m.mapping.status, m.mapping.code, m.mapping.message)
			return
		}
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to register")
		return
	}

	data := gin.H{
		"message": "Verification email sent",
		"user":    result.User,
	}
	if h.exposeTokens {
		data["verificationToken"] = result.VerificationToken
	}
	response.Success(c, http.StatusCreated, data)
}

// VerifyEmail accepts either {token} or {email, otp}.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var err error
	switch {
	case req.Token != "":
		err = h.service.VerifyEmail(c.Request.Context(), req.Token)
	case req.Email != "" && req.OTP != "":
		err = h.service.VerifyEmailByOTP(c.Request.Context(), req.Email, req.OTP)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing token or email+otp")
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to verify email")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Email verified"})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"user":         result.User,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pair, err := h.service.RotateRefresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.fail(c, err, "Failed to refresh session")
		return
	}

	response.Success(c, http.StatusOK, pair)
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		h.fail(c, err, "Failed to logout")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req RequestPasswordResetRequest
	// body was already consumed by the recipient rate limiter
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.fail(c, err, "Failed to request password reset")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Reset code sent"})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.fail(c, err, "Failed to reset password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password reset"})
}

func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	// body was already consumed by the recipient rate limiter
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SendOTP(c.Request.Context(), req.To, req.Purpose); err != nil {
		h.fail(c, err, "Failed to send OTP")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "OTP sent"})
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyOTP(c.Request.Context(), req.To, req.Code, req.Purpose); err != nil {
		h.fail(c, err, "Failed to verify OTP")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "OTP verified"})
}
