package notifier

import "fmt"

func VerificationEmail(name, frontendURL, rawToken string) (subject, body string) {
	subject = "Verify your email"
	body = fmt.Sprintf(
		"Hello %s,\n\nPlease verify your email by opening the link below:\n%s/verify-email?token=%s\n\nOr use this token directly: %s\n",
		name, frontendURL, rawToken, rawToken,
	)
	return subject, body
}

func PasswordResetEmail(rawToken string) (subject, body string) {
	subject = "Password Reset"
	body = fmt.Sprintf(
		"You requested a password reset.\n\nUse the token below to reset your password:\n%s\n\nThe token expires in one hour. If you did not request this, ignore this message.\n",
		rawToken,
	)
	return subject, body
}

func OTPMessage(code string) (subject, body string) {
	return "Your verification code", fmt.Sprintf("Your OTP is %s", code)
}
