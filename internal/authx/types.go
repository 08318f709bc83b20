package authx

import "time"

// AdminMe is the identity API's projection of the current admin account.
type AdminMe struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// TokenResponse is returned by the login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// OTP types accepted by the identity API.
const (
	OTPTypeNumeric      = "NUMERIC"
	OTPTypeAlphanumeric = "ALPHANUMERIC"
)

// Password reset strategies accepted by the identity API.
const (
	ResetStrategyOTP       = "OTP"
	ResetStrategyMagicLink = "MAGIC_LINK"
)

// Application is a registered client application. The client secret is
// never part of this shape; it is only ever exposed through
// ApplicationCredentials at creation or rotation time.
type Application struct {
	ID                     string    `json:"id"`
	AppName                string    `json:"app_name"`
	ClientID               string    `json:"client_id"`
	JWTExpiryMinutes       int       `json:"jwt_expiry_minutes"`
	IsActive               bool      `json:"is_active"`
	OTPLength              int       `json:"otp_length"`
	OTPType                string    `json:"otp_type"`
	OTPExpiryMinutes       int       `json:"otp_expiry_minutes"`
	MagicLinkExpiryMinutes int       `json:"magic_link_expiry_minutes"`
	PasswordResetStrategy  string    `json:"password_reset_strategy"`
	CreatedAt              time.Time `json:"created_at"`
}

// ApplicationCredentials carries the one-time secret returned when an
// application is created or its secret is rotated.
type ApplicationCredentials struct {
	AppName      string `json:"app_name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Message      string `json:"message"`
}

// ApplicationUser is an end user registered under an application.
type ApplicationUser struct {
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DashboardStats holds the aggregate counts shown on the dashboard.
type DashboardStats struct {
	TotalApps    int `json:"total_apps"`
	TotalUsers   int `json:"total_users"`
	ActiveApps   int `json:"active_apps"`
	InactiveApps int `json:"inactive_apps"`
}

// MessageResponse is the generic acknowledgement shape used by several
// endpoints, including forgot-password (which returns it regardless of
// account existence).
type MessageResponse struct {
	Message string `json:"message"`
}

// IntrospectionResult is the identity API's answer to a token
// introspection request.
type IntrospectionResult struct {
	Active    bool   `json:"active"`
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
}
