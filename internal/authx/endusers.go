package authx

import (
	"context"
	"net/http"
)

// End-user endpoints under /auth are the integrator surface: in production
// they are called by an application's own backend with client credentials,
// not by a browser. The console and CLI expose them for testing and
// debugging an application's configuration.

// SignupRequest is the end-user signup request body.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup registers an end user under the application identified by creds.
func (c *Client) Signup(ctx context.Context, creds ClientCredentials, req SignupRequest) (*MessageResponse, error) {
	var msg MessageResponse
	if err := c.request(ctx, http.MethodPost, "/auth/signup", req, &msg, withBasic(creds)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// UserLogin authenticates an end user by email or username and returns an
// application-scoped token.
func (c *Client) UserLogin(ctx context.Context, creds ClientCredentials, identifier, password string) (*TokenResponse, error) {
	var token TokenResponse
	err := c.request(ctx, http.MethodPost, "/auth/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	}, &token, withBasic(creds))
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// UserForgotPassword starts a password reset for an end user. Like the
// admin variant, the response is generic regardless of account existence.
func (c *Client) UserForgotPassword(ctx context.Context, creds ClientCredentials, identifier string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{
		"identifier": identifier,
	}, &msg, withBasic(creds))
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ResetPasswordOTP completes an end-user password reset with a one-time
// code. This endpoint is public: the OTP itself is the proof.
func (c *Client) ResetPasswordOTP(ctx context.Context, identifier, otp, newPassword string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/auth/reset-password/otp", map[string]string{
		"identifier":  identifier,
		"otp":         otp,
		"newPassword": newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UserResetPasswordMagicLink completes an end-user password reset with a
// single-use magic-link token. Public for the same reason as the OTP path.
func (c *Client) UserResetPasswordMagicLink(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/auth/reset-password/magic-link", map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UserVerifyEmail confirms an end user's email address.
func (c *Client) UserVerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/auth/verify-email", map[string]string{
		"token": token,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Introspect asks the identity API whether a bearer token is active and
// returns its claims.
func (c *Client) Introspect(ctx context.Context, creds ClientCredentials, token string) (*IntrospectionResult, error) {
	var result IntrospectionResult
	err := c.request(ctx, http.MethodPost, "/auth/introspect", map[string]string{
		"token": token,
	}, &result, withBasic(creds))
	if err != nil {
		return nil, err
	}
	return &result, nil
}
