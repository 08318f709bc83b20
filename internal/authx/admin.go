package authx

import (
	"context"
	"net/http"
)

// LoginRequest is the admin login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token. It does not store
// the token anywhere; the caller owns that.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	err := c.request(ctx, http.MethodPost, "/admin/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// RegisterRequest is the admin signup request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new admin account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var msg MessageResponse
	if err := c.request(ctx, http.MethodPost, "/admin/register", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Me returns the currently authenticated admin.
func (c *Client) Me(ctx context.Context) (*AdminMe, error) {
	var me AdminMe
	if err := c.request(ctx, http.MethodGet, "/admin/me", nil, &me, withNoStore()); err != nil {
		return nil, err
	}
	return &me, nil
}

// ProfileUpdate holds the fields an admin may change on their profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// UpdateProfile updates the current admin's profile.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*AdminMe, error) {
	var me AdminMe
	if err := c.request(ctx, http.MethodPut, "/admin/profile", update, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// ChangePassword changes the current admin's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/admin/change-password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ForgotPassword requests a password reset email for an admin account.
// The API answers with a generic message whether or not the account
// exists; callers must not infer existence from the response.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/admin/forgot-password", map[string]string{
		"email": email,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ResetPasswordMagicLink completes an admin password reset using a
// single-use magic-link token.
func (c *Client) ResetPasswordMagicLink(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/admin/reset-password/magic-link", map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// VerifyEmail confirms an admin's email address with a verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	var msg MessageResponse
	err := c.request(ctx, http.MethodPost, "/admin/verify-email", map[string]string{
		"token": token,
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DashboardStats returns the aggregate counts for the dashboard overview.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.request(ctx, http.MethodGet, "/admin/dashboard/stats", nil, &stats, withNoStore()); err != nil {
		return nil, err
	}
	return &stats, nil
}
