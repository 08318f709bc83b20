package authx

import (
	"context"
	"fmt"
	"net/http"
)

// Applications lists all client applications owned by the current admin.
func (c *Client) Applications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.request(ctx, http.MethodGet, "/admin/applications", nil, &apps, withNoStore()); err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateApplicationRequest is the application creation request body.
type CreateApplicationRequest struct {
	AppName          string `json:"appName"`
	JWTExpiryMinutes int    `json:"jwtExpiryMinutes"`
}

// CreateApplication registers a new client application. The returned
// credentials carry the client secret; this is the only time it is shown
// for the initial secret.
func (c *Client) CreateApplication(ctx context.Context, req CreateApplicationRequest) (*ApplicationCredentials, error) {
	var creds ApplicationCredentials
	if err := c.request(ctx, http.MethodPost, "/admin/applications", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Application returns a single application by ID. The response never
// includes the client secret.
func (c *Client) Application(ctx context.Context, id string) (*Application, error) {
	var app Application
	if err := c.request(ctx, http.MethodGet, "/admin/applications/"+id, nil, &app, withNoStore()); err != nil {
		return nil, err
	}
	return &app, nil
}

// ApplicationUpdate holds the mutable application settings. Nil fields are
// left untouched by the API.
type ApplicationUpdate struct {
	AppName                *string `json:"app_name,omitempty"`
	JWTExpiryMinutes       *int    `json:"jwt_expiry_minutes,omitempty"`
	IsActive               *bool   `json:"is_active,omitempty"`
	OTPLength              *int    `json:"otp_length,omitempty"`
	OTPType                *string `json:"otp_type,omitempty"`
	OTPExpiryMinutes       *int    `json:"otp_expiry_minutes,omitempty"`
	MagicLinkExpiryMinutes *int    `json:"magic_link_expiry_minutes,omitempty"`
	PasswordResetStrategy  *string `json:"password_reset_strategy,omitempty"`
}

// UpdateApplication updates an application's settings and returns the new
// state.
func (c *Client) UpdateApplication(ctx context.Context, id string, update ApplicationUpdate) (*Application, error) {
	var app Application
	if err := c.request(ctx, http.MethodPut, "/admin/applications/"+id, update, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// DeleteApplication removes an application and all of its users.
func (c *Client) DeleteApplication(ctx context.Context, id string) (*MessageResponse, error) {
	var msg MessageResponse
	if err := c.request(ctx, http.MethodDelete, "/admin/applications/"+id, nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RotateSecret invalidates an application's client secret and mints a new
// one. The new secret appears exactly once in the response; subsequent
// reads of the application never expose it again.
func (c *Client) RotateSecret(ctx context.Context, clientID string) (*ApplicationCredentials, error) {
	var creds ApplicationCredentials
	path := fmt.Sprintf("/admin/applications/%s/rotate-secret", clientID)
	if err := c.request(ctx, http.MethodPost, path, nil, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// ApplicationUsers lists the end users registered under an application.
func (c *Client) ApplicationUsers(ctx context.Context, id string) ([]ApplicationUser, error) {
	var users []ApplicationUser
	path := fmt.Sprintf("/admin/applications/%s/users", id)
	if err := c.request(ctx, http.MethodGet, path, nil, &users, withNoStore()); err != nil {
		return nil, err
	}
	return users, nil
}
