package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authx-dev/authx/internal/authx"
)

func (s *Server) listApplications(c *gin.Context) {
	api, _ := currentAPI(c)
	apps, err := api.Applications(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

type createApplicationRequest struct {
	AppName          string `json:"appName" binding:"required,min=3,max=64,appname"`
	JWTExpiryMinutes int    `json:"jwtExpiryMinutes" binding:"required,min=1,max=10080"`
}

// createApplication registers a new application. The response is the only
// place the initial client secret ever appears.
func (s *Server) createApplication(c *gin.Context) {
	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := currentAPI(c)
	creds, err := api.CreateApplication(c.Request.Context(), authx.CreateApplicationRequest{
		AppName:          req.AppName,
		JWTExpiryMinutes: req.JWTExpiryMinutes,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, creds)
}

func (s *Server) getApplication(c *gin.Context) {
	api, _ := currentAPI(c)
	app, err := api.Application(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

type updateApplicationRequest struct {
	AppName                *string `json:"app_name,omitempty" binding:"omitempty,min=3,max=64,appname"`
	JWTExpiryMinutes       *int    `json:"jwt_expiry_minutes,omitempty" binding:"omitempty,min=1,max=10080"`
	IsActive               *bool   `json:"is_active,omitempty"`
	OTPLength              *int    `json:"otp_length,omitempty" binding:"omitempty,min=4,max=10"`
	OTPType                *string `json:"otp_type,omitempty" binding:"omitempty,oneof=NUMERIC ALPHANUMERIC"`
	OTPExpiryMinutes       *int    `json:"otp_expiry_minutes,omitempty" binding:"omitempty,min=1,max=1440"`
	MagicLinkExpiryMinutes *int    `json:"magic_link_expiry_minutes,omitempty" binding:"omitempty,min=1,max=1440"`
	PasswordResetStrategy  *string `json:"password_reset_strategy,omitempty" binding:"omitempty,oneof=OTP MAGIC_LINK"`
}

func (s *Server) updateApplication(c *gin.Context) {
	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := currentAPI(c)
	app, err := api.UpdateApplication(c.Request.Context(), c.Param("id"), authx.ApplicationUpdate{
		AppName:                req.AppName,
		JWTExpiryMinutes:       req.JWTExpiryMinutes,
		IsActive:               req.IsActive,
		OTPLength:              req.OTPLength,
		OTPType:                req.OTPType,
		OTPExpiryMinutes:       req.OTPExpiryMinutes,
		MagicLinkExpiryMinutes: req.MagicLinkExpiryMinutes,
		PasswordResetStrategy:  req.PasswordResetStrategy,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (s *Server) deleteApplication(c *gin.Context) {
	api, _ := currentAPI(c)
	msg, err := api.DeleteApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// rotateSecret mints a new client secret upstream. The route parameter is
// the application's client ID, and the fresh secret is shown once in this
// response only.
func (s *Server) rotateSecret(c *gin.Context) {
	api, _ := currentAPI(c)
	creds, err := api.RotateSecret(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, creds)
}

func (s *Server) listApplicationUsers(c *gin.Context) {
	api, _ := currentAPI(c)
	users, err := api.ApplicationUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
