package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/session"
)

// loginRequest is the console login payload.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// loginResponse returns the resolved admin; the token itself only travels
// in the session cookie, never in the body.
type loginResponse struct {
	User      any `json:"user"`
	ExpiresIn int `json:"expires_in"`
}

// login exchanges credentials upstream, stores the returned token in the
// session cookie, and resolves the admin behind it in one round trip.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, store := s.apiFor(c)

	token, err := api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	sess := session.NewManager(store, api)
	if err := sess.Login(c.Request.Context(), token.AccessToken); err != nil {
		// The token was just minted, so a failure here is either an outage
		// or an upstream inconsistency. The cookie has already been
		// cleared by the session manager.
		s.respondError(c, err)
		return
	}

	user, _ := sess.User()
	c.JSON(http.StatusOK, loginResponse{
		User:      user,
		ExpiresIn: token.ExpiresIn,
	})
}

// logout clears the session cookie. It succeeds even without a session so
// a half-logged-out browser can always recover.
func (s *Server) logout(c *gin.Context) {
	_, store := s.apiFor(c)
	_ = store.Clear()
	c.Status(http.StatusNoContent)
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := s.apiFor(c)
	msg, err := api.Register(c.Request.Context(), authx.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// forgotPassword relays the upstream response as-is. The identity API
// answers with a generic message whether or not the account exists, and
// the console must not leak anything beyond that.
func (s *Server) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := s.apiFor(c)
	msg, err := api.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (s *Server) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := s.apiFor(c)
	msg, err := api.ResetPasswordMagicLink(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

type verifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

func (s *Server) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := s.apiFor(c)
	msg, err := api.VerifyEmail(c.Request.Context(), req.Token)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}
