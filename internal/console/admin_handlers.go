package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authx-dev/authx/internal/authx"
)

// getMe returns the admin already resolved by the session middleware;
// no second round trip to the identity API is needed.
func (s *Server) getMe(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	user, ok := sess.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=64"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (s *Server) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := currentAPI(c)
	me, err := api.UpdateProfile(c.Request.Context(), authx.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, me)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	api, _ := currentAPI(c)
	msg, err := api.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (s *Server) dashboardStats(c *gin.Context) {
	api, _ := currentAPI(c)
	stats, err := api.DashboardStats(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
