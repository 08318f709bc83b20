// Package console implements the AuthX admin console BFF: it owns the
// browser session cookie and fronts the remote identity API for the
// dashboard frontend. No business logic lives here; every decision about
// credentials, tokens, and secrets is made upstream.
package console

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/authx-dev/authx/internal/config"
)

// Server is the console HTTP server.
type Server struct {
	router *gin.Engine
	config *config.Config
	logger zerolog.Logger
}

// New creates a new console server.
func New(cfg *config.Config, zlog zerolog.Logger) (*Server, error) {
	registerValidators()

	server := &Server{
		config: cfg,
		logger: zlog,
	}
	server.setupRouter()

	return server, nil
}

// registerValidators adds custom validations to gin's binding validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Application names: alphanumeric plus hyphen, underscore, and space.
	_ = v.RegisterValidation("appname", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, char := range value {
			if !((char >= 'a' && char <= 'z') ||
				(char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9') ||
				char == '-' ||
				char == '_' ||
				char == ' ') {
				return false
			}
		}
		return value != ""
	})
}

// setupRouter configures the Gin router with routes and middleware.
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.config.Server.DashboardOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.GET("/api/health", s.healthCheck)

	// Public auth endpoints. Credential validation happens upstream; these
	// mostly relay and manage the session cookie.
	authRoutes := s.router.Group("/api/auth")
	{
		authRoutes.POST("/login", s.login)
		authRoutes.POST("/logout", s.logout)
		authRoutes.POST("/register", s.register)
		authRoutes.POST("/forgot-password", s.forgotPassword)
		authRoutes.POST("/reset-password", s.resetPassword)
		authRoutes.POST("/verify-email", s.verifyEmail)
	}

	// Session-guarded console API.
	api := s.router.Group("/api")
	api.Use(s.sessionMiddleware())
	{
		api.GET("/me", s.getMe)
		api.PUT("/profile", s.updateProfile)
		api.POST("/change-password", s.changePassword)

		api.GET("/applications", s.listApplications)
		api.POST("/applications", s.createApplication)
		api.GET("/applications/:id", s.getApplication)
		api.PUT("/applications/:id", s.updateApplication)
		api.DELETE("/applications/:id", s.deleteApplication)
		api.POST("/applications/:id/rotate-secret", s.rotateSecret)
		api.GET("/applications/:id/users", s.listApplicationUsers)

		api.GET("/dashboard/stats", s.dashboardStats)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "authx-console",
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              s.config.Server.ListenAddr,
		Handler:           s.router,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       300 * time.Second,
	}

	go func() {
		s.logger.Info().Str("addr", s.config.Server.ListenAddr).Msg("Starting console server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	<-sigChan
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
