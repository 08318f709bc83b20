package console

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/session"
)

const (
	ctxSessionKey = "session"
	ctxAPIKey     = "api"
)

// apiFor builds a per-request API client whose bearer token comes from the
// request's session cookie, plus the cookie store itself for lifecycle
// operations.
func (s *Server) apiFor(c *gin.Context) (*authx.Client, *cookieTokenStore) {
	store := newCookieTokenStore(c, s.config.Cookie.Domain, !s.config.Cookie.Insecure)
	api := authx.New(s.config.API.BaseURL,
		authx.WithLogger(s.logger),
		authx.WithTokenSource(authx.TokenFunc(store.Get)),
	)
	return api, store
}

// sessionMiddleware resolves the session for protected routes. The guard
// only fires once the refresh has completed, so a stored token always gets
// validated before any redirect. Unauthenticated browser navigations go to
// the login page; XHR callers get a 401. A transport failure during the
// refresh is routed to the network-error page, not surfaced as an auth
// failure.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		api, store := s.apiFor(c)
		sess := session.NewManager(store, api)

		if err := sess.Refresh(c.Request.Context()); err != nil && authx.IsUnreachable(err) {
			s.respondError(c, err)
			return
		}

		if sess.RequireLogin() {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, loginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "Not authenticated",
				"redirect": loginPath,
			})
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Set(ctxAPIKey, api)
		c.Next()
	}
}

// currentSession returns the session resolved by sessionMiddleware.
func currentSession(c *gin.Context) (*session.Manager, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Manager)
	return sess, ok
}

// currentAPI returns the per-request API client set by sessionMiddleware.
func currentAPI(c *gin.Context) (*authx.Client, bool) {
	v, exists := c.Get(ctxAPIKey)
	if !exists {
		return nil, false
	}
	api, ok := v.(*authx.Client)
	return api, ok
}

// loggingMiddleware creates a custom logging middleware using zerolog.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}
