package console

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/authx-dev/authx/internal/authx"
)

// Console routes the browser lands on after a failure. These belong to the
// dashboard frontend; the console only issues the navigation.
const (
	loginPath        = "/auth/login"
	networkErrorPath = "/network-error"
)

// wantsHTML reports whether the request came from a browser navigation
// rather than an XHR/fetch call.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// respondError is the single place upstream failures turn into responses.
// HTTP errors from the identity API keep their status and normalized body
// so forms can render message/details inline. A transport failure (no
// response at all) is the one class that becomes a navigation: every
// browser caller lands on the dedicated network-error page instead of
// rendering a bespoke offline state.
func (s *Server) respondError(c *gin.Context, err error) {
	if authx.IsUnreachable(err) {
		s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("identity API unreachable")
		if wantsHTML(c) {
			c.Redirect(http.StatusFound, networkErrorPath)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
			"message":  "Backend unreachable",
			"redirect": networkErrorPath,
		})
		return
	}

	if apiErr, ok := authx.AsAPIError(err); ok {
		body := gin.H{"message": apiErr.Message}
		if apiErr.Code != "" {
			body["code"] = apiErr.Code
		}
		if len(apiErr.Details) > 0 {
			body["details"] = apiErr.Details
		}
		c.AbortWithStatusJSON(apiErr.Status, body)
		return
	}

	s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
