package console

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the session cookie holding the admin bearer token.
const TokenCookieName = "authx_token"

// tokenCookieMaxAge is the fixed 7-day expiration window of the session
// cookie. Server-side token expiry is enforced by the identity API
// independently of this.
const tokenCookieMaxAge = 60 * 60 * 24 * 7

// cookieTokenStore implements session.TokenStore over a single
// request/response pair: it reads the incoming request's cookie header and
// writes Set-Cookie headers on the response. A write within the request
// shadows the incoming value, so a login followed by a refresh in the same
// request sees the fresh token.
type cookieTokenStore struct {
	c      *gin.Context
	domain string
	secure bool

	// override tracks a Set or Clear issued during this request.
	override    string
	hasOverride bool
}

func newCookieTokenStore(c *gin.Context, domain string, secure bool) *cookieTokenStore {
	return &cookieTokenStore{
		c:      c,
		domain: domain,
		secure: secure,
	}
}

func (s *cookieTokenStore) Get() (string, bool) {
	if s.hasOverride {
		return s.override, s.override != ""
	}
	cookie, err := s.c.Request.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *cookieTokenStore) Set(token string) error {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		MaxAge:   tokenCookieMaxAge,
		Path:     "/",
		Domain:   s.domain,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.override = token
	s.hasOverride = true
	return nil
}

func (s *cookieTokenStore) Clear() error {
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		Domain:   s.domain,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.override = ""
	s.hasOverride = true
	return nil
}

func (s *cookieTokenStore) IsPresent() bool {
	_, ok := s.Get()
	return ok
}
