package console

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authx-dev/authx/internal/config"
)

const testToken = "tok-abc"

// mockIdentityAPI stands in for the remote identity API.
func mockIdentityAPI(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.Method + " " + r.URL.Path {
		case "POST /admin/login":
			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if req.Email != "jane@x.com" || req.Password != "secret123" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid email or password"}`))
				return
			}
			w.Write([]byte(`{"access_token":"` + testToken + `","token_type":"bearer","expires_in":604800}`))

		case "GET /admin/me":
			if r.Header.Get("Authorization") != "Bearer "+testToken {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid or expired token"}`))
				return
			}
			w.Write([]byte(`{"id":"u1","username":"jane","email":"jane@x.com","is_email_verified":true,"created_at":"2025-01-01T00:00:00Z"}`))

		case "POST /admin/applications":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"app name taken","code":"DUPLICATE","details":{"appName":"already in use"}}`))

		case "POST /admin/applications/app_1/rotate-secret":
			w.Write([]byte(`{"client_id":"app_1","client_secret":"sk_new","message":"rotated"}`))

		case "POST /admin/forgot-password":
			// Same answer whether or not the account exists.
			w.Write([]byte(`{"message":"If the account exists, a reset email has been sent"}`))

		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}))
}

func newTestServer(t *testing.T, apiBaseURL string) *Server {
	t.Helper()

	cfg := &config.Config{
		API:    config.APIConfig{BaseURL: apiBaseURL},
		Server: config.ServerConfig{ListenAddr: ":0", DashboardOrigin: "http://localhost:5173"},
		Logging: config.LoggingConfig{
			Level:  "error",
			Format: "json",
		},
	}

	server, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return server
}

func doRequest(s *Server, method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	resp := http.Response{Header: w.Header()}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == TokenCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/auth/login", `{"email":"jane@x.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.Equal(t, testToken, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, tokenCookieMaxAge, cookie.MaxAge)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var body struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		ExpiresIn int `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jane", body.User.Username)
	assert.Equal(t, 604800, body.ExpiresIn)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/auth/login", `{"email":"jane@x.com","password":"wrong-pass"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestGuard_MissingSession(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	// XHR callers get a 401 with a redirect hint.
	w := doRequest(server, "GET", "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), loginPath)

	// Browser navigations are redirected to the login page.
	w = doRequest(server, "GET", "/api/me", "", func(r *http.Request) {
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))
}

func TestGuard_ValidSession(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "GET", "/api/me", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"username":"jane"`)
}

func TestGuard_StaleTokenIsClearedAndRejected(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "GET", "/api/me", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "expired-token"})
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The rejected token is deleted so the browser doesn't resend it.
	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestNetworkFailure_RedirectsBrowser(t *testing.T) {
	upstream := mockIdentityAPI(t)
	upstream.Close() // Guarantees connection refused
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "GET", "/api/me", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, networkErrorPath, w.Header().Get("Location"))

	// XHR callers get a 502 with the same navigation hint instead.
	w = doRequest(server, "GET", "/api/me", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), networkErrorPath)
}

func TestLogout_ClearsCookie(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/auth/logout", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestRotateSecret_RelaysOneTimeSecret(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/applications/app_1/rotate-secret", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "sk_new")
}

func TestUpstreamError_RoundTrips(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/applications", `{"appName":"my-app","jwtExpiryMinutes":60}`, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "app name taken")
	assert.Contains(t, w.Body.String(), "already in use")
}

func TestForgotPassword_GenericResponse(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	w := doRequest(server, "POST", "/api/auth/forgot-password", `{"email":"ghost@x.com"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the account exists")
}

func TestCreateApplication_ValidatesPayload(t *testing.T) {
	upstream := mockIdentityAPI(t)
	defer upstream.Close()
	server := newTestServer(t, upstream.URL)

	tests := []struct {
		name string
		body string
	}{
		{name: "bad app name characters", body: `{"appName":"bad/name!","jwtExpiryMinutes":60}`},
		{name: "missing jwt expiry", body: `{"appName":"my-app"}`},
		{name: "jwt expiry out of range", body: `{"appName":"my-app","jwtExpiryMinutes":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(server, "POST", "/api/applications", tt.body, func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: testToken})
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
