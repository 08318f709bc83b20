package authx

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequest_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":"u1","username":"jane","email":"jane@x.com"}`))
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("tok-123")))
	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
}

func TestRequest_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("")))
	if _, err := client.ForgotPassword(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestRequest_BasicAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"active":true,"sub":"user-1","email":"u@x.com","exp":1708444800}`))
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.Introspect(context.Background(), ClientCredentials{ID: "app_1", Secret: "sk_test"}, "some-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("app_1:sk_test"))
	if gotAuth != want {
		t.Errorf("expected %q, got %q", want, gotAuth)
	}
	if !result.Active || result.Subject != "user-1" {
		t.Errorf("unexpected introspection result: %+v", result)
	}
}

func TestRequest_ErrorBodyRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"validation failed","code":"INVALID_INPUT","details":{"email":"already taken"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Register(context.Background(), RegisterRequest{Username: "jane", Email: "a@b.com", Password: "pw"})

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", apiErr.Status)
	}
	if apiErr.Code != "INVALID_INPUT" {
		t.Errorf("expected code INVALID_INPUT, got %q", apiErr.Code)
	}
	if apiErr.Message != "validation failed" {
		t.Errorf("expected body message, got %q", apiErr.Message)
	}
	if apiErr.Details["email"] != "already taken" {
		t.Errorf("expected details to round-trip, got %v", apiErr.Details)
	}
}

func TestRequest_ErrorFallbacks(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "error field used when message missing",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid credentials"}`,
			wantMessage: "invalid credentials",
		},
		{
			name:        "malformed body falls back to generic message",
			status:      http.StatusBadGateway,
			body:        `<html>nginx</html>`,
			wantMessage: "HTTP 502",
		},
		{
			name:        "empty body falls back to generic message",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(server.URL)
			_, err := client.Me(context.Background())

			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.Status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
		})
	}
}

func TestRequest_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 204 with no body; a decode attempt would fail loudly.
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("tok")))
	msg, err := client.DeleteApplication(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("expected empty result for 204, got error: %v", err)
	}
	if msg.Message != "" {
		t.Errorf("expected zero-value result, got %+v", msg)
	}
}

func TestRequest_TransportFailureIsDistinct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Guarantees connection refused

	client := New(server.URL, WithTokenSource(StaticToken("tok")))
	_, err := client.Me(context.Background())

	if !IsUnreachable(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if _, ok := AsAPIError(err); ok {
		t.Error("transport failure must never surface as an APIError")
	}
}

func TestRequest_ExactlyOneAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"try later"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.DashboardStats(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if attempts != 1 {
		t.Errorf("expected exactly one attempt, got %d", attempts)
	}
}

func TestRequest_NoStoreOnReads(t *testing.T) {
	var gotCacheControl string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(`{"total_apps":1,"total_users":2,"active_apps":1,"inactive_apps":0}`))
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("tok")))
	stats, err := client.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCacheControl != "no-store" {
		t.Errorf("expected no-store cache control, got %q", gotCacheControl)
	}
	if stats.TotalApps != 1 || stats.TotalUsers != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestRotateSecret_ExposesSecretOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/applications/app_1/rotate-secret":
			w.Write([]byte(`{"client_id":"app_1","client_secret":"sk_new","message":"rotated"}`))
		case "/admin/applications/id-1":
			// Application details never carry the secret.
			w.Write([]byte(`{"id":"id-1","app_name":"demo","client_id":"app_1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(StaticToken("tok")))

	creds, err := client.RotateSecret(context.Background(), "app_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.ClientSecret != "sk_new" || creds.Message != "rotated" {
		t.Errorf("unexpected credentials: %+v", creds)
	}

	app, err := client.Application(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ClientID != "app_1" {
		t.Errorf("unexpected application: %+v", app)
	}
}
