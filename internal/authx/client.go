// Package authx is the client SDK for the AuthX identity API. All business
// logic (credential verification, token minting, OTP and magic-link
// issuance, secret rotation) lives in the remote API; this package issues
// requests, attaches credentials, and normalizes errors.
package authx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client issues HTTP requests against the identity API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTokenSource sets the source of the bearer token attached to requests.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client for the given base URL
// (e.g. https://api.authx.dev/api/v1).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// requestOptions carries per-call overrides.
type requestOptions struct {
	basic   *ClientCredentials
	noStore bool
}

type requestOption func(*requestOptions)

// withBasic authenticates the call with client credentials instead of the
// bearer token.
func withBasic(creds ClientCredentials) requestOption {
	return func(o *requestOptions) {
		o.basic = &creds
	}
}

// withNoStore disables HTTP caching for the call. Used on every
// server-rendered data fetch so pages always revalidate.
func withNoStore() requestOption {
	return func(o *requestOptions) {
		o.noStore = true
	}
}

// errorBody is the best-effort shape of an error response body.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

// request performs a single attempt against the API. It never retries;
// retry policy, if any, belongs to the caller.
//
// Failure modes are kept distinct: a non-2xx response becomes an *APIError
// built from the body, a transport-level failure (no response at all)
// becomes a *TransportError.
func (c *Client) request(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := ulid.Make().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if options.noStore {
		req.Header.Set("Cache-Control", "no-store")
	}

	switch {
	case options.basic != nil:
		req.SetBasicAuth(options.basic.ID, options.basic.Secret)
	case c.tokens != nil:
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("identity API unreachable")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("identity API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	// 204 carries no body by definition.
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// decodeAPIError builds an APIError from a non-2xx response. A body that
// fails to parse as JSON is replaced with a generic message rather than
// propagating the parse error.
func decodeAPIError(resp *http.Response) *APIError {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	return &APIError{
		Status:  resp.StatusCode,
		Code:    body.Code,
		Message: message,
		Details: body.Details,
	}
}
