package authx

// TokenSource yields the bearer token attached to outgoing requests.
// Implementations are dumb containers: no local validation of token shape
// or expiry happens here, the identity API is the sole authority.
type TokenSource interface {
	// Token returns the current token and whether one is present.
	Token() (string, bool)
}

// StaticToken is a TokenSource holding a fixed token value.
// An empty StaticToken reports no token.
type StaticToken string

func (t StaticToken) Token() (string, bool) {
	return string(t), t != ""
}

// TokenFunc adapts a plain function into a TokenSource.
type TokenFunc func() (string, bool)

func (f TokenFunc) Token() (string, bool) {
	return f()
}

// ClientCredentials is a client id/secret pair used with HTTP Basic auth on
// the integrator-facing /auth endpoints.
type ClientCredentials struct {
	ID     string
	Secret string
}
