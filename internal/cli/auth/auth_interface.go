package auth

// TokenStore defines the interface for token storage operations.
// This allows us to mock the keyring in tests.
type TokenStore interface {
	SaveToken(apiURL, token string) error
	LoadToken(apiURL string) (string, error)
	DeleteToken(apiURL string) error
}

// defaultTokenStore implements TokenStore using the OS keyring.
type defaultTokenStore struct{}

var Default TokenStore = &defaultTokenStore{}

func (d *defaultTokenStore) SaveToken(apiURL, token string) error {
	return SaveToken(apiURL, token)
}

func (d *defaultTokenStore) LoadToken(apiURL string) (string, error) {
	return LoadToken(apiURL)
}

func (d *defaultTokenStore) DeleteToken(apiURL string) error {
	return DeleteToken(apiURL)
}
