package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service = "authx-cli"
)

// getKeyringKey returns a unique key for storing tokens per environment.
func getKeyringKey(apiURL string) string {
	return fmt.Sprintf("token-%s", apiURL)
}

// SaveToken persists the bearer token securely in the OS keychain/credential manager.
func SaveToken(apiURL, token string) error {
	if err := keyring.Set(service, getKeyringKey(apiURL), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// LoadToken retrieves the bearer token from the OS keychain/credential manager.
func LoadToken(apiURL string) (string, error) {
	token, err := keyring.Get(service, getKeyringKey(apiURL))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("not authenticated. Please run 'authx login' first")
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the bearer token from the OS keychain/credential manager.
func DeleteToken(apiURL string) error {
	if err := keyring.Delete(service, getKeyringKey(apiURL)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
