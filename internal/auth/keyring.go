// Package auth stores the API key issued at login. The system keyring is
// preferred; headless machines fall back to a 0600 file under the config
// directory.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "linkmark"
	keyringUser    = "api-key"
)

var (
	fallbackMode    bool
	fallbackChecked bool
	fallbackMu      sync.Mutex
)

// keyringAvailable tests the system keyring once with a throwaway entry.
func keyringAvailable() bool {
	fallbackMu.Lock()
	defer fallbackMu.Unlock()

	if fallbackChecked {
		return !fallbackMode
	}
	fallbackChecked = true

	testKey := "linkmark-keyring-test"
	if err := keyring.Set(keyringService, testKey, "test"); err != nil {
		fallbackMode = true
		return false
	}
	_ = keyring.Delete(keyringService, testKey)
	return true
}

func fallbackPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".linkmark", ".session"), nil
}

// StoreAPIKey saves the key in the keyring or the fallback file.
func StoreAPIKey(key string) error {
	if keyringAvailable() {
		if err := keyring.Set(keyringService, keyringUser, key); err != nil {
			return fmt.Errorf("failed to store API key in keyring: %w", err)
		}
		return nil
	}

	path, err := fallbackPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(key), 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// RetrieveAPIKey returns the stored key, or "" when none is stored.
func RetrieveAPIKey() string {
	if keyringAvailable() {
		if key, err := keyring.Get(keyringService, keyringUser); err == nil {
			return key
		}
	}

	path, err := fallbackPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// DeleteAPIKey removes the key from both the keyring and the fallback
// file.
func DeleteAPIKey() error {
	var keyringErr error
	if keyringAvailable() {
		keyringErr = keyring.Delete(keyringService, keyringUser)
	}

	path, err := fallbackPath()
	if err == nil {
		if rmErr := os.Remove(path); rmErr == nil || os.IsNotExist(rmErr) {
			return nil
		}
	}
	if keyringErr != nil {
		return fmt.Errorf("failed to delete API key: %w", keyringErr)
	}
	return nil
}
