package session

import (
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the bridge's secrets in the OS keychain.
	KeyringService = "hnboard-bridge"
	KeyringAccount = "hn_session_vault"
)

// Keyring stores the token in the OS keychain. Preferred backend when a
// keychain daemon is reachable; see Probe.
type Keyring struct{}

func (Keyring) Current() (string, bool) {
	tok, err := keyring.Get(KeyringService, KeyringAccount)
	if err != nil || strings.TrimSpace(tok) == "" {
		return "", false
	}
	return tok, true
}

func (Keyring) Set(token string) error {
	return keyring.Set(KeyringService, KeyringAccount, token)
}

func (Keyring) Clear() error {
	err := keyring.Delete(KeyringService, KeyringAccount)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

// Probe reports whether the keychain works on this host. Headless boxes
// without a secret-service daemon fail here and fall back to the sqlite
// vault.
func Probe() bool {
	const probeAccount = KeyringAccount + ":probe"
	if err := keyring.Set(KeyringService, probeAccount, "ok"); err != nil {
		return false
	}
	_ = keyring.Delete(KeyringService, probeAccount)
	return true
}
