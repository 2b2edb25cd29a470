package session

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"hnboard-bridge/internal/store"
)

// StoreVault keeps the token in the bridge's sqlite kv table. Fallback
// backend for hosts without a usable keychain.
type StoreVault struct {
	DB *sql.DB
}

func (v StoreVault) Current() (string, bool) {
	tok, ok, err := store.Get(context.Background(), v.DB, store.KeySessionToken)
	if err != nil {
		log.Printf("[session] vault read error: %v", err)
		return "", false
	}
	if !ok || strings.TrimSpace(tok) == "" {
		return "", false
	}
	return tok, true
}

func (v StoreVault) Set(token string) error {
	return store.Set(context.Background(), v.DB, store.KeySessionToken, token)
}

func (v StoreVault) Clear() error {
	return store.Delete(context.Background(), v.DB, store.KeySessionToken)
}

// Select picks the keychain when it works, the sqlite vault otherwise.
func Select(db *sql.DB) Vault {
	if Probe() {
		return Keyring{}
	}
	log.Printf("[session] keychain unavailable, using sqlite vault")
	return StoreVault{DB: db}
}
