// Package session holds the opaque bearer token that proves an active
// session. No other package touches token storage directly.
package session

// Vault persists one session token under a fixed key. An absent token
// means guest mode. There is a single logical writer per session, so no
// locking happens here beyond what the backend provides.
type Vault interface {
	// Current returns the active token; ok is false in guest mode.
	Current() (token string, ok bool)
	Set(token string) error
	Clear() error
}
