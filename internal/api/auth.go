package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type AuthOutcome struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Profile struct {
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email_address"`
	Username  string     `json:"username"`
	Active    bool       `json:"is_active_user"`
	CreatedAt time.Time  `json:"created_timestamp"`
	LastLogin *time.Time `json:"last_login_timestamp"`
}

// Login exchanges credentials for a bearer token and archives it in the
// vault on success.
func (c *Client) Login(ctx context.Context, mail, password string) (AuthOutcome, error) {
	var out AuthOutcome
	raw, err := c.Send(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": mail,
		"password": password,
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	if out.AccessToken != "" {
		if err := c.vault.Set(out.AccessToken); err != nil {
			log.Printf("[api] vault archive error: %v", err)
		}
	}
	return out, nil
}

// Register creates an account. Preconditions are checked before any
// network call: password length and confirmation match, alias length.
func (c *Client) Register(ctx context.Context, mail, password, confirm, alias string) (AuthOutcome, error) {
	var out AuthOutcome
	if len(password) < 6 {
		return out, ValidationError("password must be at least 6 characters")
	}
	if password != confirm {
		return out, ValidationError("passwords do not match")
	}
	if len(alias) < 3 {
		return out, ValidationError("alias must be at least 3 characters")
	}

	raw, err := c.Send(ctx, http.MethodPost, "/auth/register", map[string]string{
		"email_address": mail,
		"password":      password,
		"username":      alias,
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	if out.AccessToken != "" {
		if err := c.vault.Set(out.AccessToken); err != nil {
			log.Printf("[api] vault archive error: %v", err)
		}
	}
	return out, nil
}

// Logout only erases the local session; the token itself is opaque and
// the backend holds no revocation endpoint.
func (c *Client) Logout() error {
	return c.vault.Clear()
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var out Profile
	raw, err := c.Send(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
