// Package api is the dispatch layer for the remote job-board service: one
// authenticated JSON round trip per call, typed faults on non-success, no
// retries and no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"hnboard-bridge/internal/session"
)

type Client struct {
	root    string
	hc      *http.Client
	vault   session.Vault
	limiter *rate.Limiter
}

// New builds a client for the API root (e.g. "https://host/api/v1"). The
// vault is consulted at call time, never cached, so a login or logout
// takes effect on the very next request.
func New(root string, vault session.Vault) *Client {
	return &Client{
		root:    root,
		hc:      &http.Client{Timeout: 20 * time.Second},
		vault:   vault,
		limiter: rate.NewLimiter(rate.Limit(8), 16),
	}
}

// Send issues one request and returns the raw JSON reply. Non-GET bodies
// are JSON-serialized; a present session token rides along as a bearer
// header regardless of method. Non-2xx replies come back as *Fault with
// the backend's message when its error body parses, or a generic message
// carrying the status when it does not.
func (c *Client) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var payload *bytes.Reader
	if body != nil && method != http.MethodGet {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		payload = bytes.NewReader(b)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.root+path, payload)
	if err != nil {
		return nil, err
	}
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.vault.Current(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	var raw json.RawMessage
	dec := json.NewDecoder(res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"message"`
		}
		msg := ""
		if err := dec.Decode(&errBody); err == nil {
			msg = errBody.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("network fault: %d", res.StatusCode)
		}
		return nil, &Fault{Status: res.StatusCode, Message: msg}
	}

	if err := dec.Decode(&raw); err != nil {
		// 204-style replies carry no body at all; unsave answers that way.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return raw, nil
}

// Root returns the API root the client dispatches against.
func (c *Client) Root() string { return c.root }

// Guest reports whether no session token is present.
func (c *Client) Guest() bool {
	_, ok := c.vault.Current()
	return !ok
}
