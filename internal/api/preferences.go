package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Preferences is the user's persisted matching profile, named in backend
// vocabulary on the wire.
type Preferences struct {
	Keywords     []string `json:"keywords_to_match"`
	Locations    []string `json:"preferred_locations"`
	TechKeywords []string `json:"preferred_tech_stack"`
	RemoteOnly   bool     `json:"remote_only"`
	VisaOnly     bool     `json:"visa_sponsorship_only"`
}

func (c *Client) Preferences(ctx context.Context) (Preferences, error) {
	var out Preferences
	raw, err := c.Send(ctx, http.MethodGet, "/preferences/my-preferences", nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	// nil slices render as null in the UI; keep them empty instead
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	if out.Locations == nil {
		out.Locations = []string{}
	}
	if out.TechKeywords == nil {
		out.TechKeywords = []string{}
	}
	return out, nil
}

func (c *Client) SetPreferences(ctx context.Context, p Preferences) error {
	_, err := c.Send(ctx, http.MethodPut, "/preferences/my-preferences", p)
	return err
}
