package httpapi

import (
	"time"

	"hnboard-bridge/internal/listing"
	"hnboard-bridge/internal/pins"
	"hnboard-bridge/internal/textmine"
)

// listingView is one listing decorated for display: mined contact
// fields, a cleaned description and the pin state.
type listingView struct {
	listing.Listing
	ApplyEmail  string `json:"apply_email,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty"`
	VisaStatus  string `json:"visa_status,omitempty"`
	CleanedDesc string `json:"cleaned_description"`
	PostedAgo   string `json:"posted_ago"`
	Pinned      bool   `json:"pinned"`
}

func decorate(l listing.Listing, reg *pins.Registry, now time.Time) listingView {
	flat := textmine.Flatten(l.Description)
	v := listingView{
		Listing:     l,
		ApplyURL:    textmine.ResolveApplyURL(l.URL, flat),
		CleanedDesc: textmine.CleanDescription(flat, l.Company, l.Title),
		PostedAgo:   textmine.TimeElapsed(l.PostedAt, now),
		Pinned:      reg.Pinned(l.ID),
	}
	if email, ok := textmine.ApplyEmail(flat); ok {
		v.ApplyEmail = email
	}
	if status, ok := textmine.VisaStatus(flat); ok {
		v.VisaStatus = status
	}
	return v
}

func decorateAll(ls []listing.Listing, reg *pins.Registry) []listingView {
	now := time.Now()
	out := make([]listingView, 0, len(ls))
	for _, l := range ls {
		out = append(out, decorate(l, reg, now))
	}
	return out
}
