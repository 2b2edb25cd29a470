// Package filter applies the secondary criteria the backend cannot serve
// natively. It runs client-side, after fetch and normalization.
package filter

import (
	"strings"

	"hnboard-bridge/internal/listing"
)

// Criteria is one listing query. Phrase, Territory and RemoteOnly travel
// to the backend as query parameters; VisaOnly and TechKeywords are
// enforced locally by Apply.
type Criteria struct {
	Phrase       string   `json:"phrase,omitempty"`
	Territory    string   `json:"territory,omitempty"`
	RemoteOnly   bool     `json:"remote_only,omitempty"`
	VisaOnly     bool     `json:"visa_only,omitempty"`
	TechKeywords []string `json:"tech_keywords,omitempty"`
}

// Apply keeps the listings that satisfy the local criteria. VisaOnly
// requires the literal "visa sponsorship: yes" declaration in the
// description; tech keywords OR-match against the description. The two
// categories AND-compose; absent criteria filter nothing.
func Apply(listings []listing.Listing, c Criteria) []listing.Listing {
	keywords := make([]string, 0, len(c.TechKeywords))
	for _, kw := range c.TechKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	if !c.VisaOnly && len(keywords) == 0 {
		return listings
	}

	out := make([]listing.Listing, 0, len(listings))
	for _, l := range listings {
		text := strings.ToLower(l.Description)
		if c.VisaOnly && !strings.Contains(text, "visa sponsorship: yes") {
			continue
		}
		if len(keywords) > 0 && !containsAny(text, keywords) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
