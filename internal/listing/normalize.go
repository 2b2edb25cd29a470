package listing

import (
	"strings"
	"time"
)

// FromRaw maps one raw record onto the canonical listing shape without any
// role expansion. Missing fields get display-safe defaults; a missing post
// date defaults to now so sorting stays stable.
func FromRaw(raw Raw) Listing {
	return Listing{
		ID:            probeID(raw, "job_id", "id"),
		ExternalRefID: probeString(raw, "", "hn_item_id", "hnItemId"),
		Title:         probeString(raw, "Untitled role", "posting_title", "title"),
		Company:       probeString(raw, "Unknown", "company_name", "company"),
		Location:      probeString(raw, "Unspecified", "job_location", "location"),
		Description:   probeString(raw, "", "job_description", "description"),
		PostedAt:      probeString(raw, time.Now().UTC().Format(time.RFC3339), "parsed_timestamp", "posted_at"),
		URL:           probeString(raw, "", "application_url", "url"),
		Remote:        probeRemote(raw, "remote_status", "remote"),
		Salary:        probeString(raw, "", "salary_range", "salary"),
		Tech:          probeStrings(raw, "tech_stack", "technologies"),
	}
}

// ExtractRoles splits a multi-role description. The convention is a first
// line reading "roles:" followed by "- " bullets, one role title each:
//
//	roles:
//	- Backend Engineer
//	- SRE
//	We are a small team...
//
// Returned roles are bullet-stripped and trimmed; cleaned is the remainder
// after the consumed header and bullets. With no roles header the input
// comes back untouched.
func ExtractRoles(description string) (roles []string, cleaned string) {
	lines := strings.Split(description, "\n")
	if len(lines) == 0 || !strings.EqualFold(strings.TrimSpace(lines[0]), "roles:") {
		return nil, description
	}
	idx := 1
	for idx < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[idx]), "-") {
		role := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[idx]), "-"))
		roles = append(roles, role)
		idx++
	}
	if len(roles) == 0 {
		return nil, description
	}
	return roles, strings.TrimSpace(strings.Join(lines[idx:], "\n"))
}

// Normalize expands one raw record into its canonical listings. Records
// with a roles header yield one listing per role, all sharing the same id
// and backing fields; everything else yields exactly one listing with the
// original title and description.
func Normalize(raw Raw) []Listing {
	base := FromRaw(raw)
	roles, cleaned := ExtractRoles(base.Description)
	if len(roles) == 0 {
		return []Listing{base}
	}
	out := make([]Listing, 0, len(roles))
	for _, role := range roles {
		l := base
		l.Title = role
		l.Description = cleaned
		out = append(out, l)
	}
	return out
}

// NormalizeAll flattens a batch of raw records into one listing set.
func NormalizeAll(raws []Raw) []Listing {
	out := make([]Listing, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw)...)
	}
	return out
}
