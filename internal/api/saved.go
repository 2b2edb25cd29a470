package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hnboard-bridge/internal/listing"
)

// SavedRef correlates a listing with the server-assigned bookmark id that
// unsave operations need.
type SavedRef struct {
	SavedID int64 `json:"saved_id"`
	JobID   int64 `json:"job_id"`
}

// SavedListing is one pinned entry expanded to its canonical listing.
type SavedListing struct {
	SavedRef
	listing.Listing
}

// SaveListing bookmarks a listing; the reply carries the saved id used to
// undo the bookmark later.
func (c *Client) SaveListing(ctx context.Context, jobID int64) (SavedRef, error) {
	raw, err := c.Send(ctx, http.MethodPost, "/saved-jobs/save", map[string]int64{
		"job_posting_id": jobID,
	})
	if err != nil {
		return SavedRef{}, err
	}

	var reply listing.Raw
	if err := json.Unmarshal(raw, &reply); err != nil {
		return SavedRef{}, err
	}
	ref := SavedRef{
		SavedID: probeInt(reply, "saved_id", "id"),
		JobID:   probeInt(reply, "job_posting_id"),
	}
	if ref.JobID == 0 {
		ref.JobID = jobID
	}
	return ref, nil
}

func (c *Client) UnsaveListing(ctx context.Context, savedID int64) error {
	_, err := c.Send(ctx, http.MethodDelete, fmt.Sprintf("/saved-jobs/%d", savedID), nil)
	return err
}

// ListSaved fetches the session's bookmarks. Each entry embeds its raw
// posting record, which goes through the same normalization and role
// expansion as browse results; expanded roles share one SavedRef.
func (c *Client) ListSaved(ctx context.Context) ([]SavedListing, error) {
	raw, err := c.Send(ctx, http.MethodGet, "/saved-jobs/my-saved-jobs", nil)
	if err != nil {
		return nil, err
	}

	var entries []listing.Raw
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	var out []SavedListing
	for _, entry := range entries {
		posting, _ := entry["posting_rel"].(map[string]any)
		if posting == nil {
			posting = listing.Raw{}
		}
		ref := SavedRef{
			SavedID: probeInt(entry, "saved_id", "id"),
			JobID:   probeInt(entry, "job_posting_id"),
		}
		if ref.JobID == 0 {
			ref.JobID = probeInt(posting, "job_id")
		}
		if ref.JobID == 0 {
			ref.JobID = probeInt(entry, "job_id")
		}
		for _, l := range listing.Normalize(posting) {
			out = append(out, SavedListing{SavedRef: ref, Listing: l})
		}
	}
	return out, nil
}

func probeInt(raw listing.Raw, keys ...string) int64 {
	for _, k := range keys {
		switch n := raw[k].(type) {
		case float64:
			return int64(n)
		case int64:
			return n
		case int:
			return int64(n)
		}
	}
	return 0
}
