// Package pins correlates listing ids with the server-assigned saved ids
// that unpin operations need.
package pins

import (
	"context"
	"errors"
	"log"
	"sync"

	"hnboard-bridge/internal/api"
)

// ErrStalePin means the local mapping had no saved id for a listing the
// caller believed pinned. The registry reloads itself before returning
// this; the caller just re-renders, the user never sees it.
var ErrStalePin = errors.New("pins: no saved id for listing, state reloaded")

// Client is the slice of the dispatcher the registry uses.
type Client interface {
	SaveListing(ctx context.Context, jobID int64) (api.SavedRef, error)
	UnsaveListing(ctx context.Context, savedID int64) error
	ListSaved(ctx context.Context) ([]api.SavedListing, error)
}

type Registry struct {
	client Client

	mu      sync.Mutex
	saved   map[int64]int64 // listing id -> saved id
	entries []api.SavedListing
}

func NewRegistry(client Client) *Registry {
	return &Registry{
		client: client,
		saved:  make(map[int64]int64),
	}
}

// Reload refetches the pinned set wholesale and rebuilds the mapping.
func (r *Registry) Reload(ctx context.Context) error {
	entries, err := r.client.ListSaved(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = make(map[int64]int64, len(entries))
	r.entries = entries
	for _, e := range entries {
		if e.JobID != 0 && e.SavedID != 0 {
			r.saved[e.JobID] = e.SavedID
		}
	}
	return nil
}

// Pin bookmarks the listing and records the correlation on success.
func (r *Registry) Pin(ctx context.Context, listingID int64) (api.SavedRef, error) {
	ref, err := r.client.SaveListing(ctx, listingID)
	if err != nil {
		return api.SavedRef{}, err
	}

	r.mu.Lock()
	if ref.SavedID != 0 {
		r.saved[listingID] = ref.SavedID
	}
	r.mu.Unlock()
	return ref, nil
}

// Unpin removes the bookmark. A missing mapping means local state went
// stale (another window, an expired snapshot); the registry reloads the
// whole pinned set instead of guessing a saved id. The mapping is dropped
// only after the delete call succeeds.
func (r *Registry) Unpin(ctx context.Context, listingID int64) error {
	r.mu.Lock()
	savedID, ok := r.saved[listingID]
	r.mu.Unlock()

	if !ok {
		if err := r.Reload(ctx); err != nil {
			log.Printf("[pins] stale-state reload failed: %v", err)
		}
		return ErrStalePin
	}

	if err := r.client.UnsaveListing(ctx, savedID); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.saved, listingID)
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.SavedID != savedID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.mu.Unlock()
	return nil
}

// Pinned reports whether the listing is bookmarked in the current view.
func (r *Registry) Pinned(listingID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.saved[listingID]
	return ok
}

// Entries returns the last loaded pinned set.
func (r *Registry) Entries() []api.SavedListing {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]api.SavedListing, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset drops all local pin state, e.g. on session change.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = make(map[int64]int64)
	r.entries = nil
}
