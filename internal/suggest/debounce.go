// Package suggest debounces keystroke-driven location lookups so a burst
// of typing produces one backend call, not one per key.
package suggest

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// DefaultQuiescence is how long input must stay quiet before a
	// lookup fires.
	DefaultQuiescence = 350 * time.Millisecond

	// minQueryRunes below which no lookup happens at all; the result
	// set just clears.
	minQueryRunes = 2
)

type Lookup func(ctx context.Context, query string) ([]string, error)

// Deliver receives the lookup outcome for the query that fired.
type Deliver func(query string, results []string, err error)

// Debouncer schedules at most one pending lookup. Each Trigger cancels
// the previously scheduled timer; a lookup already on the wire is never
// cancelled, it just delivers whenever it lands.
type Debouncer struct {
	Quiescence time.Duration

	lookup  Lookup
	deliver Deliver

	mu    sync.Mutex
	timer *time.Timer
}

func New(lookup Lookup, deliver Deliver) *Debouncer {
	return &Debouncer{
		Quiescence: DefaultQuiescence,
		lookup:     lookup,
		deliver:    deliver,
	}
}

// Trigger notes a keystroke. Queries shorter than two runes cancel any
// pending lookup and clear the result set without touching the network.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if utf8.RuneCountInString(query) < minQueryRunes {
		d.mu.Unlock()
		d.deliver(query, nil, nil)
		return
	}

	d.timer = time.AfterFunc(d.Quiescence, func() {
		results, err := d.lookup(context.Background(), query)
		d.deliver(query, results, err)
	})
	d.mu.Unlock()
}

// Stop cancels any pending lookup without delivering anything.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
