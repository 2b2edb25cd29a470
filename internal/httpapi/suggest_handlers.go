package httpapi

import (
	"context"
	"net/http"
	"sync"

	"hnboard-bridge/internal/config"
	"hnboard-bridge/internal/suggest"
)

type suggestOutcome struct {
	query   string
	results []string
	err     error
}

// suggester adapts the keystroke debouncer to request/response HTTP.
// Each request parks on a waiter channel; when a newer keystroke
// arrives before the quiescence window closes, the superseded waiter is
// released with an empty result so its connection does not hang for the
// whole debounce interval.
type suggester struct {
	deb *suggest.Debouncer

	mu     sync.Mutex
	waiter chan suggestOutcome
}

func newSuggester(d Deps) *suggester {
	s := &suggester{}
	s.deb = suggest.New(
		func(ctx context.Context, query string) ([]string, error) {
			cfg := d.CfgVal.Load().(config.Config)
			return d.Client.SuggestLocations(ctx, query, cfg.Suggest.Limit)
		},
		func(query string, results []string, err error) {
			s.mu.Lock()
			ch := s.waiter
			s.waiter = nil
			s.mu.Unlock()
			if ch != nil {
				ch <- suggestOutcome{query: query, results: results, err: err}
			}
		},
	)
	return s
}

// ask registers a fresh waiter, releasing whichever request was parked
// before it, then feeds the query to the debouncer.
func (s *suggester) ask(query string) chan suggestOutcome {
	ch := make(chan suggestOutcome, 1)
	s.mu.Lock()
	if prev := s.waiter; prev != nil {
		prev <- suggestOutcome{query: query}
	}
	s.waiter = ch
	s.mu.Unlock()
	s.deb.Trigger(query)
	return ch
}

// SuggestHandler serves debounced location suggestions. A burst of
// requests collapses into one upstream lookup; only the last request of
// the burst carries its results.
func SuggestHandler(d Deps) http.HandlerFunc {
	s := newSuggester(d)
	s.deb.Quiescence = d.CfgVal.Load().(config.Config).Quiescence()
	return methodMux(map[string]http.HandlerFunc{
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
			var req suggestRequest
			if err := decodeJSON(r, &req); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			select {
			case out := <-s.ask(req.Query):
				if out.err != nil {
					writeUpstream(w, r, out.err)
					return
				}
				if out.results == nil {
					out.results = []string{}
				}
				WriteJSON(w, http.StatusOK, suggestResponse{Suggestions: out.results})
			case <-r.Context().Done():
				WriteError(w, r, http.StatusRequestTimeout, "canceled", "request canceled")
			}
		},
	})
}
