package httpapi

import (
	"fmt"
	"net/http"

	"hnboard-bridge/internal/events"
)

// EventsHandler streams bridge events (pin changes, session changes,
// theme changes) to the UI over SSE.
func EventsHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("Access-Control-Allow-Origin", "*")

			flusher, ok := w.(http.Flusher)
			if !ok {
				WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
				return
			}

			ch := d.Hub.Subscribe()
			defer d.Hub.Unsubscribe(ch)

			// Ping as a proper event envelope so the UI can confirm the
			// stream is live before anything happens.
			reqID := RequestIDFrom(r.Context())
			ping := events.MakeEvent(reqID, "ping", 1, nil)
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", ping)
			flusher.Flush()

			for {
				select {
				case <-r.Context().Done():
					return
				case msg := <-ch:
					fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
					flusher.Flush()
				}
			}
		},
	})
}
