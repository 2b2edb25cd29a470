package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hnboard-bridge/internal/events"
	"hnboard-bridge/internal/pins"
)

// PinsHandler lists and creates pins. GET reloads the mapping from the
// remote board so the UI never renders stale saved rows.
func PinsHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			if err := d.Registry.Reload(r.Context()); err != nil {
				writeUpstream(w, r, err)
				return
			}
			WriteJSON(w, http.StatusOK, pinsResponse{Pins: d.Registry.Entries()})
		},
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
			var req pinRequest
			if err := decodeJSON(r, &req); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			if req.ListingID <= 0 {
				WriteError(w, r, http.StatusBadRequest, "bad_listing_id", "listing_id must be positive")
				return
			}
			ref, err := d.Registry.Pin(r.Context(), req.ListingID)
			if err != nil {
				writeUpstream(w, r, err)
				return
			}
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypePinAdded, 1, ref))
			WriteJSON(w, http.StatusCreated, ref)
		},
	})
}

// PinHandler removes a single pin, addressed by listing id. A stale
// mapping triggers one registry reload; the UI retries on 409.
func PinHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: func(w http.ResponseWriter, r *http.Request) {
			idStr := strings.TrimPrefix(r.URL.Path, "/pins/")
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil || id <= 0 {
				WriteError(w, r, http.StatusBadRequest, "bad_listing_id", "listing id must be a positive integer")
				return
			}
			if err := d.Registry.Unpin(r.Context(), id); err != nil {
				if errors.Is(err, pins.ErrStalePin) {
					WriteError(w, r, http.StatusConflict, "stale_pin", "pin mapping was stale and has been reloaded; retry")
					return
				}
				writeUpstream(w, r, err)
				return
			}
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypePinRemoved, 1, map[string]int64{"listing_id": id}))
			WriteJSON(w, http.StatusOK, okResponse{OK: true})
		},
	})
}
