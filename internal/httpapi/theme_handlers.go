package httpapi

import (
	"net/http"

	"hnboard-bridge/internal/events"
	"hnboard-bridge/internal/store"
)

const defaultTheme = "dark"

var knownThemes = map[string]bool{"dark": true, "light": true}

// ThemeHandler persists the UI theme choice in the local store so it
// survives restarts without a round trip to the remote board.
func ThemeHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			theme, ok, err := store.Get(r.Context(), d.DB, store.KeyTheme)
			if err != nil {
				WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
				return
			}
			if !ok {
				theme = defaultTheme
			}
			WriteJSON(w, http.StatusOK, themeResponse{Theme: theme})
		},
		http.MethodPut: func(w http.ResponseWriter, r *http.Request) {
			var req themeResponse
			if err := decodeJSON(r, &req); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			if !knownThemes[req.Theme] {
				WriteError(w, r, http.StatusBadRequest, "bad_theme", "theme must be dark or light")
				return
			}
			if err := store.Set(r.Context(), d.DB, store.KeyTheme, req.Theme); err != nil {
				WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
				return
			}
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeThemeChanged, 1, req))
			WriteJSON(w, http.StatusOK, req)
		},
	})
}
