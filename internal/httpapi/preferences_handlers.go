package httpapi

import (
	"net/http"

	"hnboard-bridge/internal/api"
)

// PreferencesHandler proxies the account's stored search preferences.
func PreferencesHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			prefs, err := d.Client.Preferences(r.Context())
			if err != nil {
				writeUpstream(w, r, err)
				return
			}
			WriteJSON(w, http.StatusOK, prefs)
		},
		http.MethodPut: func(w http.ResponseWriter, r *http.Request) {
			var prefs api.Preferences
			if err := decodeJSON(r, &prefs); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			if err := d.Client.SetPreferences(r.Context(), prefs); err != nil {
				writeUpstream(w, r, err)
				return
			}
			WriteJSON(w, http.StatusOK, prefs)
		},
	})
}
