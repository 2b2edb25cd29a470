package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"hnboard-bridge/internal/config"
)

// ConfigHandler reads and replaces the bridge config. PUT validates,
// persists atomically, reloads from disk, then swaps the live value so
// in-flight requests never see a half-written config.
func ConfigHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, d.CfgVal.Load().(config.Config))
		},
		http.MethodPut: func(w http.ResponseWriter, r *http.Request) {
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()

			var incoming config.Config
			if err := dec.Decode(&incoming); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
				return
			}
			if dec.More() {
				WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: trailing data")
				return
			}

			normalized, vr := config.NormalizeAndValidate(incoming)
			if !vr.OK() {
				// Structured errors so the UI can show them nicely.
				WriteJSON(w, http.StatusBadRequest, vr)
				return
			}

			if err := config.SaveAtomic(d.UserCfgPath, normalized); err != nil {
				WriteError(w, r, http.StatusBadRequest, "save_failed", err.Error())
				return
			}

			saved, err := d.LoadCfg()
			if err != nil {
				WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
				return
			}
			d.CfgVal.Store(saved)
			writeJSON(w, saved)
		},
	})
}

func ConfigPathHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			abs, _ := filepath.Abs(d.UserCfgPath)
			writeJSON(w, map[string]any{"path": abs})
		},
	})
}
