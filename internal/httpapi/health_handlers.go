package httpapi

import "net/http"

func HealthHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			_, authed := d.Vault.Current()
			writeJSON(w, map[string]any{
				"ok":            true,
				"api_root":      d.Client.Root(),
				"authenticated": authed,
			})
		},
	})
}
