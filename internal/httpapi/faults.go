package httpapi

import (
	"errors"
	"net/http"

	"hnboard-bridge/internal/api"
)

// writeUpstream translates client-layer failures into the local error
// envelope. Remote faults keep their status so the UI can tell a 401
// from a 404; everything else is a bad gateway.
func writeUpstream(w http.ResponseWriter, r *http.Request, err error) {
	var fault *api.Fault
	if errors.As(err, &fault) {
		code := "upstream_error"
		if fault.Status == http.StatusUnauthorized || fault.Status == http.StatusForbidden {
			code = "unauthorized"
		}
		WriteError(w, r, fault.Status, code, fault.Message)
		return
	}
	var verr api.ValidationError
	if errors.As(err, &verr) {
		WriteError(w, r, http.StatusBadRequest, "validation_error", string(verr))
		return
	}
	WriteError(w, r, http.StatusBadGateway, "upstream_unreachable", err.Error())
}
