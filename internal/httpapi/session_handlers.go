package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"hnboard-bridge/internal/events"
)

// LoginHandler authenticates against the remote board and archives the
// bearer token. The pin registry is rebuilt under the new identity.
func LoginHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
			var req loginRequest
			if err := decodeJSON(r, &req); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			if _, err := d.Client.Login(r.Context(), req.Mail, req.Password); err != nil {
				writeUpstream(w, r, err)
				return
			}
			refreshPins(d, r)
			log.Printf("[session] login ok mail=%s", req.Mail)
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged, 1, sessionResponse{Authenticated: true}))
			WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
		},
	})
}

func RegisterHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
			var req registerRequest
			if err := decodeJSON(r, &req); err != nil {
				WriteError(w, r, http.StatusBadRequest, "bad_json", err.Error())
				return
			}
			if _, err := d.Client.Register(r.Context(), req.Mail, req.Password, req.Confirm, req.Alias); err != nil {
				writeUpstream(w, r, err)
				return
			}
			refreshPins(d, r)
			log.Printf("[session] register ok mail=%s alias=%s", req.Mail, req.Alias)
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged, 1, sessionResponse{Authenticated: true}))
			WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
		},
	})
}

// LogoutHandler drops the archived token and forgets the pin mappings.
// Logout never fails toward the UI even if the vault backend hiccups.
func LogoutHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {
			if err := d.Client.Logout(); err != nil {
				log.Printf("[session] logout vault err=%v", err)
			}
			d.Registry.Reset()
			d.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged, 1, sessionResponse{Authenticated: false}))
			WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		},
	})
}

func SessionHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			_, ok := d.Vault.Current()
			WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: ok})
		},
	})
}

func ProfileHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			p, err := d.Client.Profile(r.Context())
			if err != nil {
				writeUpstream(w, r, err)
				return
			}
			WriteJSON(w, http.StatusOK, p)
		},
	})
}

// refreshPins primes the savedId mapping after a sign-in. Best effort;
// the registry reloads itself on the first stale unpin anyway.
func refreshPins(d Deps, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), 10*time.Second)
	defer cancel()
	if err := d.Registry.Reload(ctx); err != nil {
		log.Printf("[session] pin reload err=%v", err)
	}
}
