package httpapi

import "net/http"

// NewMux wires every route; main() wraps the result in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Listings
	mux.HandleFunc("/listings", ListingsHandler(d))

	// Pins
	mux.HandleFunc("/pins", PinsHandler(d))
	mux.HandleFunc("/pins/", PinHandler(d)) // expects /pins/{listingID}

	// Session
	mux.HandleFunc("/session", SessionHandler(d))
	mux.HandleFunc("/session/login", LoginHandler(d))
	mux.HandleFunc("/session/register", RegisterHandler(d))
	mux.HandleFunc("/session/logout", LogoutHandler(d))
	mux.HandleFunc("/profile", ProfileHandler(d))

	// Preferences
	mux.HandleFunc("/preferences", PreferencesHandler(d))

	// Location suggestions
	mux.HandleFunc("/suggest", SuggestHandler(d))

	// Theme
	mux.HandleFunc("/theme", ThemeHandler(d))

	// Config
	mux.HandleFunc("/config", ConfigHandler(d))
	mux.HandleFunc("/config/path", ConfigPathHandler(d))

	// SSE events
	mux.HandleFunc("/events", EventsHandler(d))

	// Health
	mux.HandleFunc("/health", HealthHandler(d))

	return mux
}
