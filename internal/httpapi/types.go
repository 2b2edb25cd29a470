package httpapi

import "hnboard-bridge/internal/api"

type listingsResponse struct {
	Listings []listingView `json:"listings"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Pages    int           `json:"pages"`
	Window   []int         `json:"window"`
}

type pinsResponse struct {
	Pins []api.SavedListing `json:"pins"`
}

type pinRequest struct {
	ListingID int64 `json:"listing_id"`
}

type loginRequest struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

type registerRequest struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
	Alias    string `json:"alias"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

type suggestRequest struct {
	Query string `json:"query"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type okResponse struct {
	OK bool `json:"ok"`
}
