package listing

// Listing is the normalized, UI-ready view of one job role. A single raw
// record can yield several of these (see Normalize).
type Listing struct {
	ID            int64    `json:"id"`
	ExternalRefID string   `json:"hnItemId,omitempty"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	PostedAt      string   `json:"posted_at"`
	URL           string   `json:"url,omitempty"`
	Remote        bool     `json:"remote"`
	Salary        string   `json:"salary,omitempty"`
	Tech          []string `json:"tech"`
}
