package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"hnboard-bridge/internal/filter"
	"hnboard-bridge/internal/listing"
)

// Browse fetches listings for the criteria. A phrase routes to the text
// search endpoint, whose records map one-to-one; the browse endpoint's
// records additionally go through multi-role expansion.
func (c *Client) Browse(ctx context.Context, crit filter.Criteria) ([]listing.Listing, error) {
	if crit.Phrase != "" {
		params := url.Values{}
		params.Set("search_term", crit.Phrase)
		raws, err := c.fetchRaws(ctx, "/jobs/search/text?"+params.Encode())
		if err != nil {
			return nil, err
		}
		out := make([]listing.Listing, 0, len(raws))
		for _, raw := range raws {
			out = append(out, listing.FromRaw(raw))
		}
		return out, nil
	}

	params := url.Values{}
	if crit.Territory != "" {
		params.Set("location_query", crit.Territory)
	}
	if crit.RemoteOnly {
		params.Set("remote_filter", "remote")
	}
	path := "/jobs/browse"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	raws, err := c.fetchRaws(ctx, path)
	if err != nil {
		return nil, err
	}
	return listing.NormalizeAll(raws), nil
}

func (c *Client) fetchRaws(ctx context.Context, path string) ([]listing.Raw, error) {
	raw, err := c.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var raws []listing.Raw
	if err := json.Unmarshal(raw, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}
