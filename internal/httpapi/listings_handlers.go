package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"hnboard-bridge/internal/config"
	"hnboard-bridge/internal/filter"
	"hnboard-bridge/internal/paginate"
)

// ListingsHandler fetches a page of listings from the remote board.
// Query params override the sticky browse criteria from config; the
// phrase/territory/remote filters run upstream, visa and tech run here.
func ListingsHandler(d Deps) http.HandlerFunc {
	return methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			cfg := d.CfgVal.Load().(config.Config)
			crit := criteriaFrom(r, cfg)

			listings, err := d.Client.Browse(r.Context(), crit)
			if err != nil {
				writeUpstream(w, r, err)
				return
			}
			listings = filter.Apply(listings, crit)

			size := queryInt(r, "page_size", cfg.Browse.PageSize)
			if !paginate.ValidSize(size) {
				size = cfg.Browse.PageSize
			}
			pager := paginate.New(size)
			pager.SetTotal(len(listings))
			pager.SetPage(queryInt(r, "page", 1))
			lo, hi := pager.Bounds()

			WriteJSON(w, http.StatusOK, listingsResponse{
				Listings: decorateAll(listings[lo:hi], d.Registry),
				Total:    pager.Total(),
				Page:     pager.Page(),
				PageSize: pager.PageSize(),
				Pages:    pager.TotalPages(),
				Window:   pager.Window(),
			})
		},
	})
}

func criteriaFrom(r *http.Request, cfg config.Config) filter.Criteria {
	q := r.URL.Query()
	crit := filter.Criteria{
		Phrase:       strings.TrimSpace(q.Get("phrase")),
		Territory:    cfg.Browse.Territory,
		RemoteOnly:   cfg.Browse.RemoteOnly,
		VisaOnly:     cfg.Browse.VisaOnly,
		TechKeywords: cfg.Browse.TechKeywords,
	}
	if q.Has("territory") {
		crit.Territory = strings.TrimSpace(q.Get("territory"))
	}
	if q.Has("remote") {
		crit.RemoteOnly = q.Get("remote") == "true"
	}
	if q.Has("visa") {
		crit.VisaOnly = q.Get("visa") == "true"
	}
	if q.Has("tech") {
		crit.TechKeywords = splitCSV(q.Get("tech"))
	}
	return crit
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
