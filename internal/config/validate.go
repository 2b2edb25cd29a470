package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes list fields, then checks the
// result. The returned config is the normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Browse.TechKeywords = trimList(out.Browse.TechKeywords)
	out.Browse.Territory = strings.TrimSpace(out.Browse.Territory)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	root := strings.TrimSpace(out.App.APIRoot)
	if root == "" {
		res.addErr("app.api_root is required")
	} else if u, err := url.Parse(root); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("app.api_root must be an absolute URL, got %q", root)
	}
	out.App.APIRoot = strings.TrimRight(root, "/")

	switch out.Browse.PageSize {
	case 0, 10, 20, 50:
	default:
		res.addErr("browse.page_size must be one of 10, 20, 50, or 0 for all")
	}

	if out.Suggest.QuiescenceMS <= 0 {
		res.addErr("suggest.quiescence_ms must be > 0")
	} else if out.Suggest.QuiescenceMS < 100 {
		res.addWarn("suggest.quiescence_ms is very low (%d) and may hammer the suggest endpoint.", out.Suggest.QuiescenceMS)
	}
	if out.Suggest.Limit <= 0 {
		res.addErr("suggest.limit must be > 0")
	} else if out.Suggest.Limit > 25 {
		res.addWarn("suggest.limit of %d is more than any dropdown shows.", out.Suggest.Limit)
	}

	return out, res
}
