package listing

import "strings"

// Raw is an unnormalized record as the backend returns it. Logical fields
// drift across key names between endpoints, so every field is resolved
// through an ordered probe list: first key present wins.
type Raw = map[string]any

func firstValue(raw Raw, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func probeString(raw Raw, fallback string, keys ...string) string {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func probeID(raw Raw, keys ...string) int64 {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		// encoding/json decodes untyped numbers as float64
		return int64(n)
	}
	return 0
}

func probeStrings(raw Raw, keys ...string) []string {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

// probeRemote resolves the remote flag: booleans pass through, free-text
// status fields count as remote when they mention "remote".
func probeRemote(raw Raw, keys ...string) bool {
	v, ok := firstValue(raw, keys...)
	if !ok {
		return false
	}
	switch s := v.(type) {
	case bool:
		return s
	case string:
		return strings.Contains(strings.ToLower(s), "remote")
	}
	return false
}
