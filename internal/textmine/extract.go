// Package textmine pulls structured signals (apply email, apply URL, visa
// sponsorship status) out of free-text job descriptions. Every function is
// pure: same input text, same answer.
package textmine

import (
	"regexp"
	"strings"
)

var (
	reEmail         = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[A-Za-z]{2,}`)
	// A reversed address carries its TLD dot on the local side
	// ("moc.elpmaxe@eman"), so the domain half is not required to
	// contain one.
	reReversedEmail = regexp.MustCompile(`(?i)([\w.+-]+@[\w.+-]+)\s*\(reversed\)`)
	reURL           = regexp.MustCompile(`(?i)https?://[^\s<>"]+`)
	reVisa          = regexp.MustCompile(`(?i)visa sponsorship:\s*(yes|no|unknown)`)
)

// ApplyEmail finds the contact address in a description. Posters obfuscate
// addresses by writing them backwards followed by a "(reversed)" marker;
// that form wins and is un-reversed. Failing that, the first plain email
// is returned. ok is false when neither form appears.
func ApplyEmail(text string) (email string, ok bool) {
	if m := reReversedEmail.FindStringSubmatch(text); m != nil {
		return reverse(m[1]), true
	}
	if m := reEmail.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// FirstURL returns the first http(s) URL in the text, cut at the first
// whitespace, angle bracket, or quote.
func FirstURL(text string) (url string, ok bool) {
	if m := reURL.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// ResolveApplyURL prefers the structured URL field. Backends truncate long
// URLs with an ellipsis; a truncated field loses to a full URL mined from
// the description, but stands if the description has none either.
func ResolveApplyURL(structured, description string) string {
	if structured != "" && !strings.Contains(structured, "...") && !strings.Contains(structured, "…") {
		return structured
	}
	if u, ok := FirstURL(description); ok {
		return u
	}
	return structured
}

// VisaStatus extracts the "visa sponsorship: yes|no|unknown" declaration,
// lower-cased. ok is false when the description never declares one.
func VisaStatus(text string) (status string, ok bool) {
	if m := reVisa.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1]), true
	}
	return "", false
}
