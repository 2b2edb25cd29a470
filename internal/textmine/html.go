package textmine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Flatten reduces an HTML-ish description to plain text before mining.
// Plain-text input passes through untouched so line structure survives
// for CleanDescription.
func Flatten(text string) string {
	lowered := strings.ToLower(text)
	if !strings.Contains(lowered, "<html") && !strings.Contains(lowered, "<p") &&
		!strings.Contains(lowered, "<div") && !strings.Contains(lowered, "<br") {
		return text
	}

	// <br> and </p> become line breaks so the line-oriented cleaners
	// still have something to work with.
	replacer := strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n", "</p>", "</p>\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(replacer.Replace(text)))
	if err != nil {
		return text
	}

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
