package textmine

import "strings"

// CleanDescription prepares a description for display: trims every line,
// drops blanks, drops lines that merely repeat the company or title or
// carry signals already extracted elsewhere (apply/visa lines), strips
// embedded URLs and emails from the lines that remain, and rejoins.
// Surviving lines keep their original order.
func CleanDescription(text, company, title string) string {
	loweredCompany := strings.ToLower(strings.TrimSpace(company))
	loweredTitle := strings.ToLower(strings.TrimSpace(title))

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		if strings.HasPrefix(lowered, "apply url:") ||
			strings.HasPrefix(lowered, "apply:") ||
			strings.HasPrefix(lowered, "visa sponsorship:") {
			continue
		}
		if loweredCompany != "" && lowered == loweredCompany {
			continue
		}
		if loweredTitle != "" && lowered == loweredTitle {
			continue
		}
		line = reURL.ReplaceAllString(line, "")
		line = reEmail.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
