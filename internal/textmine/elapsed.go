package textmine

import (
	"fmt"
	"regexp"
	"time"
)

var reHasZone = regexp.MustCompile(`(?i)(z|[+-]\d{2}:?\d{2})$`)

// TimeElapsed renders how long ago a listing was posted. Backend
// timestamps sometimes omit the zone suffix; those are read as UTC.
func TimeElapsed(postedAt string, now time.Time) string {
	stamp := postedAt
	if !reHasZone.MatchString(stamp) {
		stamp += "Z"
	}
	posted, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}

	hours := int(now.Sub(posted).Hours())
	days := hours / 24
	switch {
	case days > 7:
		return fmt.Sprintf("%dw past", days/7)
	case days > 0:
		return fmt.Sprintf("%dd past", days)
	case hours > 0:
		return fmt.Sprintf("%dh past", hours)
	default:
		return "moments ago"
	}
}
