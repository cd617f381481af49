package request

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is what a missing or blank duration string collapses to.
const DefaultDuration = "1 Days"

// ParseDuration converts a human-entered duration such as "3 Days" or
// "5 Hours" into a due instant offset from ref. The unit is matched
// case-insensitively; any token that does not contain "day" counts as
// hours. An unparsable count falls back to 1.
func ParseDuration(s string, ref time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultDuration
	}

	fields := strings.Fields(s)

	n := 1
	if len(fields) > 0 {
		if parsed, err := strconv.Atoi(fields[0]); err == nil {
			n = parsed
		}
	}

	unit := ""
	if len(fields) > 1 {
		unit = strings.ToLower(fields[1])
	}

	if strings.Contains(unit, "day") {
		return ref.Add(time.Duration(n) * 24 * time.Hour)
	}
	return ref.Add(time.Duration(n) * time.Hour)
}

// NormalizeDuration returns the string as stored on the request,
// substituting the default for blank input.
func NormalizeDuration(s string) string {
	if strings.TrimSpace(s) == "" {
		return DefaultDuration
	}
	return s
}
