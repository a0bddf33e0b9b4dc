// utils/session.go - Academic session helpers
package utils

import (
	"fmt"
	"regexp"
	"time"
)

var sessionRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// CurrentSession returns the academic session token ("2024-25") for the
// given time. The school year starts in April: January-March belong to
// the previous calendar pair.
func CurrentSession(now time.Time) string {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return FormatSession(year)
}

// FormatSession renders the session token for a starting year.
func FormatSession(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// ValidSession reports whether s looks like a session token ("2024-25").
func ValidSession(s string) bool {
	return sessionRegex.MatchString(s)
}

// SessionOptions returns selectable sessions: `back` years before the
// current one through `forward` years after it, newest first.
func SessionOptions(now time.Time, back, forward int) []string {
	current := now.Year()
	if now.Month() < time.April {
		current--
	}
	options := make([]string, 0, back+forward+1)
	for y := current + forward; y >= current-back; y-- {
		options = append(options, FormatSession(y))
	}
	return options
}
