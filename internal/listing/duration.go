package listing

import (
	"regexp"
	"strconv"
)

var (
	// a number directly followed by a day token: "10D", "7 Days", "5 day"
	daysTokenRe = regexp.MustCompile(`(?i)(\d+)\s*(?:days?|d)\b`)
	firstIntRe  = regexp.MustCompile(`\d+`)
)

// ParseDays extracts the trip length in days from a free-form duration.
// "9N/10D" is 10, "7 Days" is 7, "5 nights" falls back to the first integer (5),
// and anything without digits is 0.
//
// Every listing context buckets durations through this one function.
func ParseDays(duration string) int {
	if m := daysTokenRe.FindStringSubmatch(duration); m != nil {
		return atoiOrZero(m[1])
	}
	return atoiOrZero(firstIntRe.FindString(duration))
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
