// Package timeutil parses the look-back windows accepted by --since.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

	units = map[string]time.Duration{}

	// canonical order used by FormatWindow
	labels = []struct {
		label string
		size  time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}
)

func init() {
	for size, aliases := range map[time.Duration][]string{
		time.Second: {"s", "sec", "secs", "second", "seconds"},
		time.Minute: {"m", "min", "mins", "minute", "minutes"},
		time.Hour:   {"h", "hr", "hrs", "hour", "hours"},
		day:         {"d", "day", "days"},
		week:        {"w", "wk", "wks", "week", "weeks"},
	} {
		for _, a := range aliases {
			units[a] = size
		}
	}
}

// ParseWindow parses windows like "3d", "1w" or "1w2d6h". The result is
// always positive.
func ParseWindow(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, fmt.Errorf("empty window")
	}

	var total time.Duration
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		size, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * size
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d with the largest units first, e.g. "1w2d".
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range labels {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}

// Cutoff returns the start of the calendar day, in loc, that lies window
// before now. A one day window therefore covers yesterday and today.
func Cutoff(now time.Time, window time.Duration, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	start := now.In(loc).Add(-window)
	y, m, d := start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
