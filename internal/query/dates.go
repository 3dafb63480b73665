// Package query parses the date expressions accepted by the filter flags.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"todolist/internal/domain"
)

var offsetPattern = regexp.MustCompile(`^([+-]?)(\d+)([dwMy])$`)

// ParseDate resolves value against now. Besides calendar dates it accepts
// today, tomorrow, yesterday and offsets such as -7d, +2w, -1M or 1y.
// "none" and the empty string yield the zero Date (an open bound).
func ParseDate(value string, now time.Time) (domain.Date, error) {
	value = strings.TrimSpace(value)

	switch strings.ToLower(value) {
	case "", "none":
		return "", nil
	case "today":
		return domain.Today(now), nil
	case "tomorrow":
		return domain.Today(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return domain.Today(now.AddDate(0, 0, -1)), nil
	}

	if t, ok := parseOffset(value, now); ok {
		return checkYear(t)
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02-01-2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return checkYear(t)
		}
	}

	return "", fmt.Errorf("unable to parse date: %s (expected YYYY-MM-DD, relative keyword, or offset)", value)
}

func parseOffset(value string, now time.Time) (time.Time, bool) {
	matches := offsetPattern.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, false
	}

	num, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, false
	}
	if matches[1] == "-" {
		num = -num
	}

	switch matches[3] {
	case "d":
		return now.AddDate(0, 0, num), true
	case "w":
		return now.AddDate(0, 0, num*7), true
	case "M":
		return now.AddDate(0, num, 0), true
	default:
		return now.AddDate(num, 0, 0), true
	}
}

// dates outside 0000..9999 cannot be written as YYYY-MM-DD
func checkYear(t time.Time) (domain.Date, error) {
	if t.Year() < 0 || t.Year() > 9999 {
		return "", fmt.Errorf("date out of range: year %d", t.Year())
	}
	return domain.DateOf(t), nil
}

// ParseDateRange parses "from..to", where either side may be empty or
// "none". A single date is the one-day range [d, d].
func ParseDateRange(value string, now time.Time) (domain.DateRange, error) {
	if !strings.Contains(value, "..") {
		d, err := ParseDate(value, now)
		if err != nil {
			return domain.DateRange{}, err
		}
		return domain.DateRange{Start: d, End: d}, nil
	}

	parts := strings.Split(value, "..")
	if len(parts) != 2 {
		return domain.DateRange{}, fmt.Errorf("invalid range syntax: %s", value)
	}

	start, err := ParseDate(parts[0], now)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid range start: %w", err)
	}

	end, err := ParseDate(parts[1], now)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid range end: %w", err)
	}

	return NewDateRange(start, end)
}

// NewDateRange builds a range and rejects a start after the end, the same
// pairs the date pickers refuse to produce.
func NewDateRange(start, end domain.Date) (domain.DateRange, error) {
	if !start.IsZero() && !end.IsZero() && start > end {
		return domain.DateRange{}, fmt.Errorf("range start %s is after end %s", start, end)
	}
	return domain.DateRange{}.SetStart(start).SetEnd(end), nil
}
