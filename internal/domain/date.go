package domain

import (
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

// Date is a calendar day in fixed-width YYYY-MM-DD form. The zero value means
// "unset". Because the format is zero-padded, string comparison orders dates
// chronologically.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil || t.Format(DateFormat) != s {
		return "", fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// MustParseDate is ParseDate for literals known to be valid. It panics on
// anything else.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateFormat))
}

// Today returns the local calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now.Local())
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Valid() bool {
	_, err := ParseDate(string(d))
	return err == nil
}

func (d Date) String() string {
	return string(d)
}

// Time returns midnight UTC of d. It panics on an invalid date.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		panic(fmt.Sprintf("domain: invalid date %q", string(d)))
	}
	return t
}

// DateRange is an inclusive [Start, End] window. Either bound may be unset,
// in which case that side does not restrict anything.
type DateRange struct {
	Start Date `json:"start,omitempty" yaml:"start,omitempty"`
	End   Date `json:"end,omitempty" yaml:"end,omitempty"`
}

func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// SetStart returns a copy with Start replaced. A zero Date clears the bound.
func (r DateRange) SetStart(d Date) DateRange {
	mustDate(d)
	r.Start = d
	return r
}

// SetEnd returns a copy with End replaced. A zero Date clears the bound.
func (r DateRange) SetEnd(d Date) DateRange {
	mustDate(d)
	r.End = d
	return r
}

// Contains reports whether d lies within the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	if !r.Start.IsZero() && d < r.Start {
		return false
	}
	if !r.End.IsZero() && d > r.End {
		return false
	}
	return true
}

// DisabledStart reports whether candidate must be unselectable in the start
// picker: negative years, or any day after the current end bound.
func (r DateRange) DisabledStart(candidate time.Time) bool {
	if candidate.Year() < 0 {
		return true
	}
	if r.End.IsZero() {
		return false
	}
	// five-digit years do not order lexically
	if candidate.Year() > 9999 {
		return true
	}
	return DateOf(candidate) > r.End
}

// DisabledEnd reports whether candidate must be unselectable in the end
// picker: years past 9999, or any day before the current start bound.
func (r DateRange) DisabledEnd(candidate time.Time) bool {
	if candidate.Year() > 9999 {
		return true
	}
	if r.Start.IsZero() {
		return false
	}
	if candidate.Year() < 0 {
		return true
	}
	return DateOf(candidate) < r.Start
}

func mustDate(d Date) {
	if d.IsZero() {
		return
	}
	if !d.Valid() {
		panic(fmt.Sprintf("domain: malformed date %q", string(d)))
	}
}
