package tui

import (
	"fmt"
	"strings"
	"time"

	"todolist/internal/domain"
	"todolist/internal/panel"
	"todolist/internal/theme"
)

type dateTarget int

const (
	targetStart dateTarget = iota
	targetEnd
)

func (t dateTarget) String() string {
	if t == targetEnd {
		return "End date"
	}
	return "Start date"
}

var (
	minPickerDate = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxPickerDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// datePicker is a month calendar with a day cursor, bound to one side of the
// pending date range.
type datePicker struct {
	target dateTarget
	cursor time.Time
}

// newDatePicker starts at the current bound, or at today when it is unset.
func newDatePicker(target dateTarget, current domain.Date, today time.Time) *datePicker {
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if current.Valid() {
		cursor = current.Time()
	}
	return &datePicker{target: target, cursor: clampDate(cursor)}
}

func (p *datePicker) moveDays(n int) {
	p.cursor = clampDate(p.cursor.AddDate(0, 0, n))
}

// moveMonths keeps the day of month where possible and otherwise lands on
// the last day, so Jan 31 goes to Feb 28 rather than Mar 3.
func (p *datePicker) moveMonths(n int) {
	first := time.Date(p.cursor.Year(), p.cursor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := p.cursor.Day()
	if last := daysIn(first); day > last {
		day = last
	}
	p.cursor = clampDate(time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC))
}

func (p *datePicker) disabled(fp *panel.FilterPanel, t time.Time) bool {
	if p.target == targetEnd {
		return fp.DisabledEnd(t)
	}
	return fp.DisabledStart(t)
}

// selected returns the date under the cursor, or false when it is disabled.
func (p *datePicker) selected(fp *panel.FilterPanel) (domain.Date, bool) {
	if p.disabled(fp, p.cursor) {
		return "", false
	}
	return domain.DateOf(p.cursor), true
}

func (p *datePicker) render(styles *theme.Styles, fp *panel.FilterPanel, bound domain.Date) string {
	var b strings.Builder

	b.WriteString(styles.PanelHeading.Render(p.target.String()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %04d\n", p.cursor.Month(), p.cursor.Year()))
	b.WriteString(styles.TUISubtitle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	first := time.Date(p.cursor.Year(), p.cursor.Month(), 1, 0, 0, 0, 0, time.UTC)
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))

	for day := 1; day <= daysIn(first); day++ {
		d := first.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%2d", day)

		switch {
		case d.Equal(p.cursor):
			cell = styles.PanelCursor.Render(cell)
		case p.disabled(fp, d):
			cell = styles.Disabled.Render(cell)
		case domain.DateOf(d) == bound:
			cell = styles.Checked.Render(cell)
		}

		b.WriteString(cell)
		if d.Weekday() == time.Saturday {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	if p.disabled(fp, p.cursor) {
		b.WriteString(styles.Disabled.Render(domain.DateOf(p.cursor).String()))
		b.WriteString(styles.TUISubtitle.Render(" (unavailable)"))
	} else {
		b.WriteString(domain.DateOf(p.cursor).String())
	}

	return b.String()
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDate(t time.Time) time.Time {
	if t.Before(minPickerDate) {
		return minPickerDate
	}
	if t.After(maxPickerDate) {
		return maxPickerDate
	}
	return t
}
