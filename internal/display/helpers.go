package display

import (
	"fmt"

	"todolist/internal/domain"
)

func GetStatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusFinished:
		return "✓"
	case domain.StatusOngoing:
		return "⚡"
	case domain.StatusNotStarted:
		return "○"
	default:
		return "?"
	}
}

func GetStatusLabel(status domain.Status) string {
	switch status {
	case domain.StatusFinished:
		return "Finished"
	case domain.StatusOngoing:
		return "Ongoing"
	case domain.StatusNotStarted:
		return "Not started"
	default:
		return string(status)
	}
}

func GetImportanceIcon(importance domain.Importance) string {
	switch importance {
	case domain.ImportanceHigh:
		return "⬆"
	case domain.ImportanceLow:
		return "⬇"
	case domain.ImportanceNone:
		return "·"
	default:
		return "?"
	}
}

// GetImportanceLabel is the caption of the filter checkbox for importance.
func GetImportanceLabel(importance domain.Importance) string {
	switch importance {
	case domain.ImportanceHigh:
		return "Important!"
	case domain.ImportanceLow:
		return "Relaxed"
	case domain.ImportanceNone:
		return "None"
	default:
		return string(importance)
	}
}

// FormatImportance renders the detail line, e.g. "importance: high".
func FormatImportance(importance domain.Importance) string {
	return fmt.Sprintf("importance: %s", importance)
}

// FormatDate renders an unset date as a dash.
func FormatDate(d domain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

func Checkbox(checked bool) string {
	if checked {
		return "[✓]"
	}
	return "[ ]"
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
