package domain

// ImportanceFilter is a multi-select over importance levels. The flags are
// independent; when none is set the filter lets every task through.
type ImportanceFilter struct {
	High bool `json:"high" yaml:"high"`
	Low  bool `json:"low" yaml:"low"`
	None bool `json:"none" yaml:"none"`
}

// NewImportanceFilter sets the flag of every listed importance.
func NewImportanceFilter(imps ...Importance) ImportanceFilter {
	var f ImportanceFilter
	for _, imp := range imps {
		if !f.Has(imp) {
			f = f.Toggle(imp)
		}
	}
	return f
}

// Toggle flips exactly one flag and leaves the others untouched.
func (f ImportanceFilter) Toggle(imp Importance) ImportanceFilter {
	mustImportance(imp)

	switch imp {
	case ImportanceHigh:
		f.High = !f.High
	case ImportanceLow:
		f.Low = !f.Low
	case ImportanceNone:
		f.None = !f.None
	}
	return f
}

// Has reports whether the flag for imp is set.
func (f ImportanceFilter) Has(imp Importance) bool {
	mustImportance(imp)

	switch imp {
	case ImportanceHigh:
		return f.High
	case ImportanceLow:
		return f.Low
	default:
		return f.None
	}
}

func (f ImportanceFilter) IsNoop() bool {
	return !f.High && !f.Low && !f.None
}

// Matches reports whether a task with importance imp passes the filter.
func (f ImportanceFilter) Matches(imp Importance) bool {
	if f.IsNoop() {
		return true
	}
	return f.Has(imp)
}

// Active returns the set flags in display order, or nil for a no-op filter.
func (f ImportanceFilter) Active() []Importance {
	var active []Importance
	for _, imp := range Importances {
		if f.Has(imp) {
			active = append(active, imp)
		}
	}
	return active
}
