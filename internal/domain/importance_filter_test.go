package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportanceFilterToggle(t *testing.T) {
	f := ImportanceFilter{}

	f = f.Toggle(ImportanceHigh)
	assert.Equal(t, ImportanceFilter{High: true}, f)

	// multi-select: a second flag does not clear the first
	f = f.Toggle(ImportanceNone)
	assert.Equal(t, ImportanceFilter{High: true, None: true}, f)

	f = f.Toggle(ImportanceHigh)
	assert.Equal(t, ImportanceFilter{None: true}, f)
}

func TestImportanceFilterToggleAllowsAnyCombination(t *testing.T) {
	f := ImportanceFilter{}.Toggle(ImportanceHigh).Toggle(ImportanceLow).Toggle(ImportanceNone)
	assert.Equal(t, ImportanceFilter{High: true, Low: true, None: true}, f)
	assert.False(t, f.IsNoop())
}

func TestImportanceFilterTogglePanicsOnUnknownFlag(t *testing.T) {
	assert.Panics(t, func() {
		ImportanceFilter{}.Toggle(Importance("medium"))
	})
}

func TestImportanceFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter ImportanceFilter
		imp    Importance
		want   bool
	}{
		{"noop passes high", ImportanceFilter{}, ImportanceHigh, true},
		{"noop passes none", ImportanceFilter{}, ImportanceNone, true},
		{"high only passes high", ImportanceFilter{High: true}, ImportanceHigh, true},
		{"high only rejects low", ImportanceFilter{High: true}, ImportanceLow, false},
		{"none only rejects high", ImportanceFilter{None: true}, ImportanceHigh, false},
		{"low and none pass none", ImportanceFilter{Low: true, None: true}, ImportanceNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.imp))
		})
	}
}

func TestImportanceFilterActive(t *testing.T) {
	assert.Nil(t, ImportanceFilter{}.Active())
	assert.Equal(t,
		[]Importance{ImportanceHigh, ImportanceNone},
		ImportanceFilter{None: true, High: true}.Active(),
	)
	assert.Equal(t, ImportanceFilter{Low: true, None: true}, NewImportanceFilter(ImportanceLow, ImportanceNone, ImportanceLow))
}
