// Package panel holds the filter side panel controllers: the pending filter
// session and the open/close/fade lifecycle around it.
package panel

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"todolist/internal/domain"
	"todolist/internal/logging"
	"todolist/internal/store"
)

var ErrPanelClosed = errors.New("filter panel is closed")

// Committer receives the pending filters on apply.
type Committer interface {
	CommitFilters(f store.Filters)
}

// FilterPanel is one editing session over a copy of the committed filters.
// Nothing outside the panel observes the pending copy until Apply.
type FilterPanel struct {
	id      string
	pending store.Filters
	open    bool
	logger  *log.Logger
}

// OpenFilterPanel starts a session seeded from committed.
func OpenFilterPanel(committed store.Filters, logger *log.Logger) *FilterPanel {
	p := &FilterPanel{
		id:      uuid.NewString(),
		pending: committed,
		open:    true,
		logger:  logging.OrNop(logger),
	}
	p.logger.Debug("filter panel opened", "session", p.id)
	return p
}

func (p *FilterPanel) ID() string {
	return p.id
}

func (p *FilterPanel) IsOpen() bool {
	return p.open
}

// Pending returns the working copy; ok is false once the session ended.
func (p *FilterPanel) Pending() (store.Filters, bool) {
	if !p.open {
		return store.Filters{}, false
	}
	return p.pending, true
}

func (p *FilterPanel) ToggleImportance(imp domain.Importance) error {
	if !p.open {
		return ErrPanelClosed
	}
	p.pending.Importance = p.pending.Importance.Toggle(imp)
	return nil
}

// SetStart replaces the pending start bound; a zero Date clears it.
func (p *FilterPanel) SetStart(d domain.Date) error {
	if !p.open {
		return ErrPanelClosed
	}
	p.pending.Period = p.pending.Period.SetStart(d)
	return nil
}

// SetEnd replaces the pending end bound; a zero Date clears it.
func (p *FilterPanel) SetEnd(d domain.Date) error {
	if !p.open {
		return ErrPanelClosed
	}
	p.pending.Period = p.pending.Period.SetEnd(d)
	return nil
}

// DisabledStart reports whether candidate is unselectable as a start date.
func (p *FilterPanel) DisabledStart(candidate time.Time) bool {
	return p.pending.Period.DisabledStart(candidate)
}

// DisabledEnd reports whether candidate is unselectable as an end date.
func (p *FilterPanel) DisabledEnd(candidate time.Time) bool {
	return p.pending.Period.DisabledEnd(candidate)
}

// Apply hands both pending filters to c in a single call and ends the session.
func (p *FilterPanel) Apply(c Committer) error {
	if !p.open {
		return ErrPanelClosed
	}

	c.CommitFilters(p.pending)
	p.logger.Info("filters applied", "session", p.id,
		"importance", p.pending.Importance.Active(),
		"start", p.pending.Period.Start, "end", p.pending.Period.End)
	p.close()
	return nil
}

// Cancel drops the pending filters.
func (p *FilterPanel) Cancel() error {
	if !p.open {
		return ErrPanelClosed
	}

	p.logger.Debug("filter panel cancelled", "session", p.id)
	p.close()
	return nil
}

func (p *FilterPanel) close() {
	p.open = false
	p.pending = store.Filters{}
}
