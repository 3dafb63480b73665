package panel

import (
	"github.com/charmbracelet/log"

	"todolist/internal/logging"
	"todolist/internal/store"
)

type Visibility int

const (
	Closed Visibility = iota
	Open
	Closing
)

func (v Visibility) String() string {
	switch v {
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

const DefaultFadeFrames = 4

// FilterSource supplies the committed filters a new session starts from.
type FilterSource interface {
	Filters() store.Filters
}

// SidePanel mounts a FilterPanel while visible and unmounts it once the
// fade-out finishes.
type SidePanel struct {
	state      Visibility
	source     FilterSource
	panel      *FilterPanel
	fadeFrames int
	frame      int
	logger     *log.Logger
}

func NewSidePanel(source FilterSource, fadeFrames int, logger *log.Logger) *SidePanel {
	if fadeFrames <= 0 {
		fadeFrames = DefaultFadeFrames
	}
	return &SidePanel{
		state:      Closed,
		source:     source,
		fadeFrames: fadeFrames,
		logger:     logging.OrNop(logger),
	}
}

func (s *SidePanel) State() Visibility {
	return s.state
}

// Panel returns the mounted session, or nil when closed.
func (s *SidePanel) Panel() *FilterPanel {
	return s.panel
}

// Open mounts a fresh session. It reports false unless the panel was Closed.
func (s *SidePanel) Open() bool {
	if s.state != Closed {
		return false
	}

	s.panel = OpenFilterPanel(s.source.Filters(), s.logger)
	s.state = Open
	s.frame = 0
	return true
}

// RequestClose starts the fade-out. It reports false unless the panel was Open.
func (s *SidePanel) RequestClose() bool {
	if s.state != Open {
		return false
	}

	s.state = Closing
	s.frame = 0
	s.logger.Debug("side panel closing", "session", s.panel.ID())
	return true
}

// BackgroundClick dismisses an open panel; it is a no-op otherwise.
func (s *SidePanel) BackgroundClick() bool {
	return s.RequestClose()
}

// Tick advances the fade by one frame and reports whether it is still running.
func (s *SidePanel) Tick() bool {
	if s.state != Closing {
		return false
	}

	s.frame++
	if s.frame >= s.fadeFrames {
		s.FadeComplete()
		return false
	}
	return true
}

// FadeComplete unmounts the panel, discarding any pending edits.
func (s *SidePanel) FadeComplete() {
	if s.state != Closing {
		return
	}

	if s.panel != nil && s.panel.IsOpen() {
		// closed by the close button or a background click
		_ = s.panel.Cancel()
	}
	s.panel = nil
	s.state = Closed
	s.frame = 0
}

// Opacity is 1 while open and falls toward 0 during the fade.
func (s *SidePanel) Opacity() float64 {
	switch s.state {
	case Open:
		return 1
	case Closing:
		return 1 - float64(s.frame)/float64(s.fadeFrames)
	default:
		return 0
	}
}
