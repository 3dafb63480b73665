// Package editor is the controller behind the task detail view. It holds a
// scratch buffer while editing and dispatches a single UPDATE on confirm.
package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"todolist/internal/domain"
	"todolist/internal/logging"
	"todolist/internal/store"
)

var ErrNotEditing = errors.New("editor is not in edit mode")

// Dispatcher consumes the editor's actions. *store.Store satisfies it.
type Dispatcher interface {
	Apply(ctx context.Context, a store.Action) ([]domain.Task, error)
}

type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// EditBuffer is the unsaved state of an edit session.
type EditBuffer struct {
	Text             string
	Importance       domain.Importance
	FirstEditTouched bool
}

type Editor struct {
	task       domain.Task
	mode       Mode
	buf        EditBuffer
	dispatcher Dispatcher
	now        func() time.Time
	logger     *log.Logger
}

func New(task domain.Task, dispatcher Dispatcher, logger *log.Logger) *Editor {
	return &Editor{
		task:       task,
		mode:       Viewing,
		dispatcher: dispatcher,
		now:        time.Now,
		logger:     logging.OrNop(logger),
	}
}

// SetClock replaces the source of today's date used on confirm.
func (e *Editor) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

func (e *Editor) Task() domain.Task {
	return e.task
}

func (e *Editor) Mode() Mode {
	return e.mode
}

// Buffer returns the edit buffer; ok is false outside edit mode.
func (e *Editor) Buffer() (EditBuffer, bool) {
	if e.mode != Editing {
		return EditBuffer{}, false
	}
	return e.buf, true
}

// Label is the caption of the edit/confirm button for the current mode.
func (e *Editor) Label() string {
	if e.mode == Editing {
		return "OK"
	}
	return "EDIT"
}

// BeginEdit seeds the buffer from the task. It is a no-op while editing.
func (e *Editor) BeginEdit() {
	if e.mode == Editing {
		return
	}

	e.buf = EditBuffer{
		Text:       e.task.TaskName,
		Importance: e.task.Importance,
	}
	e.mode = Editing
	e.logger.Debug("edit started", "task_id", e.task.ID)
}

// FocusText clears the text the first time the field gains focus in a session.
func (e *Editor) FocusText() error {
	if e.mode != Editing {
		return ErrNotEditing
	}

	if !e.buf.FirstEditTouched {
		e.buf.Text = ""
		e.buf.FirstEditTouched = true
	}
	return nil
}

func (e *Editor) SetText(s string) error {
	if e.mode != Editing {
		return ErrNotEditing
	}
	e.buf.Text = s
	return nil
}

// ToggleImportance selects imp, or falls back to none when imp is already
// selected.
func (e *Editor) ToggleImportance(imp domain.Importance) error {
	if !imp.Valid() {
		panic(fmt.Sprintf("editor: unknown importance %q", imp))
	}
	if e.mode != Editing {
		return ErrNotEditing
	}

	if e.buf.Importance == imp {
		e.buf.Importance = domain.ImportanceNone
	} else {
		e.buf.Importance = imp
	}
	return nil
}

// ConfirmEdit dispatches the buffer as an UPDATE stamped with today's date.
// On a dispatch error the editor stays in edit mode with the buffer intact.
func (e *Editor) ConfirmEdit(ctx context.Context) error {
	if e.mode != Editing {
		return ErrNotEditing
	}

	action := store.Update(e.task.ID, e.buf.Text, domain.Today(e.now()), e.buf.Importance)
	tasks, err := e.dispatcher.Apply(ctx, action)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", e.task.ID, err)
	}

	for _, t := range tasks {
		if t.ID == e.task.ID {
			e.task = t
			break
		}
	}
	e.mode = Viewing
	e.buf = EditBuffer{}
	e.logger.Info("task updated", "task_id", e.task.ID, "importance", e.task.Importance)
	return nil
}

// CancelEdit drops the buffer without dispatching.
func (e *Editor) CancelEdit() {
	if e.mode != Editing {
		return
	}
	e.mode = Viewing
	e.buf = EditBuffer{}
	e.logger.Debug("edit cancelled", "task_id", e.task.ID)
}

// Toggle is the EDIT/OK button: it starts an edit when viewing and confirms
// when editing.
func (e *Editor) Toggle(ctx context.Context) error {
	if e.mode == Viewing {
		e.BeginEdit()
		return nil
	}
	return e.ConfirmEdit(ctx)
}
