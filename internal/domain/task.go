package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// task status
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusOngoing    Status = "ONGOING"
	StatusFinished   Status = "FINISHED"
)

// task importance
type Importance string

const (
	ImportanceHigh Importance = "high"
	ImportanceLow  Importance = "low"
	ImportanceNone Importance = "none"
)

// Importances lists the fixed importance vocabulary in display order.
var Importances = []Importance{ImportanceHigh, ImportanceLow, ImportanceNone}

// Statuses lists the fixed status vocabulary in display order.
var Statuses = []Status{StatusNotStarted, StatusOngoing, StatusFinished}

type Task struct {
	ID         int64      `db:"id" json:"id" yaml:"id"`
	TaskName   string     `db:"task_name" json:"taskName" yaml:"taskName"`
	Status     Status     `db:"status" json:"status" yaml:"status"`
	CreatedAt  Date       `db:"created_at" json:"createdAt" yaml:"createdAt"`
	UpdatedAt  Date       `db:"updated_at" json:"updatedAt" yaml:"updatedAt"`
	Importance Importance `db:"importance" json:"importance" yaml:"importance"`
}

func (t *Task) Validate() error {
	if t.ID <= 0 {
		return errors.New("task id must be positive")
	}

	if len(t.TaskName) > 200 {
		return errors.New("task name cannot exceed 200 characters")
	}

	if !isValidStatus(t.Status) {
		return errors.New("invalid status: must be NOT_STARTED, ONGOING, or FINISHED")
	}

	if !isValidImportance(t.Importance) {
		return errors.New("invalid importance: must be high, low, or none")
	}

	if !t.CreatedAt.Valid() {
		return fmt.Errorf("invalid created date: %q", t.CreatedAt)
	}

	if !t.UpdatedAt.Valid() {
		return fmt.Errorf("invalid updated date: %q", t.UpdatedAt)
	}

	return nil
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !isValidStatus(st) {
		return "", fmt.Errorf("invalid status %q: must be NOT_STARTED, ONGOING, or FINISHED", s)
	}
	return st, nil
}

func ParseImportance(s string) (Importance, error) {
	imp := Importance(strings.ToLower(strings.TrimSpace(s)))
	if !isValidImportance(imp) {
		return "", fmt.Errorf("invalid importance %q: must be high, low, or none", s)
	}
	return imp, nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusOngoing, StatusFinished:
		return true
	default:
		return false
	}
}

func isValidImportance(i Importance) bool {
	switch i {
	case ImportanceHigh, ImportanceLow, ImportanceNone:
		return true
	default:
		return false
	}
}

// mustImportance panics on values outside the fixed vocabulary; callers are
// the UI controllers, which only ever pass the three constants.
func mustImportance(i Importance) {
	if !isValidImportance(i) {
		panic(fmt.Sprintf("domain: unknown importance %q", i))
	}
}

// Valid reports whether i is one of the three importance levels.
func (i Importance) Valid() bool {
	return isValidImportance(i)
}
