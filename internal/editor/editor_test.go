package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/repository/sqlite"
	"todolist/internal/store"
)

var fixedNow = time.Date(2021, time.September, 14, 10, 30, 0, 0, time.UTC)

type stubDispatcher struct {
	actions []store.Action
	err     error
	tasks   []domain.Task
}

func (d *stubDispatcher) Apply(ctx context.Context, a store.Action) ([]domain.Task, error) {
	d.actions = append(d.actions, a)
	if d.err != nil {
		return nil, d.err
	}
	return store.Reduce(d.tasks, a)
}

func setupEditor(t *testing.T) (*Editor, *stubDispatcher) {
	t.Helper()
	seed := repository.DefaultSeed()
	d := &stubDispatcher{tasks: seed}
	e := New(seed[0], d, nil)
	e.now = func() time.Time { return fixedNow }
	return e, d
}

func TestEditor_BeginEditSeedsBuffer(t *testing.T) {
	e, _ := setupEditor(t)

	_, ok := e.Buffer()
	assert.False(t, ok)
	assert.Equal(t, "EDIT", e.Label())

	e.BeginEdit()
	buf, ok := e.Buffer()
	require.True(t, ok)
	assert.Equal(t, Editing, e.Mode())
	assert.Equal(t, "OK", e.Label())
	assert.Equal(t, EditBuffer{Text: e.Task().TaskName, Importance: e.Task().Importance}, buf)
}

func TestEditor_ToggleImportance(t *testing.T) {
	tests := []struct {
		name    string
		start   domain.Importance
		toggles []domain.Importance
		want    domain.Importance
	}{
		{name: "select high", start: domain.ImportanceNone, toggles: []domain.Importance{domain.ImportanceHigh}, want: domain.ImportanceHigh},
		{name: "double toggle returns to none", start: domain.ImportanceNone, toggles: []domain.Importance{domain.ImportanceHigh, domain.ImportanceHigh}, want: domain.ImportanceNone},
		{name: "replace low with high", start: domain.ImportanceLow, toggles: []domain.Importance{domain.ImportanceHigh}, want: domain.ImportanceHigh},
		{name: "clear current", start: domain.ImportanceLow, toggles: []domain.Importance{domain.ImportanceLow}, want: domain.ImportanceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := domain.Task{ID: 1, TaskName: "x", Importance: tt.start}
			e := New(task, &stubDispatcher{}, nil)
			e.BeginEdit()

			for _, imp := range tt.toggles {
				require.NoError(t, e.ToggleImportance(imp))
			}

			buf, _ := e.Buffer()
			assert.Equal(t, tt.want, buf.Importance)
		})
	}
}

func TestEditor_ToggleImportanceUnknownPanics(t *testing.T) {
	e, _ := setupEditor(t)
	e.BeginEdit()
	assert.Panics(t, func() { _ = e.ToggleImportance("urgent") })
}

func TestEditor_FocusClearsOnlyOnce(t *testing.T) {
	e, _ := setupEditor(t)
	e.BeginEdit()

	require.NoError(t, e.FocusText())
	buf, _ := e.Buffer()
	assert.Equal(t, "", buf.Text)
	assert.True(t, buf.FirstEditTouched)

	require.NoError(t, e.SetText("abc"))
	require.NoError(t, e.FocusText())

	buf, _ = e.Buffer()
	assert.Equal(t, "abc", buf.Text)
}

func TestEditor_NewSessionResetsFirstFocus(t *testing.T) {
	e, _ := setupEditor(t)

	e.BeginEdit()
	require.NoError(t, e.FocusText())
	require.NoError(t, e.SetText("first"))
	e.CancelEdit()

	e.BeginEdit()
	buf, _ := e.Buffer()
	assert.False(t, buf.FirstEditTouched)
	assert.Equal(t, "Write cover letter", buf.Text)

	require.NoError(t, e.FocusText())
	buf, _ = e.Buffer()
	assert.Equal(t, "", buf.Text)
}

func TestEditor_ConfirmDispatchesUpdate(t *testing.T) {
	e, d := setupEditor(t)
	e.BeginEdit()
	require.NoError(t, e.FocusText())
	require.NoError(t, e.SetText("Send cover letter"))
	require.NoError(t, e.ToggleImportance(domain.ImportanceLow))

	require.NoError(t, e.ConfirmEdit(context.Background()))

	require.Len(t, d.actions, 1)
	assert.Equal(t, store.Update(1, "Send cover letter", "2021-09-14", domain.ImportanceLow), d.actions[0])
	assert.Equal(t, Viewing, e.Mode())
	assert.Equal(t, "Send cover letter", e.Task().TaskName)
	assert.Equal(t, domain.Date("2021-09-14"), e.Task().UpdatedAt)
}

func TestEditor_ConfirmWithoutChangesStillBumpsDate(t *testing.T) {
	e, d := setupEditor(t)
	before := e.Task()

	require.NoError(t, e.Toggle(context.Background()))
	require.NoError(t, e.Toggle(context.Background()))

	require.Len(t, d.actions, 1)
	assert.Equal(t, before.TaskName, d.actions[0].NewText)
	assert.Equal(t, before.Importance, d.actions[0].NewImportance)
	assert.Equal(t, domain.Date("2021-09-14"), e.Task().UpdatedAt)
	assert.NotEqual(t, before.UpdatedAt, e.Task().UpdatedAt)
}

func TestEditor_ConfirmFailureKeepsEditing(t *testing.T) {
	e, d := setupEditor(t)
	d.err = errors.New("boom")

	e.BeginEdit()
	require.NoError(t, e.SetText("draft"))

	err := e.ConfirmEdit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update task 1")

	assert.Equal(t, Editing, e.Mode())
	buf, _ := e.Buffer()
	assert.Equal(t, "draft", buf.Text)
}

func TestEditor_CancelDoesNotDispatch(t *testing.T) {
	e, d := setupEditor(t)
	before := e.Task()

	e.BeginEdit()
	require.NoError(t, e.SetText("discard me"))
	e.CancelEdit()

	assert.Empty(t, d.actions)
	assert.Equal(t, Viewing, e.Mode())
	assert.Equal(t, before, e.Task())
}

func TestEditor_OperationsOutsideEditMode(t *testing.T) {
	e, _ := setupEditor(t)

	assert.ErrorIs(t, e.FocusText(), ErrNotEditing)
	assert.ErrorIs(t, e.SetText("x"), ErrNotEditing)
	assert.ErrorIs(t, e.ToggleImportance(domain.ImportanceHigh), ErrNotEditing)
	assert.ErrorIs(t, e.ConfirmEdit(context.Background()), ErrNotEditing)
}

func TestEditor_WithStore(t *testing.T) {
	db, err := sqlite.NewDB(sqlite.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	repo := sqlite.NewTaskRepository(db)
	require.NoError(t, repository.Seed(ctx, repo, repository.DefaultSeed()))

	s, err := store.New(ctx, repo, nil)
	require.NoError(t, err)

	task, ok := s.Task(3)
	require.True(t, ok)

	e := New(task, s, nil)
	e.now = func() time.Time { return fixedNow }

	e.BeginEdit()
	require.NoError(t, e.ToggleImportance(domain.ImportanceHigh))
	require.NoError(t, e.ConfirmEdit(ctx))

	got, _ := s.Task(3)
	assert.Equal(t, domain.ImportanceHigh, got.Importance)
	assert.Equal(t, domain.Date("2021-09-14"), got.UpdatedAt)

	saved, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, got, *saved)
}
