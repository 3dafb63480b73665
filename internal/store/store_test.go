package store

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/repository/sqlite"
)

func setupStore(t *testing.T) *Store {
	db, err := sqlite.NewDB(sqlite.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewTaskRepository(db)
	ctx := context.Background()
	require.NoError(t, repository.Seed(ctx, repo, repository.DefaultSeed()))

	s, err := New(ctx, repo, nil)
	require.NoError(t, err)
	return s
}

type failingRepo struct {
	repository.TaskRepository
	tasks []*domain.Task
}

func (r *failingRepo) List(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error) {
	return r.tasks, nil
}

func (r *failingRepo) Update(ctx context.Context, task *domain.Task) error {
	return errors.New("disk on fire")
}

func taskIDs(tasks []domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestReduce_Update(t *testing.T) {
	tasks := repository.DefaultSeed()
	before := repository.DefaultSeed()

	next, err := Reduce(tasks, Update(2, "Renamed", "2021-09-01", domain.ImportanceLow))
	require.NoError(t, err)

	assert.Equal(t, "Renamed", next[1].TaskName)
	assert.Equal(t, domain.Date("2021-09-01"), next[1].UpdatedAt)
	assert.Equal(t, domain.ImportanceLow, next[1].Importance)

	// untouched fields and tasks
	assert.Equal(t, before[1].CreatedAt, next[1].CreatedAt)
	assert.Equal(t, before[1].Status, next[1].Status)
	assert.Equal(t, before[0], next[0])

	// input slice is not mutated
	assert.Equal(t, before, tasks)
}

func TestReduce_UnknownID(t *testing.T) {
	tasks := repository.DefaultSeed()

	next, err := Reduce(tasks, Update(99, "x", "2021-09-01", domain.ImportanceNone))
	assert.Nil(t, next)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
	assert.Equal(t, repository.DefaultSeed(), tasks)
}

func TestReduce_UnknownAction(t *testing.T) {
	_, err := Reduce(repository.DefaultSeed(), Action{Type: "DELETE", ID: 1})
	assert.True(t, errors.Is(err, ErrUnknownAction))
}

func TestVisibleTasks(t *testing.T) {
	tasks := repository.DefaultSeed()

	tests := []struct {
		name       string
		importance domain.ImportanceFilter
		period     domain.DateRange
		want       []int64
	}{
		{
			name: "no filters",
			want: []int64{1, 2, 3, 4},
		},
		{
			name:       "high only",
			importance: domain.ImportanceFilter{High: true},
			want:       []int64{1},
		},
		{
			name:       "none only",
			importance: domain.ImportanceFilter{None: true},
			want:       []int64{2, 4},
		},
		{
			name:   "inclusive bounds",
			period: domain.DateRange{Start: "2021-03-03", End: "2021-05-03"},
			want:   []int64{2, 3, 4},
		},
		{
			name:   "start only",
			period: domain.DateRange{Start: "2021-04-01"},
			want:   []int64{3, 4},
		},
		{
			name:   "end only",
			period: domain.DateRange{End: "2021-02-03"},
			want:   []int64{1},
		},
		{
			name:       "both filters",
			importance: domain.ImportanceFilter{Low: true, None: true},
			period:     domain.DateRange{Start: "2021-03-01", End: "2021-04-30"},
			want:       []int64{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleTasks(tasks, tt.importance, tt.period)
			assert.Equal(t, tt.want, taskIDs(got))
		})
	}
}

func TestVisibleTasks_DateRangeScenario(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, CreatedAt: "2021-02-03", Importance: domain.ImportanceNone},
		{ID: 2, CreatedAt: "2021-04-03", Importance: domain.ImportanceHigh},
	}

	got := VisibleTasks(tasks, domain.ImportanceFilter{}, domain.DateRange{Start: "2021-03-01", End: "2021-05-01"})
	assert.Equal(t, []int64{2}, taskIDs(got))
}

func TestVisibleTasks_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dates := []domain.Date{"", "2021-01-01", "2021-02-03", "2021-03-03", "2021-04-03", "2021-05-03", "2021-12-31"}

	tasks := repository.DefaultSeed()
	tasks = append(tasks, domain.Task{ID: 5, CreatedAt: "2021-04-03", Importance: domain.ImportanceHigh})

	for i := 0; i < 500; i++ {
		imp := domain.ImportanceFilter{High: rng.Intn(2) == 0, Low: rng.Intn(2) == 0, None: rng.Intn(2) == 0}
		period := domain.DateRange{Start: dates[rng.Intn(len(dates))], End: dates[rng.Intn(len(dates))]}
		if !period.Start.IsZero() && !period.End.IsZero() && period.Start > period.End {
			period.Start, period.End = period.End, period.Start
		}

		got := VisibleTasks(tasks, imp, period)

		seen := make(map[int64]bool)
		for _, v := range got {
			require.False(t, seen[v.ID], "duplicate task %d", v.ID)
			seen[v.ID] = true
			require.Contains(t, tasks, v)
		}

		for _, task := range tasks {
			if !period.Contains(task.CreatedAt) {
				require.False(t, seen[task.ID], "task %d outside %v", task.ID, period)
			}
			if imp.IsNoop() && period.Contains(task.CreatedAt) {
				require.True(t, seen[task.ID], "no-op importance dropped task %d", task.ID)
			}
		}
	}
}

func TestStore_Apply(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tasks, err := s.Apply(ctx, Update(1, "Send cover letter", "2021-10-01", domain.ImportanceLow))
	require.NoError(t, err)
	assert.Equal(t, "Send cover letter", tasks[0].TaskName)

	got, ok := s.Task(1)
	require.True(t, ok)
	assert.Equal(t, domain.ImportanceLow, got.Importance)
	assert.Equal(t, domain.Date("2021-10-01"), got.UpdatedAt)

	// written through
	saved, err := s.repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, got, *saved)
}

func TestStore_ApplyUnknownIDLeavesStateUnchanged(t *testing.T) {
	s := setupStore(t)
	before := s.Tasks()

	_, err := s.Apply(context.Background(), Update(42, "x", "2021-10-01", domain.ImportanceHigh))
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
	assert.Equal(t, before, s.Tasks())
}

func TestStore_ApplyRejectsInvalidDate(t *testing.T) {
	s := setupStore(t)
	before := s.Tasks()

	_, err := s.Apply(context.Background(), Update(1, "x", "10/01/2021", domain.ImportanceHigh))
	assert.Error(t, err)
	assert.Equal(t, before, s.Tasks())
}

func TestStore_ApplyWriteFailureLeavesStateUnchanged(t *testing.T) {
	seed := repository.DefaultSeed()
	rows := make([]*domain.Task, 0, len(seed))
	for i := range seed {
		rows = append(rows, &seed[i])
	}

	s, err := New(context.Background(), &failingRepo{tasks: rows}, nil)
	require.NoError(t, err)
	before := s.Tasks()

	_, err = s.Apply(context.Background(), Update(1, "x", "2021-10-01", domain.ImportanceHigh))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save task 1")
	assert.Equal(t, before, s.Tasks())
}

func TestStore_CommitFilters(t *testing.T) {
	s := setupStore(t)
	assert.True(t, s.Filters().IsZero())
	assert.Len(t, s.Visible(), 4)

	f := Filters{
		Importance: domain.ImportanceFilter{None: true},
		Period:     domain.DateRange{Start: "2021-03-01", End: "2021-05-01"},
	}
	s.CommitFilters(f)

	assert.Equal(t, f, s.Filters())
	assert.Equal(t, []int64{2}, taskIDs(s.Visible()))
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s := setupStore(t)

	tasks := s.Tasks()
	tasks[0].TaskName = "mutated"

	got, _ := s.Task(1)
	assert.Equal(t, "Write cover letter", got.TaskName)
}

func TestFilters_TaskFilterMatchesVisibleTasks(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	filters := []Filters{
		{},
		{Importance: domain.ImportanceFilter{High: true, None: true}},
		{Period: domain.DateRange{Start: "2021-03-03"}},
		{Importance: domain.ImportanceFilter{Low: true}, Period: domain.DateRange{End: "2021-04-03"}},
	}

	for _, f := range filters {
		rows, err := s.repo.List(ctx, f.TaskFilter())
		require.NoError(t, err)

		var fromSQL []int64
		for _, row := range rows {
			fromSQL = append(fromSQL, row.ID)
		}
		if fromSQL == nil {
			fromSQL = []int64{}
		}

		assert.Equal(t, taskIDs(VisibleTasks(s.Tasks(), f.Importance, f.Period)), fromSQL)
	}
}
