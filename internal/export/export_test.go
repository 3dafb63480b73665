package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/repository/sqlite"
)

func setupTestRepo(t *testing.T) repository.TaskRepository {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewTaskRepository(db)
	require.NoError(t, repository.Seed(context.Background(), repo, repository.DefaultSeed()))
	return repo
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: " CSV ", want: FormatCSV},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONExporter(t *testing.T) {
	repo := setupTestRepo(t)
	e := NewJSONExporter(repo)
	e.now = func() time.Time { return time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	err := e.Export(context.Background(), &buf, repository.TaskFilter{
		Importance: []domain.Importance{domain.ImportanceNone},
	})
	require.NoError(t, err)

	var out TasksExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, Version, out.Version)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, int64(2), out.Tasks[0].ID)
	assert.Equal(t, "2021-03-03", out.Tasks[0].CreatedAt)
	assert.Contains(t, buf.String(), `"taskName"`)
}

func TestJSONRoundTripAsSeed(t *testing.T) {
	repo := setupTestRepo(t)

	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter(repo).Export(context.Background(), &buf, repository.TaskFilter{}))

	tasks, err := ReadTasks(&buf)
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultSeed(), tasks)
}

func TestReadTasks_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "not json", input: "nope", want: "failed to decode"},
		{name: "no tasks", input: `{"version":"1.0"}`, want: "no tasks"},
		{name: "bad status", input: `{"tasks":[{"id":1,"status":"DONE","createdAt":"2021-01-01"}]}`, want: "invalid status"},
		{name: "bad date", input: `{"tasks":[{"id":1,"status":"ONGOING","createdAt":"01/01/2021"}]}`, want: "invalid created date"},
		{name: "duplicate", input: `{"tasks":[{"id":1,"status":"ONGOING","createdAt":"2021-01-01"},{"id":1,"status":"ONGOING","createdAt":"2021-01-01"}]}`, want: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTasks(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVExporter(t *testing.T) {
	repo := setupTestRepo(t)

	var buf bytes.Buffer
	err := NewCSVExporter(repo).Export(context.Background(), &buf, repository.TaskFilter{
		CreatedFrom: "2021-03-01",
		CreatedTo:   "2021-04-30",
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Task", "Status", "Importance", "Created At", "Updated At"}, rows[0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "3", rows[2][0])
	assert.Equal(t, "2021-04-03", rows[2][4])
}

func TestMarkdownExporter(t *testing.T) {
	repo := setupTestRepo(t)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter(repo).Export(context.Background(), &buf, repository.TaskFilter{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Tasks\n"))

	notStarted := strings.Index(out, "## Not started (2)")
	ongoing := strings.Index(out, "## Ongoing (1)")
	finished := strings.Index(out, "## Finished (1)")
	require.NotEqual(t, -1, notStarted)
	require.NotEqual(t, -1, ongoing)
	require.NotEqual(t, -1, finished)
	assert.Less(t, notStarted, ongoing)
	assert.Less(t, ongoing, finished)

	assert.Contains(t, out, "- [ ] 🔴 **Write cover letter**")
	assert.Contains(t, out, "- [x] ")
}

func TestNewExporter(t *testing.T) {
	repo := setupTestRepo(t)

	for _, f := range []ExportFormat{FormatJSON, FormatCSV, FormatMarkdown} {
		e, err := NewExporter(f, repo)
		require.NoError(t, err)
		assert.NotNil(t, e)
	}

	_, err := NewExporter("xml", repo)
	assert.Error(t, err)
}
