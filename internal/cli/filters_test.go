package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/repository"
	"todolist/internal/store"
)

var testNow = time.Date(2021, time.September, 14, 9, 0, 0, 0, time.Local)

func parseArgs(t *testing.T, args ...string) (store.Filters, error) {
	t.Helper()

	var ff filterFlags
	cmd := &cobra.Command{Use: "test"}
	ff.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return ff.parse(testNow)
}

func TestFilterFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    store.Filters
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			want: store.Filters{},
		},
		{
			name: "single importance",
			args: []string{"--importance", "high"},
			want: store.Filters{Importance: domain.ImportanceFilter{High: true}},
		},
		{
			name: "comma separated and repeated",
			args: []string{"-i", "high,NONE", "-i", "high"},
			want: store.Filters{Importance: domain.ImportanceFilter{High: true, None: true}},
		},
		{
			name: "date bounds",
			args: []string{"--from", "2021-03-01", "--to", "2021-05-01"},
			want: store.Filters{Period: domain.DateRange{Start: "2021-03-01", End: "2021-05-01"}},
		},
		{
			name: "relative start only",
			args: []string{"--from", "-7d"},
			want: store.Filters{Period: domain.DateRange{Start: "2021-09-07"}},
		},
		{
			name: "created range overrides from and to",
			args: []string{"--from", "2020-01-01", "--created", "2021-03-01..2021-04-03"},
			want: store.Filters{Period: domain.DateRange{Start: "2021-03-01", End: "2021-04-03"}},
		},
		{
			name:    "unknown importance",
			args:    []string{"--importance", "urgent"},
			wantErr: true,
		},
		{
			name:    "start after end",
			args:    []string{"--from", "2021-05-01", "--to", "2021-03-01"},
			wantErr: true,
		},
		{
			name:    "bad date",
			args:    []string{"--to", "someday"},
			wantErr: true,
		},
		{
			name:    "bad created range",
			args:    []string{"--created", "2021-05-01..2021-03-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterFlags_MatchVisibleTasks(t *testing.T) {
	filters, err := parseArgs(t, "--created", "2021-03-01..2021-05-01", "-i", "none,low")
	require.NoError(t, err)

	tasks := []domain.Task{
		{ID: 1, CreatedAt: "2021-02-03", Importance: domain.ImportanceNone},
		{ID: 2, CreatedAt: "2021-03-03", Importance: domain.ImportanceNone},
		{ID: 3, CreatedAt: "2021-04-03", Importance: domain.ImportanceHigh},
		{ID: 4, CreatedAt: "2021-05-01", Importance: domain.ImportanceLow},
	}

	got := store.VisibleTasks(tasks, filters.Importance, filters.Period)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestPageFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    repository.TaskFilter
		wantErr bool
	}{
		{
			name: "unpaged by default",
			want: repository.TaskFilter{Importance: []domain.Importance{domain.ImportanceHigh}},
		},
		{
			name: "limit and offset",
			args: []string{"--limit", "2", "--offset", "1"},
			want: repository.TaskFilter{Importance: []domain.Importance{domain.ImportanceHigh}, Limit: 2, Offset: 1},
		},
		{
			name: "offset alone",
			args: []string{"--offset", "3"},
			want: repository.TaskFilter{Importance: []domain.Importance{domain.ImportanceHigh}, Offset: 3},
		},
		{
			name:    "negative limit",
			args:    []string{"--limit", "-1"},
			wantErr: true,
		},
		{
			name:    "negative offset",
			args:    []string{"--offset", "-2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pf pageFlags
			cmd := &cobra.Command{Use: "test"}
			pf.register(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			base := repository.TaskFilter{Importance: []domain.Importance{domain.ImportanceHigh}}
			got, err := pf.apply(base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
