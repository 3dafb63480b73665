package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/domain"
	"todolist/internal/query"
	"todolist/internal/repository"
	"todolist/internal/store"
)

// filterFlags are the importance/creation-date flags shared by list, tui and
// export. They map onto the same Filters the side panel commits.
type filterFlags struct {
	importance []string
	from       string
	to         string
	created    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.importance, "importance", "i", []string{}, "Filter by importance (high, low, none; comma-separated)")
	cmd.Flags().StringVar(&f.from, "from", "", "Created on or after (YYYY-MM-DD, today, -7d, ...)")
	cmd.Flags().StringVar(&f.to, "to", "", "Created on or before (YYYY-MM-DD, today, -7d, ...)")
	cmd.Flags().StringVar(&f.created, "created", "", "Creation date range as from..to (overrides --from/--to)")
}

func (f *filterFlags) parse(now time.Time) (store.Filters, error) {
	imps := make([]domain.Importance, 0, len(f.importance))
	for _, raw := range f.importance {
		imp, err := domain.ParseImportance(raw)
		if err != nil {
			return store.Filters{}, err
		}
		imps = append(imps, imp)
	}

	filters := store.Filters{Importance: domain.NewImportanceFilter(imps...)}

	if f.created != "" {
		period, err := query.ParseDateRange(f.created, now)
		if err != nil {
			return store.Filters{}, fmt.Errorf("invalid --created: %w", err)
		}
		filters.Period = period
		return filters, nil
	}

	start, err := query.ParseDate(f.from, now)
	if err != nil {
		return store.Filters{}, fmt.Errorf("invalid --from: %w", err)
	}
	end, err := query.ParseDate(f.to, now)
	if err != nil {
		return store.Filters{}, fmt.Errorf("invalid --to: %w", err)
	}

	period, err := query.NewDateRange(start, end)
	if err != nil {
		return store.Filters{}, err
	}
	filters.Period = period

	return filters, nil
}

// pageFlags window a filtered listing. The tui has no use for them; it
// always shows every visible task.
type pageFlags struct {
	limit  int
	offset int
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.limit, "limit", 0, "Show at most this many tasks (0 = all)")
	cmd.Flags().IntVar(&p.offset, "offset", 0, "Skip this many matching tasks")
}

// apply sets the page window on a filter derived from the filter flags.
func (p *pageFlags) apply(filter repository.TaskFilter) (repository.TaskFilter, error) {
	if p.limit < 0 {
		return filter, fmt.Errorf("invalid --limit: %d is negative", p.limit)
	}
	if p.offset < 0 {
		return filter, fmt.Errorf("invalid --offset: %d is negative", p.offset)
	}

	filter.Limit = p.limit
	filter.Offset = p.offset
	return filter, nil
}
