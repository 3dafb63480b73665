package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/export"
	"todolist/internal/logging"
	"todolist/internal/repository"
	"todolist/internal/repository/sqlite"
	"todolist/internal/store"
	"todolist/internal/theme"
)

// app is everything a command needs for one run: the in-memory database
// seeded from the configured task list, and the store on top of it.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	db     *sqlite.DB
	repo   *sqlite.TaskRepository
	store  *store.Store
	theme  *theme.Theme
	styles *theme.Styles

	closers []io.Closer
}

// newApp wires config, logging, storage and the store. The TUI owns the
// terminal, so its logs go to the configured file instead of stderr.
func newApp(ctx context.Context, logToFile bool) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &app{cfg: cfg}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	if logToFile {
		logger, closer, err := logging.NewFile(cfg.LogFile, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.logger = logger
		a.closers = append(a.closers, closer)
	} else {
		a.logger = logging.New(os.Stderr, opts)
	}

	a.theme, a.styles = loadTheme(cfg)

	db, err := sqlite.NewDB(sqlite.Config{})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	a.closers = append(a.closers, db)
	a.repo = sqlite.NewTaskRepository(db)

	tasks, err := loadSeed(cfg.SeedFile)
	if err != nil {
		a.Close()
		return nil, err
	}
	if err := repository.Seed(ctx, a.repo, tasks); err != nil {
		a.Close()
		return nil, err
	}

	a.store, err = store.New(ctx, a.repo, a.logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.logger.Debug("app ready", "tasks", len(tasks), "seed", seedName(cfg.SeedFile))
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.logger != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
	a.closers = nil
}

// loadSeed picks the task list: the built-in one, a YAML seed file, or a
// JSON file written by `todolist export`.
func loadSeed(path string) ([]domain.Task, error) {
	if path == "" {
		return repository.DefaultSeed(), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		defer f.Close()

		tasks, err := export.ReadTasks(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed file: %w", err)
		}
		return tasks, nil
	}

	return repository.LoadSeed(path)
}

func seedName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func loadTheme(cfg *config.Config) (*theme.Theme, *theme.Styles) {
	themeObj := theme.Resolve(cfg.ThemeName)
	return themeObj, theme.NewStyles(themeObj)
}
