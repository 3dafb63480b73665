package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath keeps the whole database inside the process.
const MemoryPath = ":memory:"

type DB struct {
	*sqlx.DB
}

type Config struct {
	Path string
}

// creates a new in-memory db conn & runs migrations
func NewDB(cfg Config) (*DB, error) {
	if cfg.Path == "" {
		cfg.Path = MemoryPath
	}
	if cfg.Path != MemoryPath {
		return nil, fmt.Errorf("unsupported database path %q: tasks are kept in memory only", cfg.Path)
	}

	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every pooled connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{DB: db}, nil
}

// executes db schema
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY,
		task_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'NOT_STARTED',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		importance TEXT NOT NULL DEFAULT 'none',

		CHECK(length(task_name) <= 200),
		CHECK(status IN ('NOT_STARTED', 'ONGOING', 'FINISHED')),
		CHECK(importance IN ('high', 'low', 'none')),
		CHECK(length(created_at) = 10),
		CHECK(length(updated_at) = 10)
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_importance ON tasks(importance);
	CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
