package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/AlienHub/file-organizer/internal/organizer"
)

// Entry is one executed operation as persisted in the journal.
type Entry struct {
	ID         int64     `db:"id"`
	RuleName   string    `db:"rule_name"`
	Kind       string    `db:"kind"`
	Source     string    `db:"source"`
	Detail     string    `db:"detail"`
	Succeeded  bool      `db:"succeeded"`
	Error      string    `db:"error"`
	ExecutedAt time.Time `db:"executed_at"`
}

// Interface defines journal operations so commands and the executor
// can be tested against a mock.
type Interface interface {
	Init() error
	Record(res organizer.Result) error
	Recent(limit int) ([]Entry, error)
	Close() error
}

// Journal implements Interface on a SQLite database.
type Journal struct {
	db   *sqlx.DB
	path string
}

// New creates a Journal backed by the database file at path. If dbConn
// is non-nil (tests), it is used instead of opening the file.
func New(path string, dbConn *sqlx.DB) *Journal {
	return &Journal{db: dbConn, path: path}
}

// Init opens the database and creates the operations table.
func (j *Journal) Init() error {
	if j.db == nil {
		if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
			return fmt.Errorf("failed to create journal directory: %w", err)
		}

		dbConn, err := sqlx.Connect("sqlite3", j.path)
		if err != nil {
			return fmt.Errorf("failed to connect to journal database: %w", err)
		}
		j.db = dbConn
	}

	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		rule_name TEXT NOT NULL,
		kind TEXT NOT NULL,
		source TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		succeeded BOOLEAN NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		executed_at TIMESTAMP NOT NULL
	);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create operations table: %w", err)
	}

	return nil
}

// Record persists one operation result.
func (j *Journal) Record(res organizer.Result) error {
	op := res.Operation
	query := `
	INSERT INTO operations (rule_name, kind, source, detail, succeeded, error, executed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err := j.db.Exec(query,
		op.RuleName, string(op.Kind), op.Source, op.Describe(),
		op.Succeeded, op.Err, res.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to record operation: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	query := "SELECT * FROM operations ORDER BY executed_at DESC, id DESC LIMIT ?"
	if err := j.db.Select(&entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}
