package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// connPragmas are applied by the driver to every new connection.
var connPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
}

// dsn builds the driver connection string for path with connPragmas attached.
// The path stays a plain filename (no file: URI) so it needs no escaping.
func dsn(path string) string {
	params := make([]string, 0, len(connPragmas))
	for _, p := range connPragmas {
		params = append(params, "_pragma="+p)
	}
	return path + "?" + strings.Join(params, "&")
}

// InitDB opens the SQLite file, applies migrations and seeds the default prompts.
// The returned handle is ready to serve traffic.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open opens/creates a SQLite DB file and applies connection pragmas.
// Missing parent directories are created.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir %q: %w", dir, err)
		}
	}

	db, err := sql.Open(sqliteDriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    name TEXT,
    email TEXT,
    address TEXT,
    date_of_birth TEXT
);
`

const schemaQuestions = `
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    prompt TEXT NOT NULL,
    image_url TEXT,
    additional_info TEXT
);
`

const schemaAnswers = `
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    question_id INTEGER NOT NULL,
    answer INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(user_id, question_id),
    FOREIGN KEY(question_id) REFERENCES questions(id) ON DELETE CASCADE
);
`

const schemaAnswersIndex = `
CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);
`

const schemaContacts = `
CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL
);
`

// Migrate creates all tables. Safe to call multiple times.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaQuestions,
		schemaAnswers,
		schemaAnswersIndex,
		schemaContacts,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// DefaultPrompts are inserted when the questions table is empty.
var DefaultPrompts = []string{
	"Do you enjoy outdoor activities?",
	"Are you interested in volunteering weekly?",
	"Do you prefer group events over solo tasks?",
}

const (
	countQuestionsSQL = `SELECT COUNT(*) FROM questions`
	seedQuestionSQL   = `INSERT INTO questions (prompt, image_url) VALUES (?, NULL)`
)

// SeedDefaults inserts DefaultPrompts if no question exists yet and reports
// how many rows were added.
func SeedDefaults(ctx context.Context, db *sql.DB) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int
	if err := tx.QueryRowContext(ctx, countQuestionsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, prompt := range DefaultPrompts {
		if _, err := tx.ExecContext(ctx, seedQuestionSQL, prompt); err != nil {
			return 0, fmt.Errorf("seed question %q: %w", prompt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return len(DefaultPrompts), nil
}
