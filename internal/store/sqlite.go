// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/domain/themes"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

const (
	keyFailedThemes = "failedThemes"
	keyQuizHistory  = "quizHistory"
)

// SQLiteStore keeps each collection as a single JSON document in a kv
// table, replaced whole on every save. The collections are small (theme
// counters and quiz results), so per-row storage would buy nothing.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadFailedThemes(ctx context.Context) (themes.Counts, error) {
	var counts themes.Counts
	if err := s.load(ctx, keyFailedThemes, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *SQLiteStore) SaveFailedThemes(ctx context.Context, counts themes.Counts) error {
	return s.save(ctx, keyFailedThemes, counts)
}

func (s *SQLiteStore) DeleteFailedThemes(ctx context.Context) error {
	return s.delete(ctx, keyFailedThemes)
}

func (s *SQLiteStore) LoadQuizHistory(ctx context.Context) ([]quiz.Result, error) {
	var history []quiz.Result
	if err := s.load(ctx, keyQuizHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *SQLiteStore) SaveQuizHistory(ctx context.Context, history []quiz.Result) error {
	return s.save(ctx, keyQuizHistory, history)
}

func (s *SQLiteStore) DeleteQuizHistory(ctx context.Context) error {
	return s.delete(ctx, keyQuizHistory)
}

func (s *SQLiteStore) load(ctx context.Context, key string, dest any) error {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("corrupt value for key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(encoded),
	)
	return err
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
