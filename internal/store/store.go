package store

import (
	"context"
	"errors"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/domain/themes"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists the two study collections that must survive a restart:
// the per-theme miss counters and the finished-quiz history. Each
// collection is written whole on every save.
type Store interface {
	LoadFailedThemes(ctx context.Context) (themes.Counts, error)
	SaveFailedThemes(ctx context.Context, counts themes.Counts) error
	DeleteFailedThemes(ctx context.Context) error

	LoadQuizHistory(ctx context.Context) ([]quiz.Result, error)
	SaveQuizHistory(ctx context.Context, history []quiz.Result) error
	DeleteQuizHistory(ctx context.Context) error

	Close() error
}
