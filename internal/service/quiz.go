package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/estuda-ai/backend/internal/domain/performance"
	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/domain/themes"
	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/store"
	"github.com/estuda-ai/backend/internal/worker"
)

// MaxQuestions bounds a single generation request.
const MaxQuestions = 20

var (
	ErrEmptyTopic     = errors.New("topic must not be empty")
	ErrInvalidCount   = errors.New("question count out of range")
	ErrNoReviewTopics = errors.New("no failed themes to review")
	ErrGenerationBusy = errors.New("a generation request is already in flight")
	ErrNoActiveQuiz   = errors.New("no active quiz")
)

// AnswerFeedback is what the user sees after selecting an option.
type AnswerFeedback struct {
	Recorded      bool
	Correct       bool
	Selected      string
	CorrectAnswer string
	Explanation   string
	Completed     bool
	Result        *quiz.Result // set only on the completing submission
}

// QuizService owns the single active quiz session, the failed-theme
// counters and the quiz history. Generation runs outside the lock, so the
// current session stays answerable while a new quiz is being generated.
type QuizService struct {
	store     store.Store
	generator generator.QuestionGenerator
	logger    *slog.Logger
	genSlot   worker.Slot
	now       func() time.Time

	mu      sync.Mutex
	session *quiz.Session
	failed  themes.Counts
	history []quiz.Result
}

// NewQuizService loads the persisted collections. An absent entry starts
// empty. A corrupt entry also starts empty, with a warning: losing stale
// study data beats refusing to boot.
func NewQuizService(ctx context.Context, st store.Store, gen generator.QuestionGenerator, logger *slog.Logger) *QuizService {
	s := &QuizService{
		store:     st,
		generator: gen,
		logger:    logger,
		now:       time.Now,
		failed:    make(themes.Counts),
	}

	failed, err := st.LoadFailedThemes(ctx)
	switch {
	case err == nil:
		s.failed = failed
	case errors.Is(err, store.ErrNotFound):
	default:
		logger.Warn("failed themes unreadable, starting empty", "error", err)
	}

	history, err := st.LoadQuizHistory(ctx)
	switch {
	case err == nil:
		s.history = history
	case errors.Is(err, store.ErrNotFound):
	default:
		logger.Warn("quiz history unreadable, starting empty", "error", err)
	}

	return s
}

// StartQuiz generates a fresh quiz and makes it the active session. On any
// failure the previous session, if one exists, stays active and answerable.
func (s *QuizService) StartQuiz(ctx context.Context, topic string, count int, difficulty quiz.Difficulty, source *generator.SourceDocument) (*quiz.Session, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if count < 1 || count > MaxQuestions {
		return nil, ErrInvalidCount
	}

	questions, err := s.generate(ctx, generator.GenerationRequest{
		Topic:      topic,
		Count:      count,
		Difficulty: difficulty,
		Source:     source,
	})
	if err != nil {
		return nil, err
	}

	session := quiz.NewSession(topic, difficulty, questions)
	snapshot := s.swapSession(session)
	s.logger.Info("quiz started", "session_id", session.ID, "topic", topic, "questions", len(questions))
	return snapshot, nil
}

// StartReview generates a quiz from the failed themes, most-missed first.
// With no tracked themes it fails before any provider call.
func (s *QuizService) StartReview(ctx context.Context, count int, difficulty quiz.Difficulty) (*quiz.Session, error) {
	if count < 1 || count > MaxQuestions {
		return nil, ErrInvalidCount
	}

	s.mu.Lock()
	labels := s.failed.Labels()
	s.mu.Unlock()
	if len(labels) == 0 {
		return nil, ErrNoReviewTopics
	}

	topic := fmt.Sprintf(
		"uma mistura dos seguintes tópicos que o usuário errou anteriormente: %s",
		strings.Join(labels, ", "),
	)

	questions, err := s.generate(ctx, generator.GenerationRequest{
		Topic:      topic,
		Count:      count,
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, err
	}

	session := quiz.NewReviewSession(difficulty, questions)
	snapshot := s.swapSession(session)
	s.logger.Info("review quiz started", "session_id", session.ID, "themes", len(labels), "questions", len(questions))
	return snapshot, nil
}

func (s *QuizService) generate(ctx context.Context, req generator.GenerationRequest) ([]quiz.Question, error) {
	if !s.genSlot.TryAcquire() {
		return nil, ErrGenerationBusy
	}
	defer s.genSlot.Release()

	return s.generator.GenerateQuestions(ctx, req)
}

// swapSession installs the new active session and returns a detached
// snapshot. Callers must never hand out the live session: its Answers map
// is mutated under the mutex by SubmitAnswer.
func (s *QuizService) swapSession(session *quiz.Session) *quiz.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return s.snapshotLocked()
}

// Session returns a snapshot of the active quiz, or ErrNoActiveQuiz.
func (s *QuizService) Session() (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, ErrNoActiveQuiz
	}
	return s.snapshotLocked(), nil
}

func (s *QuizService) snapshotLocked() *quiz.Session {
	copied := *s.session
	copied.Questions = append([]quiz.Question(nil), s.session.Questions...)
	copied.Answers = make(map[int]string, len(s.session.Answers))
	for i, a := range s.session.Answers {
		copied.Answers[i] = a
	}
	return &copied
}

// SubmitAnswer records an answer against the active session. A wrong first
// answer increments the session's miss label; the completing answer
// finalizes the session into a single history entry. Persistence failures
// are logged but never undo the in-memory progress.
func (s *QuizService) SubmitAnswer(ctx context.Context, index int, option string) (AnswerFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return AnswerFeedback{}, ErrNoActiveQuiz
	}

	outcome, err := s.session.SubmitAnswer(index, option)
	if err != nil {
		return AnswerFeedback{}, err
	}

	question := s.session.Questions[index]
	feedback := AnswerFeedback{
		Recorded:      outcome.Recorded,
		Correct:       outcome.Correct,
		Selected:      outcome.Selected,
		CorrectAnswer: question.Answer,
		Explanation:   question.Explanation,
		Completed:     outcome.Completed,
	}

	if outcome.Recorded && !outcome.Correct {
		label := s.session.MissLabel()
		s.failed.RecordMiss(label)
		if err := s.store.SaveFailedThemes(ctx, s.failed); err != nil {
			s.logger.Error("failed to persist failed themes", "error", err)
		}
	}

	if outcome.Completed {
		result := s.session.Finalize(s.now())
		s.history = append(s.history, result)
		if err := s.store.SaveQuizHistory(ctx, s.history); err != nil {
			s.logger.Error("failed to persist quiz history", "error", err)
		}
		feedback.Result = &result
		s.logger.Info("quiz completed",
			"session_id", s.session.ID,
			"topic", result.Topic,
			"correct", result.Correct,
			"total", result.Total,
		)
	}

	return feedback, nil
}

// FailedThemes lists the tracked themes, most-missed first.
func (s *QuizService) FailedThemes() []themes.ThemeCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed.ListForReview()
}

// ClearFailedThemes drops the counters in memory and in the store. An
// already-absent store entry is not an error.
func (s *QuizService) ClearFailedThemes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failed = make(themes.Counts)
	if err := s.store.DeleteFailedThemes(ctx); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// History returns the finished quizzes in completion order.
func (s *QuizService) History() []quiz.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quiz.Result(nil), s.history...)
}

// ClearHistory drops the quiz history in memory and in the store.
func (s *QuizService) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	if err := s.store.DeleteQuizHistory(ctx); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// Performance aggregates the history into per-subject buckets.
func (s *QuizService) Performance() []performance.SubjectBucket {
	s.mu.Lock()
	history := append([]quiz.Result(nil), s.history...)
	s.mu.Unlock()
	return performance.Aggregate(history)
}
