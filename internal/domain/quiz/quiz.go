package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/estuda-ai/backend/internal/id"
)

// ReviewLabel tags quizzes generated from previously missed topics. Misses
// made during such a quiz are attributed to this label, never to the
// underlying mixed topics.
const ReviewLabel = "Revisão Geral"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Fácil"
	DifficultyMedium Difficulty = "Médio"
	DifficultyHard   Difficulty = "Difícil"
)

// ParseDifficulty validates a user-supplied difficulty label. An empty
// string defaults to medium, matching the original form default.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	case "":
		return DifficultyMedium, nil
	}
	return "", fmt.Errorf("invalid difficulty %q", s)
}

// Mode distinguishes a regular topic quiz from a review quiz. Review state
// is an explicit tag rather than a comparison against the topic label, so a
// user typing "Revisão Geral" as a topic does not flip the session into
// review mode.
type Mode string

const (
	ModeTopic  Mode = "topic"
	ModeReview Mode = "review"
)

// Question is one multiple-choice question as returned by the generator.
// Immutable once received.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// HasMatchingAnswer reports whether the answer text equals one of the
// options. Comparison is exact: no trimming, no case folding.
func (q Question) HasMatchingAnswer() bool {
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}

// Result is the outcome of one completed quiz. Created exactly once, when
// the last unanswered question receives an answer, and never mutated.
type Result struct {
	Topic   string `json:"topic"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Date    string `json:"date"` // RFC 3339
}

var ErrIndexOutOfRange = errors.New("question index out of range")

// Session holds the one active quiz: its questions, the user's answers so
// far, and the label misses are attributed to.
type Session struct {
	ID         string
	Topic      string
	Mode       Mode
	Difficulty Difficulty
	Questions  []Question
	Answers    map[int]string // question index → selected option
}

func NewSession(topic string, difficulty Difficulty, questions []Question) *Session {
	return &Session{
		ID:         id.GenerateID(),
		Topic:      topic,
		Mode:       ModeTopic,
		Difficulty: difficulty,
		Questions:  questions,
		Answers:    make(map[int]string),
	}
}

// NewReviewSession tags the quiz with the review label.
func NewReviewSession(difficulty Difficulty, questions []Question) *Session {
	s := NewSession(ReviewLabel, difficulty, questions)
	s.Mode = ModeReview
	return s
}

// AnswerOutcome reports what recording a single answer did.
type AnswerOutcome struct {
	Recorded  bool   // false when the index was already answered
	Selected  string // the option that counts: the first one ever submitted
	Correct   bool   // whether Selected equals the correct answer
	Completed bool   // true only on the submission that answered the last open question
}

// SubmitAnswer records the selected option for a question. The first answer
// is final: re-submissions return the originally recorded option and do not
// change state. Completed is set when the count of recorded answers reaches
// the question count.
func (s *Session) SubmitAnswer(index int, option string) (AnswerOutcome, error) {
	if index < 0 || index >= len(s.Questions) {
		return AnswerOutcome{}, ErrIndexOutOfRange
	}

	if prior, answered := s.Answers[index]; answered {
		return AnswerOutcome{
			Recorded: false,
			Selected: prior,
			Correct:  prior == s.Questions[index].Answer,
		}, nil
	}

	s.Answers[index] = option
	return AnswerOutcome{
		Recorded:  true,
		Selected:  option,
		Correct:   option == s.Questions[index].Answer,
		Completed: len(s.Answers) == len(s.Questions),
	}, nil
}

// MissLabel is the topic misses are counted under: the review label verbatim
// in review mode, otherwise the quiz topic.
func (s *Session) MissLabel() string {
	if s.Mode == ModeReview {
		return ReviewLabel
	}
	return s.Topic
}

func (s *Session) Complete() bool {
	return len(s.Questions) > 0 && len(s.Answers) == len(s.Questions)
}

// CorrectCount counts answered indices whose recorded option equals the
// question's answer, by exact string equality.
func (s *Session) CorrectCount() int {
	correct := 0
	for i, q := range s.Questions {
		if s.Answers[i] == q.Answer {
			correct++
		}
	}
	return correct
}

// Finalize builds the quiz result. Call only once, when the session is
// complete.
func (s *Session) Finalize(now time.Time) Result {
	return Result{
		Topic:   s.Topic,
		Correct: s.CorrectCount(),
		Total:   len(s.Questions),
		Date:    now.UTC().Format(time.RFC3339),
	}
}
