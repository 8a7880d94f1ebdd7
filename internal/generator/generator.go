package generator

import (
	"context"
	"fmt"

	"github.com/estuda-ai/backend/internal/domain/quiz"
)

// SourceDocument is an optional attachment the questions must be drawn from.
type SourceDocument struct {
	MIMEType string
	Data     []byte
}

// GenerationRequest describes one question-generation call.
type GenerationRequest struct {
	Topic      string
	Count      int
	Difficulty quiz.Difficulty
	Source     *SourceDocument
}

// QuestionGenerator produces multiple-choice questions for a topic.
// Implementations call an AI provider or return canned questions (for tests).
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req GenerationRequest) ([]quiz.Question, error)
}

// DoubtAnswerer answers a free-text student question. Each call is
// independent: no prior turns are submitted as context.
type DoubtAnswerer interface {
	AnswerDoubt(ctx context.Context, doubt string) (string, error)
}

// GenerationError is returned when the provider or the transport fails. The
// underlying message is surfaced to the user as-is.
type GenerationError struct {
	Reason  string
	Wrapped error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}

// MalformedResponseError is returned when the provider replied but the
// payload does not match the expected question shape.
type MalformedResponseError struct {
	Reason  string
	Wrapped error
}

func (e *MalformedResponseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("malformed generation response: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("malformed generation response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Wrapped
}
