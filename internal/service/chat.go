package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/worker"
)

var (
	ErrEmptyDoubt = errors.New("doubt must not be empty")
	ErrChatBusy   = errors.New("a chat request is already in flight")
)

// ChatMessage is one turn of the doubts chat.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// ChatService keeps the in-memory transcript of the doubts chat. The
// transcript is display state only: each provider call carries just the
// current doubt, never the prior turns.
type ChatService struct {
	tutor  generator.DoubtAnswerer
	logger *slog.Logger
	slot   worker.Slot

	mu         sync.Mutex
	transcript []ChatMessage
}

func NewChatService(tutor generator.DoubtAnswerer, logger *slog.Logger) *ChatService {
	return &ChatService{tutor: tutor, logger: logger}
}

// AnswerDoubt appends the user turn, asks the tutor, and appends the model
// turn. On failure the dangling user turn is rolled back so the transcript
// only ever holds completed exchanges.
func (s *ChatService) AnswerDoubt(ctx context.Context, doubt string) (ChatMessage, error) {
	doubt = strings.TrimSpace(doubt)
	if doubt == "" {
		return ChatMessage{}, ErrEmptyDoubt
	}

	if !s.slot.TryAcquire() {
		return ChatMessage{}, ErrChatBusy
	}
	defer s.slot.Release()

	s.mu.Lock()
	s.transcript = append(s.transcript, ChatMessage{Role: "user", Content: doubt})
	userIndex := len(s.transcript) - 1
	s.mu.Unlock()

	answer, err := s.tutor.AnswerDoubt(ctx, doubt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.transcript = s.transcript[:userIndex]
		return ChatMessage{}, err
	}

	reply := ChatMessage{Role: "model", Content: answer}
	s.transcript = append(s.transcript, reply)
	return reply, nil
}

// Transcript returns a copy of the chat so far.
func (s *ChatService) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatMessage(nil), s.transcript...)
}
