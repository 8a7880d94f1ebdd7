package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/domain/themes"
	"github.com/estuda-ai/backend/internal/gate"
	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/service"
	"github.com/estuda-ai/backend/internal/store"
)

const testPassword = "segredo"

type stubGenerator struct {
	questions []quiz.Question
	err       error
}

func (s *stubGenerator) GenerateQuestions(context.Context, generator.GenerationRequest) ([]quiz.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

func (s *stubGenerator) AnswerDoubt(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "A fotossíntese converte luz em energia química.", nil
}

// memStore is an in-memory store.Store for handler tests.
type memStore struct {
	failed  themes.Counts
	history []quiz.Result
}

func (m *memStore) LoadFailedThemes(context.Context) (themes.Counts, error) {
	if m.failed == nil {
		return nil, store.ErrNotFound
	}
	return m.failed, nil
}

func (m *memStore) SaveFailedThemes(_ context.Context, c themes.Counts) error {
	m.failed = c
	return nil
}

func (m *memStore) DeleteFailedThemes(context.Context) error {
	m.failed = nil
	return nil
}

func (m *memStore) LoadQuizHistory(context.Context) ([]quiz.Result, error) {
	if m.history == nil {
		return nil, store.ErrNotFound
	}
	return m.history, nil
}

func (m *memStore) SaveQuizHistory(_ context.Context, h []quiz.Result) error {
	m.history = h
	return nil
}

func (m *memStore) DeleteQuizHistory(context.Context) error {
	m.history = nil
	return nil
}

func (m *memStore) Close() error { return nil }

func newTestServer(t *testing.T, gen *stubGenerator) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	quizSvc := service.NewQuizService(context.Background(), &memStore{}, gen, logger)
	chatSvc := service.NewChatService(gen, logger)
	accessGate := gate.New(testPassword, 10, time.Minute)
	handler := NewHandler(quizSvc, chatSvc, accessGate, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loginToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"password":"`+testPassword+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	var body LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body.Token
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, srv.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func apiQuestions() []quiz.Question {
	return []quiz.Question{
		{Question: "Qual gás as plantas liberam?", Options: []string{"Oxigênio", "Metano", "Hélio", "CO2"}, Answer: "Oxigênio", Explanation: "A fotossíntese libera oxigênio."},
		{Question: "Onde ocorre a fotossíntese?", Options: []string{"Núcleo", "Cloroplasto", "Ribossomo", "Vacúolo"}, Answer: "Cloroplasto", Explanation: "Nos cloroplastos."},
	}
}

func TestLogin_WrongPasswordThenLockout(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{})

	var last *http.Response
	for i := 0; i < 9; i++ {
		last = doJSON(t, srv, http.MethodPost, "/auth/login", "", LoginRequest{Password: "errada"})
		if last.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, last.StatusCode)
		}
	}

	var failed LoginFailedResponse
	json.NewDecoder(last.Body).Decode(&failed)
	if failed.RemainingAttempts != 1 {
		t.Errorf("expected 1 remaining attempt, got %d", failed.RemainingAttempts)
	}

	locked := doJSON(t, srv, http.MethodPost, "/auth/login", "", LoginRequest{Password: "errada"})
	if locked.StatusCode != http.StatusLocked {
		t.Fatalf("expected 423 on the last attempt, got %d", locked.StatusCode)
	}
	var lockBody LoginLockedResponse
	json.NewDecoder(locked.Body).Decode(&lockBody)
	if lockBody.RetryInSeconds != 60 {
		t.Errorf("expected 60s retry window, got %d", lockBody.RetryInSeconds)
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{questions: apiQuestions()})

	resp := doJSON(t, srv, http.MethodGet, "/themes", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp = doJSON(t, srv, http.MethodGet, "/themes", "token-falso", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bogus token, got %d", resp.StatusCode)
	}
}

func TestQuizFlow(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{questions: apiQuestions()})
	token := loginToken(t, srv)

	resp := doJSON(t, srv, http.MethodPost, "/quiz", token, StartQuizRequest{
		Topic: "Fotossíntese", NumQuestions: 2, Difficulty: "Médio",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created QuizResponse
	json.NewDecoder(resp.Body).Decode(&created)
	if len(created.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(created.Questions))
	}
	// Fresh quiz must not leak answers or explanations.
	for _, q := range created.Questions {
		if q.Answer != "" || q.Explanation != "" || q.Answered {
			t.Errorf("unanswered question leaked answer data: %+v", q)
		}
	}

	// Wrong answer: full feedback comes back.
	resp = doJSON(t, srv, http.MethodPost, "/quiz/answers", token, SubmitAnswerRequest{QuestionIndex: 0, Option: "Metano"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var feedback SubmitAnswerResponse
	json.NewDecoder(resp.Body).Decode(&feedback)
	if feedback.Correct || feedback.CorrectAnswer != "Oxigênio" || feedback.Result != nil {
		t.Errorf("unexpected feedback %+v", feedback)
	}

	// The miss lands on the quiz topic.
	resp = doJSON(t, srv, http.MethodGet, "/themes", token, nil)
	var listed []ThemeResponse
	json.NewDecoder(resp.Body).Decode(&listed)
	if len(listed) != 1 || listed[0].Label != "Fotossíntese" {
		t.Errorf("unexpected themes %v", listed)
	}

	// Completing answer carries the result.
	resp = doJSON(t, srv, http.MethodPost, "/quiz/answers", token, SubmitAnswerRequest{QuestionIndex: 1, Option: "Cloroplasto"})
	json.NewDecoder(resp.Body).Decode(&feedback)
	if !feedback.Completed || feedback.Result == nil {
		t.Fatalf("expected completion with result, got %+v", feedback)
	}
	if feedback.Result.Correct != 1 || feedback.Result.Total != 2 {
		t.Errorf("unexpected result %+v", feedback.Result)
	}

	// Answered questions now expose their answers on GET /quiz.
	resp = doJSON(t, srv, http.MethodGet, "/quiz", token, nil)
	var current QuizResponse
	json.NewDecoder(resp.Body).Decode(&current)
	if !current.Completed || !current.Questions[0].Answered || current.Questions[0].Answer != "Oxigênio" {
		t.Errorf("unexpected quiz state %+v", current)
	}
}

func TestStartReview_WithoutThemes(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{questions: apiQuestions()})
	token := loginToken(t, srv)

	resp := doJSON(t, srv, http.MethodPost, "/quiz/review", token, StartReviewRequest{NumQuestions: 2})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] != "Não há temas para revisar." {
		t.Errorf("unexpected error message %q", body["error"])
	}
}

func TestStartQuiz_ProviderFailure(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{err: &generator.GenerationError{
		Reason:  "request failed",
		Wrapped: errors.New("API key not valid"),
	}})
	token := loginToken(t, srv)

	resp := doJSON(t, srv, http.MethodPost, "/quiz", token, StartQuizRequest{
		Topic: "Células", NumQuestions: 2,
	})
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}

	// Only the provider's own message follows the prefix; the English
	// wrapper chain stays out of the user-facing text.
	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] != "Falha ao se comunicar com a API: API key not valid" {
		t.Errorf("unexpected error message %q", body["error"])
	}
	if strings.Contains(body["error"], "generation failed") {
		t.Errorf("wrapper text leaked into the user message: %q", body["error"])
	}
}

func TestChatAndExport(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{questions: apiQuestions()})
	token := loginToken(t, srv)

	resp := doJSON(t, srv, http.MethodPost, "/chat", token, SendDoubtRequest{Question: "O que é fotossíntese?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, srv, http.MethodGet, "/export", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	disposition := resp.Header.Get("Content-Disposition")
	today := time.Now().Format("2006-01-02")
	if disposition != "attachment; filename=progresso-estudos-"+today+".json" {
		t.Errorf("unexpected disposition %q", disposition)
	}

	var bundle ExportBundle
	json.NewDecoder(resp.Body).Decode(&bundle)
	if len(bundle.ChatHistory) != 2 {
		t.Errorf("expected the chat exchange in the export, got %d turns", len(bundle.ChatHistory))
	}
	if bundle.QuizHistory == nil || bundle.FailedThemes == nil {
		t.Error("expected empty collections to export as empty, not null")
	}
}
