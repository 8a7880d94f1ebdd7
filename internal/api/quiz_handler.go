// internal/api/quiz_handler.go
package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/estuda-ai/backend/internal/domain/quiz"
	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SourceFile struct {
	MIMEType string `json:"mime_type" example:"application/pdf"`
	Data     string `json:"data"` // base64
}

type StartQuizRequest struct {
	Topic        string      `json:"topic" example:"Fotossíntese"`
	NumQuestions int         `json:"num_questions" example:"5"`
	Difficulty   string      `json:"difficulty" example:"Médio"`
	SourceFile   *SourceFile `json:"source_file,omitempty"`
}

func (r StartQuizRequest) Validate() error {
	if r.NumQuestions < 1 || r.NumQuestions > service.MaxQuestions {
		return errors.New("num_questions must be between 1 and 20")
	}
	if r.SourceFile != nil && r.SourceFile.MIMEType == "" {
		return errors.New("source_file.mime_type is required")
	}
	return nil
}

type StartReviewRequest struct {
	NumQuestions int    `json:"num_questions" example:"5"`
	Difficulty   string `json:"difficulty" example:"Médio"`
}

func (r StartReviewRequest) Validate() error {
	if r.NumQuestions < 1 || r.NumQuestions > service.MaxQuestions {
		return errors.New("num_questions must be between 1 and 20")
	}
	return nil
}

// QuizQuestion is one question as shown to the player. The correct answer
// and the explanation appear only after the question has been answered.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answered    bool     `json:"answered"`
	Selected    string   `json:"selected,omitempty"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

type QuizResponse struct {
	ID         string         `json:"id"`
	Topic      string         `json:"topic"`
	Mode       string         `json:"mode"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
	Completed  bool           `json:"completed"`
}

type SubmitAnswerRequest struct {
	QuestionIndex int    `json:"question_index"`
	Option        string `json:"selected_option"`
}

func (r SubmitAnswerRequest) Validate() error {
	if r.Option == "" {
		return errors.New("selected_option is required")
	}
	return nil
}

type SubmitAnswerResponse struct {
	Recorded      bool         `json:"recorded"`
	Correct       bool         `json:"correct"`
	Selected      string       `json:"selected"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation"`
	Completed     bool         `json:"completed"`
	Result        *quiz.Result `json:"result,omitempty"`
}

func quizResponse(s *quiz.Session) QuizResponse {
	questions := make([]QuizQuestion, len(s.Questions))
	for i, q := range s.Questions {
		view := QuizQuestion{
			Question: q.Question,
			Options:  q.Options,
		}
		if selected, answered := s.Answers[i]; answered {
			view.Answered = true
			view.Selected = selected
			view.Answer = q.Answer
			view.Explanation = q.Explanation
		}
		questions[i] = view
	}

	return QuizResponse{
		ID:         s.ID,
		Topic:      s.Topic,
		Mode:       string(s.Mode),
		Difficulty: string(s.Difficulty),
		Questions:  questions,
		Completed:  s.Complete(),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startQuiz generates a new quiz and makes it the active one.
// @Summary      Start a quiz
// @Description  Generate a multiple-choice quiz about a topic, optionally grounded in an attached document.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      StartQuizRequest  true  "Quiz parameters"
// @Success      201   {object}  QuizResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "a generation request is already in flight"
// @Failure      502   {object}  map[string]string  "provider failure"
// @Router       /quiz [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Dificuldade inválida.")
		return
	}

	var source *generator.SourceDocument
	if req.SourceFile != nil {
		data, err := base64.StdEncoding.DecodeString(req.SourceFile.Data)
		if err != nil {
			respondError(w, http.StatusBadRequest, "source_file.data is not valid base64")
			return
		}
		source = &generator.SourceDocument{MIMEType: req.SourceFile.MIMEType, Data: data}
	}

	session, err := h.quiz.StartQuiz(r.Context(), req.Topic, req.NumQuestions, difficulty, source)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, quizResponse(session))
}

// startReview generates a quiz from the user's failed themes.
// @Summary      Start a review quiz
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      StartReviewRequest  true  "Review parameters"
// @Success      201   {object}  QuizResponse
// @Failure      400   {object}  map[string]string  "no failed themes to review"
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /quiz/review [post]
func (h *Handler) startReview(w http.ResponseWriter, r *http.Request) {
	var req StartReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Dificuldade inválida.")
		return
	}

	session, err := h.quiz.StartReview(r.Context(), req.NumQuestions, difficulty)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, quizResponse(session))
}

// getQuiz returns the active quiz.
// @Summary      Get the active quiz
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuizResponse
// @Failure      404  {object}  map[string]string  "no active quiz"
// @Router       /quiz [get]
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Session()
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, quizResponse(session))
}

// submitAnswer records an answer for one question of the active quiz.
// @Summary      Answer a question
// @Description  Records the selected option. The first answer per question is final; the completing answer carries the quiz result.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Selected option"
// @Success      200   {object}  SubmitAnswerResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "no active quiz"
// @Router       /quiz/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	feedback, err := h.quiz.SubmitAnswer(r.Context(), req.QuestionIndex, req.Option)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Recorded:      feedback.Recorded,
		Correct:       feedback.Correct,
		Selected:      feedback.Selected,
		CorrectAnswer: feedback.CorrectAnswer,
		Explanation:   feedback.Explanation,
		Completed:     feedback.Completed,
		Result:        feedback.Result,
	})
}
