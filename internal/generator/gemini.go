package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/estuda-ai/backend/internal/domain/quiz"
)

// tutorPersona is the fixed system instruction for the doubts chat.
const tutorPersona = "Você é um tutor amigável e especialista em diversas áreas do conhecimento. " +
	"Sua missão é ajudar os estudantes a entenderem conceitos complexos."

// questionSchema constrains generation output to a JSON array of
// question objects, so the model cannot wander off into prose.
var questionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {
				Type:        genai.TypeString,
				Description: "O texto da pergunta gerada.",
			},
			"options": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Uma lista de 4 opções de resposta para a pergunta.",
			},
			"answer": {
				Type:        genai.TypeString,
				Description: "O texto exato da resposta correta, que deve corresponder a uma das opções.",
			},
			"explanation": {
				Type:        genai.TypeString,
				Description: "Uma breve explicação do porquê a resposta está correta.",
			},
		},
		Required: []string{"question", "options", "answer", "explanation"},
	},
}

// GeminiClient generates quiz questions and answers student doubts through
// the Gemini API. It satisfies both QuestionGenerator and DoubtAnswerer.
type GeminiClient struct {
	client    *genai.Client
	questions *genai.GenerativeModel
	tutor     *genai.GenerativeModel
	logger    *slog.Logger
}

var (
	_ QuestionGenerator = (*GeminiClient)(nil)
	_ DoubtAnswerer     = (*GeminiClient)(nil)
)

// NewGeminiClient creates a client for the given model, e.g. "gemini-2.5-flash".
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	questions := client.GenerativeModel(model)
	questions.ResponseMIMEType = "application/json"
	questions.ResponseSchema = questionSchema

	tutor := client.GenerativeModel(model)
	tutor.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(tutorPersona)},
	}

	return &GeminiClient{
		client:    client,
		questions: questions,
		tutor:     tutor,
		logger:    logger,
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// GenerateQuestions makes a single attempt against the provider: no retry,
// no caching. Transport and provider failures come back as *GenerationError,
// unparseable or empty payloads as *MalformedResponseError.
func (c *GeminiClient) GenerateQuestions(ctx context.Context, req GenerationRequest) ([]quiz.Question, error) {
	parts := []genai.Part{genai.Text(buildQuestionPrompt(req))}
	if req.Source != nil {
		parts = append(parts, genai.Blob{
			MIMEType: req.Source.MIMEType,
			Data:     req.Source.Data,
		})
	}

	resp, err := c.questions.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, &GenerationError{Reason: "request failed", Wrapped: err}
	}

	questions, err := parseQuestions(responseText(resp))
	if err != nil {
		return nil, err
	}

	// An answer that matches no option is a data-quality defect worth
	// logging, but the quiz is still playable.
	for i, q := range questions {
		if !q.HasMatchingAnswer() {
			c.logger.Warn("generated answer matches no option",
				"topic", req.Topic,
				"question_index", i,
			)
		}
	}

	return questions, nil
}

// AnswerDoubt sends one free-text question under the tutor persona.
func (c *GeminiClient) AnswerDoubt(ctx context.Context, doubt string) (string, error) {
	prompt := fmt.Sprintf("Responda a seguinte dúvida de um estudante de forma clara e didática: %q", doubt)

	resp, err := c.tutor.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Reason: "request failed", Wrapped: err}
	}

	answer := responseText(resp)
	if strings.TrimSpace(answer) == "" {
		return "", &GenerationError{Reason: "provider returned empty content"}
	}
	return answer, nil
}

// buildQuestionPrompt embeds topic, count and difficulty; with a source
// document attached it requires the questions to derive strictly from it.
func buildQuestionPrompt(req GenerationRequest) string {
	prompt := fmt.Sprintf(
		"Gere %d questões de múltipla escolha de nível %s sobre o tópico %q. "+
			"Cada questão deve ter 4 opções, uma resposta correta clara que esteja entre as opções, "+
			"e uma breve explicação do porquê a resposta está correta.",
		req.Count, req.Difficulty, req.Topic,
	)
	if req.Source != nil {
		prompt += "\n\nPor favor, baseie as questões estritamente no conteúdo do documento fornecido."
	}
	return prompt
}

// parseQuestions decodes the provider payload and rejects anything that is
// not a non-empty question array.
func parseQuestions(payload string) ([]quiz.Question, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, &MalformedResponseError{Reason: "empty payload"}
	}

	var questions []quiz.Question
	if err := json.Unmarshal([]byte(trimmed), &questions); err != nil {
		return nil, &MalformedResponseError{Reason: "payload is not a question array", Wrapped: err}
	}
	if len(questions) == 0 {
		return nil, &MalformedResponseError{Reason: "question array is empty"}
	}
	return questions, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
