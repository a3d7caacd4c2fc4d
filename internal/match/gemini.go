package match

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
	"github.com/shag-platform/shag-api/pkg/logger"
)

const promptTemplate = `У нас есть список наставников для платформы ШАГ:
%s

Пользователь говорит: "%s"

Найди одного наиболее подходящего наставника и объясни почему одним коротким предложением. Верни только JSON в формате: {"id": "ID наставника", "reason": "почему подходит"}.`

// GeminiEngine asks the Gemini API for a mentor recommendation in strict
// JSON mode.
type GeminiEngine struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiEngine builds a match engine backed by the Gemini API.
func NewGeminiEngine(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiEngine{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// BestMatch sends the mentor roster and the user request to the model and
// parses its JSON verdict. Failures of the external call or unparseable
// content map to ErrMatchFailed.
func (e *GeminiEngine) BestMatch(ctx context.Context, query string, mentors []models.Mentor) (*Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := buildPrompt(query, mentors)

	temperature := float32(0.2)
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":     {Type: genai.TypeString},
				"reason": {Type: genai.TypeString},
			},
			Required: []string{"id", "reason"},
		},
	}

	start := time.Now()
	resp, err := e.client.Models.GenerateContent(ctx, e.model, []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}, genConfig)
	if err != nil {
		logger.Error("Gemini match call failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, apperrors.MatchFailedError("gemini call failed", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, apperrors.MatchFailedError("empty model response", nil)
	}

	rec, err := parseRecommendation(text)
	if err != nil {
		logger.Warn("Unparseable match verdict",
			zap.String("model", e.model),
			zap.Int("response_length", len(text)),
		)
		return nil, err
	}

	logger.Debug("Match verdict received",
		zap.String("mentor_id", rec.ID),
		zap.Duration("duration", time.Since(start)),
	)
	return rec, nil
}

// buildPrompt renders the roster context and the user request into the
// model prompt.
func buildPrompt(query string, mentors []models.Mentor) string {
	lines := make([]string, 0, len(mentors))
	for _, m := range mentors {
		lines = append(lines, fmt.Sprintf("ID: %s, Имя: %s, Индустрия: %s, Описание: %s, Ценности: %s",
			m.ID, m.Name, m.Industry, m.Description, strings.Join(m.Values, ", ")))
	}
	return fmt.Sprintf(promptTemplate, strings.Join(lines, "\n"), query)
}

// parseRecommendation unmarshals the model verdict, tolerating markdown
// code fences some models wrap JSON in despite JSON mode.
func parseRecommendation(text string) (*Recommendation, error) {
	cleaned := stripCodeFences(text)

	var rec Recommendation
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return nil, apperrors.MatchFailedError("invalid verdict json", err)
	}
	if rec.ID == "" {
		return nil, apperrors.MatchFailedError("verdict missing mentor id", nil)
	}
	return &rec, nil
}

func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}
