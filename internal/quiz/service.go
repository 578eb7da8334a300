package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/genai"
	"github.com/studybuddy/platform/internal/metrics"
)

// Generator is the external generation capability. A nil Generator means
// the capability is not configured and every quiz is a deterministic
// fallback set.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces validated MCQ sets. It never returns an error: any
// capability or parse failure degrades to the deterministic fallback.
type Service struct {
	gen    Generator
	logger zerolog.Logger
}

func NewService(gen Generator, logger zerolog.Logger) *Service {
	return &Service{
		gen:    gen,
		logger: logger.With().Str("component", "quiz_generator").Logger(),
	}
}

// Generate returns a best-effort set of MCQs for a subject. The AI path may
// return fewer than count items when validation drops some; the fallback
// always returns exactly count.
func (s *Service) Generate(ctx context.Context, subject string, count int, difficulty string) []MCQ {
	if difficulty == "" {
		difficulty = DifficultyMedium
	}

	if s.gen == nil {
		return s.fallback(subject, count)
	}

	raw, err := s.gen.Generate(ctx, buildPrompt(subject, count, difficulty))
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("quiz", "error").Inc()
		s.logger.Warn().Err(err).Str("subject", subject).Msg("mcq generation failed")
		return s.fallback(subject, count)
	}
	metrics.GenerationCalls.WithLabelValues("quiz", "ok").Inc()

	mcqs, err := parseMCQs(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("subject", subject).Msg("mcq output rejected")
		return s.fallback(subject, count)
	}
	return mcqs
}

func parseMCQs(raw string) ([]MCQ, error) {
	arr, err := genai.ExtractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var parsed []MCQ
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		return nil, fmt.Errorf("decode mcq array: %w", err)
	}

	validated := make([]MCQ, 0, len(parsed))
	for _, q := range parsed {
		if !q.valid() {
			continue
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		q.Source = "ai"
		validated = append(validated, q)
	}

	if len(validated) == 0 {
		return nil, fmt.Errorf("all mcqs failed validation")
	}
	return validated, nil
}

// fallback synthesizes count placeholder questions. This path never fails.
func (s *Service) fallback(subject string, count int) []MCQ {
	metrics.Fallbacks.WithLabelValues("quiz").Inc()

	mcqs := make([]MCQ, 0, count)
	for i := 0; i < count; i++ {
		mcqs = append(mcqs, MCQ{
			ID:       uuid.NewString(),
			Question: fmt.Sprintf("Sample %s question %d?", subject, i+1),
			Options:  []string{"Option A", "Option B", "Option C", "Option D"},
			Answer:   "Option A",
			Source:   "fallback",
		})
	}
	return mcqs
}

func buildPrompt(subject string, count int, difficulty string) string {
	b := strings.Builder{}
	b.WriteString("You are an expert exam question setter.\n\n")
	fmt.Fprintf(&b, "Generate %d %s difficulty multiple-choice questions\n", count, difficulty)
	fmt.Fprintf(&b, "for a quiz on the subject: %s.\n\n", subject)
	b.WriteString("STRICT RULES:\n")
	b.WriteString("- EXACTLY 4 options per question\n")
	b.WriteString("- Answer MUST be one of the options\n")
	b.WriteString("- No explanations\n")
	b.WriteString("- No markdown, no backticks\n")
	b.WriteString("- Output ONLY a valid JSON array\n\n")
	b.WriteString("JSON format:\n")
	b.WriteString(`[{"question":"Question text","options":["Option A","Option B","Option C","Option D"],"answer":"Option A"}]`)
	return b.String()
}
