// Package studyplan generates week-by-week AI study plans. Absence of a
// plan is the normal degraded result, never an error: callers attach a plan
// when one comes back and proceed without one otherwise.
package studyplan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/genai"
	"github.com/studybuddy/platform/internal/metrics"
)

// DayPlan is one weekday's allocation inside a week.
type DayPlan struct {
	Subject string   `json:"subject"`
	Topics  []string `json:"topics"`
	Hours   int      `json:"hours"`
}

// WeekPlan is one week of the generated schedule. The structure is parsed
// as-is from model output without per-field validation.
type WeekPlan struct {
	Week          int                `json:"week"`
	Focus         string             `json:"focus"`
	DailySchedule map[string]DayPlan `json:"daily_schedule"`
}

// Generator is the external generation capability. A nil Generator means
// plans are never produced.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds study plans via the generation capability.
type Service struct {
	gen    Generator
	logger zerolog.Logger
}

func NewService(gen Generator, logger zerolog.Logger) *Service {
	return &Service{
		gen:    gen,
		logger: logger.With().Str("component", "studyplan_generator").Logger(),
	}
}

// Generate returns a parsed plan, or nil when the capability is
// unconfigured or anything about the call or its output fails.
func (s *Service) Generate(ctx context.Context, examType string, subjects []string, weeks, hoursPerDay int) []WeekPlan {
	if s.gen == nil {
		return nil
	}

	raw, err := s.gen.Generate(ctx, buildPrompt(examType, subjects, weeks, hoursPerDay))
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("studyplan", "error").Inc()
		s.logger.Warn().Err(err).Str("exam_type", examType).Msg("study plan generation failed")
		return nil
	}
	metrics.GenerationCalls.WithLabelValues("studyplan", "ok").Inc()

	arr, err := genai.ExtractJSONArray(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("exam_type", examType).Msg("study plan output rejected")
		return nil
	}

	var plan []WeekPlan
	if err := json.Unmarshal([]byte(arr), &plan); err != nil {
		s.logger.Warn().Err(err).Str("exam_type", examType).Msg("study plan parse failed")
		return nil
	}
	return plan
}

func buildPrompt(examType string, subjects []string, weeks, hoursPerDay int) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Create a detailed %d-week study schedule for %s exam preparation.\n", weeks, examType)
	fmt.Fprintf(&b, "Subjects to cover: %s\n", strings.Join(subjects, ", "))
	fmt.Fprintf(&b, "Study hours per day: %d\n\n", hoursPerDay)
	b.WriteString("Provide a week-by-week breakdown with:\n")
	b.WriteString("- Topics to cover each week\n")
	b.WriteString("- Daily time allocation for each subject\n")
	b.WriteString("- Revision periods\n")
	b.WriteString("- Mock test schedules\n\n")
	b.WriteString("Format as JSON array with weekly plans:\n")
	b.WriteString(`[{"week":1,"focus":"Foundation Building","daily_schedule":{"Monday":{"subject":"Subject 1","topics":["Topic A","Topic B"],"hours":4}}}]`)
	return b.String()
}
