package studyplan

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestGenerateNilWithoutCapability(t *testing.T) {
	service := NewService(nil, zerolog.Nop())

	plan := service.Generate(context.Background(), "GATE", []string{"Algorithms"}, 24, 4)
	assert.Nil(t, plan)
}

func TestGenerateParsesWeeklyPlan(t *testing.T) {
	payload := `Here is your plan:
[
  {"week":1,"focus":"Foundation Building","daily_schedule":{
    "Monday":{"subject":"Physics","topics":["Kinematics"],"hours":4},
    "Tuesday":{"subject":"Chemistry","topics":["Atomic Structure"],"hours":4}
  }},
  {"week":2,"focus":"Practice","daily_schedule":{}}
]`
	service := NewService(&stubGenerator{text: payload}, zerolog.Nop())

	plan := service.Generate(context.Background(), "JEE", []string{"Physics", "Chemistry"}, 2, 4)
	assert.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Week)
	assert.Equal(t, "Foundation Building", plan[0].Focus)
	assert.Equal(t, "Physics", plan[0].DailySchedule["Monday"].Subject)
	assert.Equal(t, []string{"Kinematics"}, plan[0].DailySchedule["Monday"].Topics)
	assert.Equal(t, 4, plan[0].DailySchedule["Monday"].Hours)
}

func TestGenerateNilOnCapabilityError(t *testing.T) {
	service := NewService(&stubGenerator{err: errors.New("unreachable")}, zerolog.Nop())

	plan := service.Generate(context.Background(), "NEET", []string{"Biology"}, 48, 4)
	assert.Nil(t, plan)
}

func TestGenerateNilOnMissingBrackets(t *testing.T) {
	service := NewService(&stubGenerator{text: "No JSON here, sorry."}, zerolog.Nop())

	plan := service.Generate(context.Background(), "CAT", []string{"Quantitative Ability"}, 32, 4)
	assert.Nil(t, plan)
}

func TestGenerateNilOnMalformedArray(t *testing.T) {
	// week is not a number, so decoding the extracted array fails.
	service := NewService(&stubGenerator{text: `[{"week":"one","focus":1}]`}, zerolog.Nop())

	plan := service.Generate(context.Background(), "UPSC", []string{"History"}, 52, 4)
	assert.Nil(t, plan)
}
