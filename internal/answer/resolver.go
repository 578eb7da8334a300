package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/metrics"
)

// User-visible sentinel messages. Generation-path failures are logged and
// converted to one of these; they are never cached and never propagated as
// errors.
const (
	MsgUnavailable      = "AI features are currently unavailable. Set GEMINI_API_KEY to enable them."
	MsgEmptyAnswer      = "Sorry, AI could not generate an answer."
	MsgGenerationFailed = "Sorry, the answer could not be generated."
)

// Generator is the external generation capability. A nil Generator means
// the capability is not configured.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Resolver answers a (subject, question) pair from the static bank, then
// the cache, then the generation capability. The bank is consulted
// unconditionally; cache and generation are gated together by a single
// availability check.
type Resolver struct {
	bank   *Bank
	cache  *Cache
	gen    Generator
	logger zerolog.Logger
}

func NewResolver(bank *Bank, cache *Cache, gen Generator, logger zerolog.Logger) *Resolver {
	return &Resolver{
		bank:   bank,
		cache:  cache,
		gen:    gen,
		logger: logger.With().Str("component", "answer_resolver").Logger(),
	}
}

// Bank exposes the static question table for listing endpoints.
func (r *Resolver) Bank() *Bank {
	return r.bank
}

// Resolve returns an answer string for every input; degraded results are
// sentinel messages, never errors.
func (r *Resolver) Resolve(ctx context.Context, subject, question string) string {
	if ans, ok := r.bank.Lookup(subject, question); ok {
		return ans
	}

	if r.gen == nil {
		return MsgUnavailable
	}

	if ans, ok := r.cache.Get(question); ok {
		metrics.AnswerCacheLookups.WithLabelValues("hit").Inc()
		return ans
	}
	metrics.AnswerCacheLookups.WithLabelValues("miss").Inc()

	prompt := fmt.Sprintf("Answer this question in simple terms for a student in %s: %s", subject, question)
	raw, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationCalls.WithLabelValues("answer", "error").Inc()
		r.logger.Warn().Err(err).Str("question", question).Msg("answer generation failed")
		return MsgGenerationFailed
	}
	metrics.GenerationCalls.WithLabelValues("answer", "ok").Inc()

	ans := strings.TrimSpace(raw)
	if ans == "" {
		return MsgEmptyAnswer
	}

	if err := r.cache.Put(question, ans); err != nil {
		// The answer is still usable; only its persistence failed.
		r.logger.Error().Err(err).Str("question", question).Msg("persist answer cache failed")
	}
	return ans
}
