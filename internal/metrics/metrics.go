// Package metrics exposes prometheus collectors for the AI-backed features.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AnswerCacheLookups counts answer cache lookups by result (hit/miss).
	AnswerCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answer_cache_lookups_total",
			Help: "Total answer cache lookups by result",
		},
		[]string{"result"},
	)

	// GenerationCalls counts external generation calls by feature and outcome.
	GenerationCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_calls_total",
			Help: "Total generation capability calls by feature and outcome",
		},
		[]string{"feature", "outcome"},
	)

	// Fallbacks counts deterministic fallback results served by feature.
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_fallbacks_total",
			Help: "Total deterministic fallback results served by feature",
		},
		[]string{"feature"},
	)
)

func init() {
	prometheus.MustRegister(AnswerCacheLookups, GenerationCalls, Fallbacks)
}
