package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/answer"
	"github.com/studybuddy/platform/internal/config"
	"github.com/studybuddy/platform/internal/quiz"
	"github.com/studybuddy/platform/internal/schedule"
	httperrors "github.com/studybuddy/platform/pkg/http/errors"
)

// NewHTTPServer wires all routes (health, metrics, subjects, quiz,
// schedules) for the API service.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	answerHandlers *answer.HTTPHandlers,
	quizHandlers *quiz.HTTPHandlers,
	scheduleHandlers *schedule.HTTPHandlers,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/subjects", answerHandlers.ListSubjects)
	mux.HandleFunc("GET /v1/subjects/{subject}/questions", answerHandlers.ListQuestions)
	mux.HandleFunc("GET /v1/subjects/{subject}/ask", answerHandlers.Ask)
	mux.HandleFunc("POST /v1/subjects/{subject}/ask", answerHandlers.Ask)

	mux.HandleFunc("GET /v1/subjects/{subject}/quiz", quizHandlers.GetQuiz)
	mux.HandleFunc("POST /v1/subjects/{subject}/quiz/grade", quizHandlers.GradeQuiz)

	mux.HandleFunc("GET /v1/exam-presets", scheduleHandlers.ListPresets)
	mux.HandleFunc("GET /v1/schedules", scheduleHandlers.List)
	mux.HandleFunc("POST /v1/schedules", scheduleHandlers.Create)
	mux.HandleFunc("GET /v1/schedules/{id}", scheduleHandlers.Get)
	mux.HandleFunc("DELETE /v1/schedules/{id}", scheduleHandlers.Delete)

	// Everything else is a JSON 404, mirroring the error view the web UI had.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "page not found")
	})

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: withRequestLogging(logger, mux),
	}
}

// withRequestLogging logs completed requests.
func withRequestLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request handled")
	})
}
