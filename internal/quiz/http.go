package quiz

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/studybuddy/platform/pkg/http/errors"
)

// MaxQuestionCount bounds the per-request quiz size; count is
// caller-controlled surface, so oversized requests are rejected before any
// allocation or prompt is built.
const MaxQuestionCount = 50

// HTTPHandlers serves quiz generation and grading.
type HTTPHandlers struct {
	service      *Service
	defaultCount int
	logger       zerolog.Logger
}

func NewHTTPHandlers(service *Service, defaultCount int, logger zerolog.Logger) *HTTPHandlers {
	if defaultCount <= 0 {
		defaultCount = 5
	}
	return &HTTPHandlers{
		service:      service,
		defaultCount: defaultCount,
		logger:       logger.With().Str("component", "quiz_http").Logger(),
	}
}

type quizResponse struct {
	Subject   string `json:"subject"`
	Questions []MCQ  `json:"questions"`
}

type gradeRequest struct {
	Questions  []MCQ             `json:"questions"`
	Selections map[string]string `json:"selections"`
}

type gradeResponse struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
	Total   int    `json:"total"`
}

// GetQuiz handles GET /v1/subjects/{subject}/quiz. Answers are included in
// the payload; the client re-submits it for grading.
func (h *HTTPHandlers) GetQuiz(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	count := h.defaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > MaxQuestionCount {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "count must be between 1 and 50", "count")
			return
		}
		count = parsed
	}

	difficulty := r.URL.Query().Get("difficulty")
	switch difficulty {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "difficulty must be easy, medium or hard", "difficulty")
		return
	}

	mcqs := h.service.Generate(r.Context(), subject, count, difficulty)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(quizResponse{Subject: subject, Questions: mcqs})
}

// GradeQuiz handles POST /v1/subjects/{subject}/quiz/grade.
func (h *HTTPHandlers) GradeQuiz(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON body")
		return
	}

	score, total := Grade(req.Questions, req.Selections)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(gradeResponse{Subject: subject, Score: score, Total: total})
}
