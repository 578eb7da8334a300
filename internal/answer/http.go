package answer

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/studybuddy/platform/pkg/http/errors"
)

// HTTPHandlers serves the subject catalog and ask-a-question endpoints.
type HTTPHandlers struct {
	resolver *Resolver
	logger   zerolog.Logger
}

func NewHTTPHandlers(resolver *Resolver, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		resolver: resolver,
		logger:   logger.With().Str("component", "answer_http").Logger(),
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Subject  string `json:"subject"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListSubjects handles GET /v1/subjects.
func (h *HTTPHandlers) ListSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"subjects": h.resolver.Bank().Subjects()})
}

// ListQuestions handles GET /v1/subjects/{subject}/questions. Unknown
// subjects return an empty set, matching the catalog's lookup behavior.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")
	writeJSON(w, map[string]any{
		"subject":   subject,
		"questions": h.resolver.Bank().Questions(subject),
	})
}

// Ask handles GET and POST /v1/subjects/{subject}/ask. GET reads the
// question from the query string (URL-escaped direct links); POST reads a
// JSON body.
func (h *HTTPHandlers) Ask(w http.ResponseWriter, r *http.Request) {
	subject := r.PathValue("subject")

	var question string
	switch r.Method {
	case http.MethodGet:
		question = r.URL.Query().Get("question")
	case http.MethodPost:
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON body")
			return
		}
		question = req.Question
	}

	if question == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "question is required", "question")
		return
	}

	ans := h.resolver.Resolve(r.Context(), subject, question)
	writeJSON(w, askResponse{
		Subject:  subject,
		Question: question,
		Answer:   ans,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
