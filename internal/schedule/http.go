package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	httperrors "github.com/studybuddy/platform/pkg/http/errors"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// HTTPHandlers serves exam presets and the schedule lifecycle.
type HTTPHandlers struct {
	store  *Store
	logger zerolog.Logger
}

func NewHTTPHandlers(store *Store, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		store:  store,
		logger: logger.With().Str("component", "schedule_http").Logger(),
	}
}

type createRequest struct {
	ExamType    string   `json:"exam_type"`
	CustomName  string   `json:"custom_name"`
	Subjects    []string `json:"subjects"`
	Weeks       int      `json:"weeks"`
	HoursPerDay int      `json:"hours_per_day"`
	StartDate   string   `json:"start_date"`
}

type scheduleView struct {
	StudySchedule
	Progress
}

// ListPresets handles GET /v1/exam-presets.
func (h *HTTPHandlers) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": Presets()})
}

// List handles GET /v1/schedules.
func (h *HTTPHandlers) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"schedules": h.store.List()})
}

// Create handles POST /v1/schedules.
func (h *HTTPHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON body")
		return
	}
	if req.ExamType == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "exam_type is required", "exam_type")
		return
	}
	if req.StartDate != "" {
		if _, err := parseDate(req.StartDate); err != nil {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "start_date must be YYYY-MM-DD", "start_date")
			return
		}
	}

	sched, err := h.store.Create(r.Context(), CreateParams{
		ExamType:    req.ExamType,
		CustomName:  req.CustomName,
		Subjects:    req.Subjects,
		Weeks:       req.Weeks,
		HoursPerDay: req.HoursPerDay,
		StartDate:   req.StartDate,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("schedule create failed")
		httperrors.RespondInternalError(w, "could not persist schedule")
		return
	}

	writeJSON(w, http.StatusCreated, sched)
}

// Get handles GET /v1/schedules/{id}, returning the record with its
// computed progress.
func (h *HTTPHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "schedule id must be an integer")
		return
	}

	sched, ok := h.store.Get(id)
	if !ok {
		httperrors.RespondNotFound(w, httperrors.ErrCodeScheduleNotFound, "schedule not found")
		return
	}

	writeJSON(w, http.StatusOK, scheduleView{
		StudySchedule: sched,
		Progress:      h.store.ProgressAt(sched, h.store.Now()),
	})
}

// Delete handles DELETE /v1/schedules/{id}. Unknown ids are a no-op.
func (h *HTTPHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "schedule id must be an integer")
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.logger.Error().Err(err).Int("id", id).Msg("schedule delete failed")
		httperrors.RespondInternalError(w, "could not persist schedules")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
