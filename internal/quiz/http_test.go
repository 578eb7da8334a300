package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestMux(t *testing.T, gen Generator) *http.ServeMux {
	t.Helper()
	h := NewHTTPHandlers(NewService(gen, zerolog.Nop()), 5, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/subjects/{subject}/quiz", h.GetQuiz)
	mux.HandleFunc("POST /v1/subjects/{subject}/quiz/grade", h.GradeQuiz)
	return mux
}

func TestGetQuizDefaultsToFiveQuestions(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/Math/quiz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp quizResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 5)
}

func TestGetQuizRejectsOversizedCount(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/Math/quiz?count=100000000", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "count")
}

func TestGetQuizRejectsNonPositiveCount(t *testing.T) {
	mux := newTestMux(t, nil)

	for _, raw := range []string{"0", "-3", "abc"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/Math/quiz?count="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "count=%s", raw)
	}
}

func TestGetQuizAcceptsCountAtCap(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/Math/quiz?count=50", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp quizResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 50)
}

func TestGetQuizRejectsUnknownDifficulty(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/Math/quiz?difficulty=impossible", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGradeQuizOverHTTP(t *testing.T) {
	mux := newTestMux(t, nil)

	body := `{
	  "questions":[
	    {"id":"q1","question":"2+2?","options":["3","4","5","6"],"answer":"4"},
	    {"id":"q2","question":"3*3?","options":["6","7","8","9"],"answer":"9"}
	  ],
	  "selections":{"q1":"4","q2":"8"}
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/subjects/Math/quiz/grade", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp gradeResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.Total)
}
