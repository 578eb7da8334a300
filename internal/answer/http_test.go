package answer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestMux(t *testing.T, gen Generator) *http.ServeMux {
	t.Helper()
	resolver := NewResolver(DefaultBank(), newTestCache(t), gen, zerolog.Nop())
	h := NewHTTPHandlers(resolver, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/subjects", h.ListSubjects)
	mux.HandleFunc("GET /v1/subjects/{subject}/questions", h.ListQuestions)
	mux.HandleFunc("GET /v1/subjects/{subject}/ask", h.Ask)
	mux.HandleFunc("POST /v1/subjects/{subject}/ask", h.Ask)
	return mux
}

func TestListSubjects(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Subjects []string `json:"subjects"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Math", "Science", "English", "Electronics"}, resp.Subjects)
}

func TestListQuestionsForSubject(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/subjects/English/questions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Subject   string            `json:"subject"`
		Questions map[string]string `json:"questions"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "English", resp.Subject)
	assert.Equal(t, "Joyful", resp.Questions["Synonym of happy?"])
}

func TestAskPostResolvesBankAnswer(t *testing.T) {
	mux := newTestMux(t, nil)

	body := `{"question":"What is 2+2?"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/subjects/Math/ask", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp askResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2+2 = 4", resp.Answer)
}

func TestAskGetSupportsEscapedDirectLinks(t *testing.T) {
	mux := newTestMux(t, nil)

	target := "/v1/subjects/Science/ask?question=" + url.QueryEscape("What is H2O?")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp askResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "What is H2O?", resp.Question)
	assert.Equal(t, "H2O is water", resp.Answer)
}

func TestAskWithoutQuestionIsRejected(t *testing.T) {
	mux := newTestMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/subjects/Math/ask", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskUnknownQuestionWithoutCapability(t *testing.T) {
	mux := newTestMux(t, nil)

	body := `{"question":"What is calculus?"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/subjects/Math/ask", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp askResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgUnavailable, resp.Answer)
}
