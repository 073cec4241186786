package readiness

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aiconsult_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewHandler(validator.New())
	engine.GET("/questions", h.ListQuestions)
	engine.POST("/score", h.Score)
	engine.POST("/results", h.Results)
	return engine
}

func post(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
	return rec
}

func TestScoreEndpointAcceptsPartialAnswers(t *testing.T) {
	engine := newEngine()
	rec := post(t, engine, "/score", AnswersRequest{Answers: Answers{"data-1": 5, "data-2": 5, "data-3": 5, "data-4": 5, "data-5": 5}})
	require.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 25.0, report.PercentageScore)
	assert.Equal(t, LevelBeginning, report.Level.Name)
	assert.Equal(t, 5, report.Answered)
	assert.Len(t, report.Recommendations, 3)
}

func TestScoreEndpointRequiresAnswers(t *testing.T) {
	engine := newEngine()
	rec := post(t, engine, "/score", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResultsEndpointRejectsIncomplete(t *testing.T) {
	engine := newEngine()
	answers := answerAll(3)
	delete(answers, "infrastructure-4")

	rec := post(t, engine, "/results", AnswersRequest{Answers: answers})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "infrastructure-4", body.Details["questionId"])
}

func TestResultsEndpointComplete(t *testing.T) {
	engine := newEngine()
	rec := post(t, engine, "/results", AnswersRequest{Answers: answerAll(4)})
	require.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 80.0, report.PercentageScore)
	assert.Equal(t, LevelExcellent, report.Level.Name)
}

func TestQuestionsEndpoint(t *testing.T) {
	engine := newEngine()
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []Question `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 20)
	assert.Equal(t, "data-1", body.Items[0].ID)
}
