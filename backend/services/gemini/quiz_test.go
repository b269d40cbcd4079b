package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateQuizQuestions(t *testing.T) {
	tests := []struct {
		durationSeconds int
		want            int
	}{
		{0, 2},
		{179, 2},
		{360, 3},   // 6 minutes
		{900, 6},   // 15 minutes
		{1620, 10}, // 27 minutes
		{100000, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateQuizQuestions(tt.durationSeconds), "duration %d", tt.durationSeconds)
	}
}

func TestGenerateQuizNotConfigured(t *testing.T) {
	svc := newTestService("", "http://unused")

	_, err := svc.GenerateQuiz(context.Background(), "transcricao", 300)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateQuizTotalPoints(t *testing.T) {
	payload := `{"questions":[{"id":"q1","question":"P1?","options":["A","B","C","D"],"correctAnswer":0},{"id":"q2","question":"P2?","options":["A","B","C","D"],"correctAnswer":2}],"codingExercises":[{"id":"ex1","title":"Ex","description":"d","starterCode":"","expectedOutput":""}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, textResponse(payload))
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	quiz, err := svc.GenerateQuiz(context.Background(), "transcricao sobre programacao", 700)
	assert.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
	assert.Len(t, quiz.CodingExercises, 1)
	assert.Equal(t, 2*20+50, quiz.TotalPoints)
}

func TestGenerateQuizProviderFailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	_, err := svc.GenerateQuiz(context.Background(), "transcricao", 300)
	assert.Error(t, err)
}

func TestAnalyzeVideoFallbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"status":"INVALID_ARGUMENT"}}`)
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	challenges := svc.AnalyzeVideo(context.Background(), "dmlkZW8=", "video/mp4")
	assert.Len(t, challenges, 1)
	assert.Equal(t, "fallback-1", challenges[0].ID)
}

func TestAnalyzeVideoAssignsIDs(t *testing.T) {
	payload := `{"challenges":[{"timestamp":45,"timestampLabel":"00:45","type":"quiz","title":"T","content":"C?","options":["A","B","C","D"],"correctAnswer":0,"summary":"s"},{"timestamp":90,"timestampLabel":"01:30","type":"quiz","title":"T2","content":"C2?","options":["A","B","C","D"],"correctAnswer":1,"summary":"s2"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, textResponse(payload))
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	challenges := svc.AnalyzeVideo(context.Background(), "dmlkZW8=", "video/mp4")
	assert.Len(t, challenges, 2)
	assert.Regexp(t, `^ai-\d+-0$`, challenges[0].ID)
	assert.Regexp(t, `^ai-\d+-1$`, challenges[1].ID)
}
