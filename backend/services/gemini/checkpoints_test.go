package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"youedu/backend/cache"
)

func TestSplitTranscriptShortDuplicates(t *testing.T) {
	transcript := "aula curta sobre ponteiros em go"

	segments := SplitTranscript(transcript, 4)

	assert.Len(t, segments, 4)
	for _, seg := range segments {
		assert.Equal(t, transcript, seg)
	}
}

func TestSplitTranscriptEvenSplit(t *testing.T) {
	words := make([]string, 80)
	for i := range words {
		words[i] = fmt.Sprintf("palavra%d", i)
	}
	transcript := strings.Join(words, " ")

	segments := SplitTranscript(transcript, 4)

	assert.Len(t, segments, 4)
	for i, seg := range segments {
		assert.Len(t, strings.Fields(seg), 20, "segment %d", i)
	}
	assert.Equal(t, transcript, strings.Join(segments, " "))
}

func TestSplitTranscriptUnevenTail(t *testing.T) {
	words := make([]string, 83)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}

	segments := SplitTranscript(strings.Join(words, " "), 4)

	assert.Len(t, segments, 4)
	// remainder lands in the last segment
	assert.Len(t, strings.Fields(segments[3]), 23)
}

func TestCheckpointTimestamps(t *testing.T) {
	ts := CheckpointTimestamps(400)
	assert.Equal(t, []int{100, 200, 300, 395}, ts)

	ts = CheckpointTimestamps(60)
	// 95% of 60 is past duration-5, so the clamp keeps the later mark
	assert.Equal(t, []int{15, 30, 45, 57}, ts)
}

func newTestService(apiKey, baseURL string) *Service {
	return NewService(NewClient(apiKey, baseURL, nil), cache.NewMemory(), nil)
}

func TestGenerateCheckpointsFallbackWhenUnconfigured(t *testing.T) {
	svc := newTestService("", "http://unused")

	checkpoints := svc.GenerateCheckpoints(context.Background(), "qualquer transcrição", 400, "vid-1")

	assert.Len(t, checkpoints, 4)
	for i, cp := range checkpoints {
		assert.True(t, strings.HasPrefix(cp.ID, fmt.Sprintf("fallback-cp-%d-", i)), cp.ID)
		assert.Len(t, cp.Options, 4)
		assert.NotEmpty(t, cp.Question)
	}
	assert.Equal(t, 100, checkpoints[0].TimestampSeconds)
	assert.Equal(t, 395, checkpoints[3].TimestampSeconds)

	// the fallback batch is cached like a generated one
	again := svc.GenerateCheckpoints(context.Background(), "qualquer transcrição", 400, "vid-1")
	assert.Equal(t, checkpoints, again)
}

func TestFallbackCheckpoints(t *testing.T) {
	checkpoints := FallbackCheckpoints(300)

	assert.Len(t, checkpoints, 4)
	assert.Equal(t, []int{75, 150, 225, 295},
		[]int{checkpoints[0].TimestampSeconds, checkpoints[1].TimestampSeconds,
			checkpoints[2].TimestampSeconds, checkpoints[3].TimestampSeconds})
	for i, cp := range checkpoints {
		assert.True(t, strings.HasPrefix(cp.ID, fmt.Sprintf("fallback-cp-%d-", i)), cp.ID)
		assert.Len(t, cp.Options, 4)
	}
}

func TestGenerateCheckpointsPerSegmentFallback(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		calls++
		if calls == 2 {
			// second segment hits a hard provider error
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"status":"INVALID_ARGUMENT"}}`)
			return
		}
		fmt.Fprint(w, textResponse(`{"question":"Pergunta gerada?","options":["A","B","C","D"],"correct_answer":1,"explanation":"ok"}`))
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	checkpoints := svc.GenerateCheckpoints(context.Background(), "transcricao de teste", 400, "vid-2")

	assert.Len(t, checkpoints, 4)
	assert.True(t, strings.HasPrefix(checkpoints[0].ID, "cp-vid-2-0-"))
	assert.Equal(t, "Pergunta gerada?", checkpoints[0].Question)
	assert.Equal(t, 1, checkpoints[0].CorrectAnswer)
	assert.True(t, strings.HasPrefix(checkpoints[1].ID, "fallback-cp-1-"), checkpoints[1].ID)
}

func TestGenerateCheckpointsCachesBatch(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		calls++
		fmt.Fprint(w, textResponse(`{"question":"P?","options":["A","B","C","D"],"correct_answer":0,"explanation":"e"}`))
	}))
	defer server.Close()

	svc := newTestService("test-key", server.URL)

	first := svc.GenerateCheckpoints(context.Background(), "transcricao", 400, "vid-3")
	second := svc.GenerateCheckpoints(context.Background(), "transcricao", 400, "vid-3")

	assert.Equal(t, 4, calls, "second batch must come from the cache")
	assert.Equal(t, first, second)
}
