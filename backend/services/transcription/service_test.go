package transcription

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"youedu/backend/models"
)

type fakeProvider struct {
	name       string
	configured bool
	result     *models.Transcript
	err        error
	calls      int
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Transcribe(_ context.Context, _ string) (*models.Transcript, error) {
	f.calls++
	return f.result, f.err
}

func TestChainSkipsUnconfigured(t *testing.T) {
	skipped := &fakeProvider{name: "google_cloud", configured: false}
	used := &fakeProvider{
		name:       "assemblyai",
		configured: true,
		result:     &models.Transcript{Transcript: "olá", Provider: "assemblyai"},
	}
	svc := NewService(nil, skipped, used)

	result, err := svc.TranscribeAudio(context.Background(), "audio.wav")

	assert.NoError(t, err)
	assert.Equal(t, "assemblyai", result.Provider)
	assert.Equal(t, 0, skipped.calls)
	assert.Equal(t, 1, used.calls)
}

func TestChainFallsThroughOnFailure(t *testing.T) {
	failing := &fakeProvider{name: "google_cloud", configured: true, err: errors.New("quota exceeded")}
	backup := &fakeProvider{
		name:       "gemini",
		configured: true,
		result:     &models.Transcript{Transcript: "texto", Provider: "gemini"},
	}
	svc := NewService(nil, failing, backup)

	result, err := svc.TranscribeAudio(context.Background(), "audio.wav")

	assert.NoError(t, err)
	assert.Equal(t, "gemini", result.Provider)
	assert.Equal(t, 1, failing.calls)
}

func TestChainAggregatesFailures(t *testing.T) {
	first := &fakeProvider{name: "google_cloud", configured: true, err: errors.New("credencial inválida")}
	second := &fakeProvider{name: "assemblyai", configured: true, err: errors.New("upload failed")}
	svc := NewService(nil, first, second)

	_, err := svc.TranscribeAudio(context.Background(), "audio.wav")

	var chainErr *ChainError
	assert.True(t, errors.As(err, &chainErr))
	assert.Len(t, chainErr.Failures, 2)
	assert.Contains(t, chainErr.Failures[0], "google_cloud:")
	assert.Contains(t, chainErr.Failures[1], "assemblyai:")
}

func TestChainNoProviderConfigured(t *testing.T) {
	svc := NewService(nil, &fakeProvider{name: "google_cloud"}, &fakeProvider{name: "assemblyai"})

	_, err := svc.TranscribeAudio(context.Background(), "audio.wav")

	var chainErr *ChainError
	assert.True(t, errors.As(err, &chainErr))
	assert.Equal(t, []string{"no provider configured"}, chainErr.Failures)
}

func TestChainTruncatesLongErrors(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	failing := &fakeProvider{name: "google_cloud", configured: true, err: errors.New(string(long))}
	svc := NewService(nil, failing)

	_, err := svc.TranscribeAudio(context.Background(), "audio.wav")

	var chainErr *ChainError
	assert.True(t, errors.As(err, &chainErr))
	assert.Len(t, chainErr.Failures[0], len("google_cloud: ")+100)
}

func TestProviderStatuses(t *testing.T) {
	svc := NewService(nil,
		&fakeProvider{name: "google_cloud", configured: true},
		&fakeProvider{name: "assemblyai", configured: false},
		&fakeProvider{name: "gemini", configured: true},
	)

	statuses := svc.ProviderStatuses()

	assert.Equal(t, []ProviderStatus{
		{Name: "google_cloud", Configured: true, Priority: 1},
		{Name: "assemblyai", Configured: false, Priority: 2},
		{Name: "gemini", Configured: true, Priority: 3},
	}, statuses)
}

func TestGroupWordsIntoSegments(t *testing.T) {
	words := []assemblyAIWord{
		{Text: "Olá", Start: 0, End: 400},
		{Text: "turma.", Start: 500, End: 900},
		{Text: "Hoje", Start: 1000, End: 1300},
		{Text: "veremos", Start: 1400, End: 1800},
		{Text: "ponteiros!", Start: 1900, End: 2400},
	}

	segments := groupWordsIntoSegments(words)

	assert.Len(t, segments, 2)
	assert.Equal(t, "Olá turma.", segments[0].Text)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 0.9, segments[0].End)
	assert.Equal(t, "Hoje veremos ponteiros!", segments[1].Text)
	assert.Equal(t, 1.0, segments[1].Start)
	assert.Equal(t, 2.4, segments[1].End)
}

func TestGroupWordsBreaksAtWordCap(t *testing.T) {
	var words []assemblyAIWord
	for i := 0; i < 20; i++ {
		words = append(words, assemblyAIWord{Text: "palavra", Start: int64(i * 1000), End: int64(i*1000 + 500)})
	}

	segments := groupWordsIntoSegments(words)

	assert.Len(t, segments, 2)
	assert.Len(t, strings.Fields(segments[0].Text), 15)
	assert.Len(t, strings.Fields(segments[1].Text), 5)
}
