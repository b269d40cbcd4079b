package transcription

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func newTestAssemblyAI(baseURL string) *AssemblyAIProvider {
	p := NewAssemblyAIProvider("test-key")
	p.http = resty.New().SetBaseURL(baseURL)
	p.pollInterval = time.Millisecond
	return p
}

func writeTempAudio(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAssemblyAITranscribeMP3(t *testing.T) {
	var uploads int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/upload":
			uploads++
			json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.test/audio"})
		case r.Method == http.MethodPost && r.URL.Path == "/transcript":
			json.NewEncoder(w).Encode(map[string]string{"id": "job-1", "status": "queued"})
		case r.Method == http.MethodGet && r.URL.Path == "/transcript/job-1":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":             "job-1",
				"status":         "completed",
				"text":           "Olá mundo. Tudo bem?",
				"audio_duration": 4.2,
				"language_code":  "pt",
				"words": []map[string]interface{}{
					{"text": "Olá", "start": 0, "end": 400},
					{"text": "mundo.", "start": 450, "end": 900},
					{"text": "Tudo", "start": 1000, "end": 1300},
					{"text": "bem?", "start": 1350, "end": 1800},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := newTestAssemblyAI(server.URL)
	audioPath := writeTempAudio(t, "aula.mp3", []byte("mp3-bytes"))

	result, err := p.Transcribe(context.Background(), audioPath)
	assert.NoError(t, err)
	// mp3 input is uploaded as-is, no conversion step
	assert.Equal(t, 1, uploads)
	assert.Equal(t, "Olá mundo. Tudo bem?", result.Transcript)
	assert.Equal(t, "assemblyai", result.Provider)
	assert.Equal(t, 4.2, result.Duration)
	assert.Len(t, result.Segments, 2)
	assert.Equal(t, "Olá mundo.", result.Segments[0].Text)
	assert.Equal(t, 0.9, result.Segments[0].End)
}

func TestAssemblyAITranscribeWAVConverts(t *testing.T) {
	var uploads int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := newTestAssemblyAI(server.URL)
	// empty file: the mp3 conversion fails before anything is uploaded
	audioPath := writeTempAudio(t, "aula.wav", nil)

	_, err := p.Transcribe(context.Background(), audioPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mp3 conversion")
	assert.Equal(t, 0, uploads)
}

func TestAssemblyAIJobError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/upload":
			json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.test/audio"})
		case r.URL.Path == "/transcript":
			json.NewEncoder(w).Encode(map[string]string{"id": "job-2", "status": "queued"})
		default:
			json.NewEncoder(w).Encode(map[string]string{"id": "job-2", "status": "error", "error": "bad audio"})
		}
	}))
	defer server.Close()

	p := newTestAssemblyAI(server.URL)
	audioPath := writeTempAudio(t, "aula.mp3", []byte("mp3-bytes"))

	_, err := p.Transcribe(context.Background(), audioPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad audio")
}
