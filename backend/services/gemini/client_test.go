package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func modelFromPath(path string) string {
	path = strings.TrimPrefix(path, "/v1beta/models/")
	return strings.TrimSuffix(path, ":generateContent")
}

func textResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestGenerateWithFallbackQuotaAdvances(t *testing.T) {
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		model := modelFromPath(r.URL.Path)
		requested = append(requested, model)

		if model == Models[0] {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"status":"RESOURCE_EXHAUSTED"}}`)
			return
		}
		fmt.Fprint(w, textResponse("resultado"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)
	text, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "resultado", text)
	assert.Equal(t, []string{Models[0], Models[1]}, requested)
}

func TestGenerateWithFallbackNotFoundAdvances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if modelFromPath(r.URL.Path) == Models[0] {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"status":"NOT_FOUND"}}`)
			return
		}
		fmt.Fprint(w, textResponse("ok"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)
	text, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGenerateWithFallbackFatalAborts(t *testing.T) {
	var count int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		count++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"status":"INVALID_ARGUMENT"}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)
	_, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)

	assert.Error(t, err)
	assert.Equal(t, 1, count, "fatal errors must not try further models")

	var allFailed *AllModelsFailedError
	assert.False(t, errors.As(err, &allFailed))
}

func TestGenerateWithFallbackExhausted(t *testing.T) {
	var count int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		count++
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)
	_, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)

	var allFailed *AllModelsFailedError
	assert.True(t, errors.As(err, &allFailed))
	assert.Equal(t, len(Models), count)
}

func TestGenerateWithFallbackEmptyResponseAdvances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if modelFromPath(r.URL.Path) == Models[0] {
			fmt.Fprint(w, `{"candidates":[]}`)
			return
		}
		fmt.Fprint(w, textResponse("preenchido"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)
	text, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "preenchido", text)
}

func TestGenerateWithFallbackNotConfigured(t *testing.T) {
	client := NewClient("", "http://unused", nil)
	_, err := client.GenerateWithFallback(context.Background(), []Part{TextPart("oi")}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"quota status", &apiError{Status: 429, Body: "slow down"}, KindTransient},
		{"quota body", &apiError{Status: 400, Body: "RESOURCE_EXHAUSTED"}, KindTransient},
		{"missing model status", &apiError{Status: 404, Body: "no such model"}, KindNotFound},
		{"missing model body", &apiError{Status: 400, Body: "NOT_FOUND"}, KindNotFound},
		{"server error", &apiError{Status: 500, Body: "boom"}, KindFatal},
		{"plain error", errors.New("network down"), KindFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	plain := `{"a":1}`
	assert.Equal(t, plain, extractJSON(plain))
	assert.Equal(t, plain, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, plain, extractJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, plain, extractJSON("  \n{\"a\":1}\n  "))
}

func TestGenerateJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, textResponse("```json\n{\"value\":42}\n```"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, nil)

	var out struct {
		Value int `json:"value"`
	}
	err := client.GenerateJSON(context.Background(), []Part{TextPart("oi")}, nil, &out)
	assert.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}
