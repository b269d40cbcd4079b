package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Models is the fallback order. Each request walks this list until a model
// returns text.
var Models = []string{
	"gemini-2.0-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash-lite",
	"gemini-2.5-flash",
}

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("GEMINI_API_KEY not set")

// AllModelsFailedError means every model in the fallback list was exhausted.
type AllModelsFailedError struct {
	Last error
}

func (e *AllModelsFailedError) Error() string {
	return fmt.Sprintf("all Gemini models failed, last error: %v", e.Last)
}

func (e *AllModelsFailedError) Unwrap() error { return e.Last }

// ErrorKind classifies provider errors once at the adapter boundary so the
// fallback loop dispatches on kind, not on raw error strings.
type ErrorKind int

const (
	KindFatal ErrorKind = iota
	KindTransient
	KindNotFound
)

type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini api status %d: %s", e.Status, truncate(e.Body, 200))
}

// Classify maps a raw provider error to an ErrorKind. Quota exhaustion and
// unknown-model errors are recoverable by trying the next model; everything
// else aborts the fallback loop.
func Classify(err error) ErrorKind {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return KindFatal
	}
	switch {
	case apiErr.Status == 429 || strings.Contains(apiErr.Body, "RESOURCE_EXHAUSTED"):
		return KindTransient
	case apiErr.Status == 404 || strings.Contains(apiErr.Body, "NOT_FOUND"):
		return KindNotFound
	default:
		return KindFatal
	}
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func DataPart(base64Data, mimeType string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

type GenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	TopP             float64 `json:"topP,omitempty"`
	TopK             int     `json:"topK,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client wraps the Generative Language REST API.
type Client struct {
	http   *resty.Client
	apiKey string
	models []string
	logger *log.Logger
}

func NewClient(apiKey, baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		models: Models,
		logger: logger,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) generateContent(ctx context.Context, model string, parts []Part, cfg *GenerationConfig) (string, error) {
	var result generateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{
			Contents:         []content{{Role: "user", Parts: parts}},
			GenerationConfig: cfg,
		}).
		SetResult(&result).
		Post("/v1beta/models/" + model + ":generateContent")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &apiError{Status: resp.StatusCode(), Body: resp.String()}
	}

	var text strings.Builder
	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			text.WriteString(p.Text)
		}
		break // only the first candidate is used
	}
	return text.String(), nil
}

// GenerateWithFallback tries each model in order. Empty responses and
// transient/not-found errors move to the next model; fatal errors abort
// immediately. Returns AllModelsFailedError when the list is exhausted.
func (c *Client) GenerateWithFallback(ctx context.Context, parts []Part, cfg *GenerationConfig) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.generateContent(ctx, model, parts, cfg)
		if err == nil {
			if text != "" {
				return text, nil
			}
			c.logger.Printf("Empty response from %s, trying next model", model)
			continue
		}

		switch Classify(err) {
		case KindTransient, KindNotFound:
			c.logger.Printf("Model %s failed: %v", model, err)
			lastErr = err
			continue
		default:
			return "", err
		}
	}

	return "", &AllModelsFailedError{Last: lastErr}
}

// ModelInfo describes one available model, for diagnostics.
type ModelInfo struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"displayName"`
	SupportedMethods []string `json:"supportedGenerationMethods"`
}

// ListModels returns the models accessible to the current API key.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var result struct {
		Models []ModelInfo `json:"models"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("pageSize", "100").
		SetResult(&result).
		Get("/v1beta/models")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &apiError{Status: resp.StatusCode(), Body: resp.String()}
	}
	return result.Models, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
