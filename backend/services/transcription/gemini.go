package transcription

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"youedu/backend/models"
	"youedu/backend/services/gemini"
)

const geminiTranscriptionPrompt = `Transcreva o áudio a seguir. Responda APENAS com JSON válido neste formato:
{
  "transcript": "texto completo da transcrição",
  "segments": [
    {"start": 0.0, "end": 5.2, "text": "trecho da transcrição"}
  ],
  "language": "pt-BR"
}
Divida a transcrição em segmentos de frases completas com tempos aproximados em segundos.`

// GeminiProvider is the last resort of the fallback chain. It sends the raw
// audio inline to the Gemini API and asks for a structured transcript.
type GeminiProvider struct {
	client *gemini.Client
}

func NewGeminiProvider(client *gemini.Client) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Configured() bool {
	return p.client != nil && p.client.Configured()
}

func (p *GeminiProvider) Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, err
	}

	mimeType := "audio/wav"
	if strings.HasSuffix(audioPath, ".mp3") {
		mimeType = "audio/mp3"
	}

	var parsed struct {
		Transcript string                     `json:"transcript"`
		Segments   []models.TranscriptSegment `json:"segments"`
		Language   string                     `json:"language"`
	}

	parts := []gemini.Part{
		gemini.TextPart(geminiTranscriptionPrompt),
		gemini.DataPart(base64.StdEncoding.EncodeToString(audio), mimeType),
	}
	cfg := &gemini.GenerationConfig{
		Temperature:      0.3,
		MaxOutputTokens:  8192,
		ResponseMIMEType: "application/json",
	}

	if err := p.client.GenerateJSON(ctx, parts, cfg, &parsed); err != nil {
		return nil, fmt.Errorf("gemini transcription: %w", err)
	}
	if strings.TrimSpace(parsed.Transcript) == "" {
		return nil, fmt.Errorf("gemini transcription: empty transcript")
	}

	var duration float64
	if n := len(parsed.Segments); n > 0 {
		duration = parsed.Segments[n-1].End
	}
	language := parsed.Language
	if language == "" {
		language = "pt-BR"
	}

	return &models.Transcript{
		Transcript: parsed.Transcript,
		Segments:   parsed.Segments,
		Duration:   duration,
		Language:   language,
		Provider:   "gemini",
	}, nil
}
