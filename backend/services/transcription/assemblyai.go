package transcription

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"youedu/backend/models"
)

const assemblyAIBaseURL = "https://api.assemblyai.com/v2"

// AssemblyAIProvider is the secondary transcription provider. It uploads the
// audio file and polls the transcript endpoint until the job settles.
type AssemblyAIProvider struct {
	http   *resty.Client
	apiKey string

	pollInterval time.Duration
	maxPolls     int
}

func NewAssemblyAIProvider(apiKey string) *AssemblyAIProvider {
	return &AssemblyAIProvider{
		http:         resty.New().SetBaseURL(assemblyAIBaseURL).SetTimeout(2 * time.Minute),
		apiKey:       apiKey,
		pollInterval: 3 * time.Second,
		maxPolls:     100,
	}
}

func (p *AssemblyAIProvider) Name() string { return "assemblyai" }

func (p *AssemblyAIProvider) Configured() bool { return p.apiKey != "" }

type assemblyAIWord struct {
	Text  string `json:"text"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

type assemblyAITranscript struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	Text          string           `json:"text"`
	Words         []assemblyAIWord `json:"words"`
	AudioDuration float64          `json:"audio_duration"`
	LanguageCode  string           `json:"language_code"`
	Error         string           `json:"error"`
}

func (p *AssemblyAIProvider) Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error) {
	// AssemblyAI works better with mp3, so WAV input is converted first.
	if !strings.HasSuffix(audioPath, ".mp3") {
		mp3Path, err := ConvertToMP3(audioPath)
		if err != nil {
			return nil, fmt.Errorf("assemblyai mp3 conversion: %w", err)
		}
		defer os.Remove(mp3Path)
		audioPath = mp3Path
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, err
	}

	uploadURL, err := p.upload(ctx, audio)
	if err != nil {
		return nil, err
	}

	jobID, err := p.submit(ctx, uploadURL)
	if err != nil {
		return nil, err
	}

	result, err := p.waitForResult(ctx, jobID)
	if err != nil {
		return nil, err
	}

	segments := groupWordsIntoSegments(result.Words)
	language := result.LanguageCode
	if language == "" {
		language = "pt"
	}

	return &models.Transcript{
		Transcript: result.Text,
		Segments:   segments,
		Duration:   result.AudioDuration,
		Language:   language,
		Provider:   "assemblyai",
	}, nil
}

func (p *AssemblyAIProvider) upload(ctx context.Context, audio []byte) (string, error) {
	var out struct {
		UploadURL string `json:"upload_url"`
	}
	resp, err := p.http.R().
		SetContext(ctx).
		SetHeader("authorization", p.apiKey).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(audio).
		SetResult(&out).
		Post("/upload")
	if err != nil {
		return "", fmt.Errorf("assemblyai upload: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("assemblyai upload: status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("assemblyai upload: empty upload_url")
	}
	return out.UploadURL, nil
}

func (p *AssemblyAIProvider) submit(ctx context.Context, audioURL string) (string, error) {
	var out assemblyAITranscript
	resp, err := p.http.R().
		SetContext(ctx).
		SetHeader("authorization", p.apiKey).
		SetBody(map[string]interface{}{
			"audio_url":     audioURL,
			"language_code": "pt",
			"punctuate":     true,
			"format_text":   true,
		}).
		SetResult(&out).
		Post("/transcript")
	if err != nil {
		return "", fmt.Errorf("assemblyai submit: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("assemblyai submit: status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.ID == "" {
		return "", fmt.Errorf("assemblyai submit: empty transcript id")
	}
	return out.ID, nil
}

func (p *AssemblyAIProvider) waitForResult(ctx context.Context, jobID string) (*assemblyAITranscript, error) {
	for i := 0; i < p.maxPolls; i++ {
		var out assemblyAITranscript
		resp, err := p.http.R().
			SetContext(ctx).
			SetHeader("authorization", p.apiKey).
			SetResult(&out).
			Get("/transcript/" + jobID)
		if err != nil {
			return nil, fmt.Errorf("assemblyai poll: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("assemblyai poll: status %d: %s", resp.StatusCode(), resp.String())
		}

		switch out.Status {
		case "completed":
			return &out, nil
		case "error":
			return nil, fmt.Errorf("assemblyai transcription failed: %s", out.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.pollInterval):
		}
	}
	return nil, fmt.Errorf("assemblyai transcription timed out")
}

// groupWordsIntoSegments joins words into sentence-like segments, breaking at
// terminal punctuation or every 15 words.
func groupWordsIntoSegments(words []assemblyAIWord) []models.TranscriptSegment {
	const maxWordsPerSegment = 15

	var segments []models.TranscriptSegment
	var current []string
	var start, end int64

	flush := func() {
		if len(current) == 0 {
			return
		}
		segments = append(segments, models.TranscriptSegment{
			Start: float64(start) / 1000.0,
			End:   float64(end) / 1000.0,
			Text:  strings.Join(current, " "),
		})
		current = nil
	}

	for _, w := range words {
		if len(current) == 0 {
			start = w.Start
		}
		current = append(current, w.Text)
		end = w.End

		if endsSentence(w.Text) || len(current) >= maxWordsPerSegment {
			flush()
		}
	}
	flush()

	return segments
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "?") ||
		strings.HasSuffix(word, "!")
}
