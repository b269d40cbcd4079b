package transcription

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"youedu/backend/models"
)

// ChainError aggregates the per-provider failures after the whole fallback
// chain was exhausted.
type ChainError struct {
	Failures []string
}

func (e *ChainError) Error() string {
	return "all transcription providers failed: " + strings.Join(e.Failures, "; ")
}

// Service runs the provider fallback chain: Google Cloud Speech-to-Text,
// then AssemblyAI, then Gemini. Unconfigured providers are skipped.
type Service struct {
	providers []Provider
	logger    *log.Logger
}

func NewService(logger *log.Logger, providers ...Provider) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{providers: providers, logger: logger}
}

// TranscribeAudio walks the chain until one provider returns a transcript.
func (s *Service) TranscribeAudio(ctx context.Context, audioPath string) (*models.Transcript, error) {
	var failures []string

	for _, p := range s.providers {
		if !p.Configured() {
			s.logger.Printf("Transcription provider %s not configured, skipping", p.Name())
			continue
		}

		result, err := p.Transcribe(ctx, audioPath)
		if err == nil {
			return result, nil
		}
		s.logger.Printf("Transcription provider %s failed: %v", p.Name(), err)
		failures = append(failures, fmt.Sprintf("%s: %s", p.Name(), truncateErr(err)))
	}

	if len(failures) == 0 {
		failures = append(failures, "no provider configured")
	}
	return nil, &ChainError{Failures: failures}
}

// TranscribeVideo writes the uploaded bytes to a temp file, extracts the
// audio track and runs the fallback chain.
func (s *Service) TranscribeVideo(ctx context.Context, videoData []byte) (*models.Transcript, error) {
	tmp, err := os.CreateTemp("", "video-*.mp4")
	if err != nil {
		return nil, err
	}
	videoPath := tmp.Name()
	defer os.Remove(videoPath)

	if _, err := tmp.Write(videoData); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	audioPath, err := ExtractAudio(videoPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(audioPath)

	return s.TranscribeAudio(ctx, audioPath)
}

// ProviderStatus reports whether a provider in the chain is usable.
type ProviderStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Priority   int    `json:"priority"`
}

func (s *Service) ProviderStatuses() []ProviderStatus {
	statuses := make([]ProviderStatus, 0, len(s.providers))
	for i, p := range s.providers {
		statuses = append(statuses, ProviderStatus{
			Name:       p.Name(),
			Configured: p.Configured(),
			Priority:   i + 1,
		})
	}
	return statuses
}

func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 100 {
		msg = msg[:100]
	}
	return msg
}
