package transcription

import (
	"context"

	"youedu/backend/models"
)

// Provider is one transcription backend. Providers normalize their output
// to models.Transcript; the chain in service.go decides ordering and
// fallback.
type Provider interface {
	Name() string
	Configured() bool
	Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error)
}
