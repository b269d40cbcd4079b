package transcription

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"youedu/backend/models"
)

// GoogleProvider transcribes audio with Google Cloud Speech-to-Text. It is
// the primary provider of the fallback chain.
type GoogleProvider struct {
	credentialsFile string
}

func NewGoogleProvider(credentialsFile string) *GoogleProvider {
	return &GoogleProvider{credentialsFile: credentialsFile}
}

func (p *GoogleProvider) Name() string { return "google_cloud" }

func (p *GoogleProvider) Configured() bool {
	if p.credentialsFile == "" {
		return false
	}
	_, err := os.Stat(p.credentialsFile)
	return err == nil
}

func (p *GoogleProvider) Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	client, err := speech.NewClient(ctx, option.WithCredentialsFile(p.credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	defer client.Close()

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, err
	}

	req := &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:            16000,
			LanguageCode:               "pt-BR",
			AlternativeLanguageCodes:   []string{"en-US", "es-ES"},
			EnableAutomaticPunctuation: true,
			EnableWordTimeOffsets:      true,
			Model:                      "latest_long",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	op, err := client.LongRunningRecognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech longrunningrecognize: %w", err)
	}
	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("speech operation: %w", err)
	}

	return parseRecognizeResponse(resp)
}

func parseRecognizeResponse(resp *speechpb.LongRunningRecognizeResponse) (*models.Transcript, error) {
	if resp == nil || len(resp.Results) == 0 {
		return nil, fmt.Errorf("no speech recognized")
	}

	var full strings.Builder
	var segments []models.TranscriptSegment
	var duration float64
	language := ""

	for _, r := range resp.Results {
		if r == nil || len(r.Alternatives) == 0 || r.Alternatives[0] == nil {
			continue
		}
		alt := r.Alternatives[0]
		text := strings.TrimSpace(alt.Transcript)
		if text == "" {
			continue
		}
		if full.Len() > 0 {
			full.WriteString(" ")
		}
		full.WriteString(text)
		if language == "" {
			language = r.LanguageCode
		}

		start, end := 0.0, 0.0
		if len(alt.Words) > 0 {
			first, last := alt.Words[0], alt.Words[len(alt.Words)-1]
			if first.StartTime != nil {
				start = first.StartTime.AsDuration().Seconds()
			}
			if last.EndTime != nil {
				end = last.EndTime.AsDuration().Seconds()
			}
		}
		if end > duration {
			duration = end
		}
		segments = append(segments, models.TranscriptSegment{Start: start, End: end, Text: text})
	}

	if full.Len() == 0 {
		return nil, fmt.Errorf("no speech recognized")
	}
	if language == "" {
		language = "pt-BR"
	}

	return &models.Transcript{
		Transcript: full.String(),
		Segments:   segments,
		Duration:   duration,
		Language:   language,
		Provider:   "google_cloud",
	}, nil
}
