package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/gemini"
	"youedu/backend/services/transcription"
	"youedu/backend/utils"
)

type TranscriptionController struct {
	Transcription *transcription.Service
	Gemini        *gemini.Service
}

func NewTranscriptionController(svc *transcription.Service, gem *gemini.Service) *TranscriptionController {
	return &TranscriptionController{Transcription: svc, Gemini: gem}
}

// Transcribe accepts a multipart video upload and runs the provider fallback
// chain over its audio track.
func (tc *TranscriptionController) Transcribe(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "Missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequest(c, "Failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.InternalServerError(c, "Failed to read upload")
	}

	transcript, err := tc.Transcription.TranscribeVideo(c.UserContext(), data)
	if errors.Is(err, transcription.ErrNoAudioTrack) {
		return utils.BadRequest(c, "O vídeo não contém faixa de áudio")
	}
	if err != nil {
		var chainErr *transcription.ChainError
		if errors.As(err, &chainErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":    "Transcription failed",
				"failures": chainErr.Failures,
			})
		}
		return utils.InternalServerError(c, "Transcription failed")
	}

	return c.JSON(transcript)
}

// GenerateQuiz turns a transcript into a quiz. Unlike challenges and
// checkpoints there is no degraded fallback here.
func (tc *TranscriptionController) GenerateQuiz(c *fiber.Ctx) error {
	var body struct {
		Transcript      string `json:"transcript"`
		DurationSeconds int    `json:"duration_seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.Transcript == "" {
		return utils.ValidationError(c, map[string]string{"transcript": "transcript is required"})
	}

	quiz, err := tc.Gemini.GenerateQuiz(c.UserContext(), body.Transcript, body.DurationSeconds)
	if errors.Is(err, gemini.ErrNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "AI provider not configured",
		})
	}
	if err != nil {
		return utils.InternalServerError(c, "Quiz generation failed")
	}
	return c.JSON(quiz)
}

func (tc *TranscriptionController) Providers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"providers": tc.Transcription.ProviderStatuses(),
	})
}
