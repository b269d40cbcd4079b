package controllers

import (
	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/gemini"
	"youedu/backend/utils"
)

type ChallengesController struct {
	Gemini *gemini.Service
}

func NewChallengesController(svc *gemini.Service) *ChallengesController {
	return &ChallengesController{Gemini: svc}
}

// Generate analyzes an uploaded video and returns timestamped challenges.
// Provider failures degrade to the fixed fallback list, never to a 5xx.
func (cc *ChallengesController) Generate(c *fiber.Ctx) error {
	var body struct {
		VideoBase64 string `json:"video_base64"`
		MimeType    string `json:"mime_type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoBase64 == "" {
		return utils.ValidationError(c, map[string]string{"video_base64": "video_base64 is required"})
	}
	if body.MimeType == "" {
		body.MimeType = "video/mp4"
	}

	challenges := cc.Gemini.AnalyzeVideo(c.UserContext(), body.VideoBase64, body.MimeType)
	return c.JSON(fiber.Map{
		"challenges": challenges,
		"count":      len(challenges),
	})
}
