package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/youtube"
	"youedu/backend/utils"
)

type YouTubeController struct {
	YouTube *youtube.Service
}

func NewYouTubeController(svc *youtube.Service) *YouTubeController {
	return &YouTubeController{YouTube: svc}
}

// Parse extracts provider and video/playlist ids from a pasted URL.
func (yc *YouTubeController) Parse(c *fiber.Ctx) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	info, err := youtube.ParseVideoURL(body.URL)
	if errors.Is(err, youtube.ErrUnsupportedURL) {
		return utils.ValidationError(c, map[string]string{"url": "unsupported video URL"})
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to parse URL")
	}
	return c.JSON(info)
}

// OEmbed fetches title and thumbnail metadata for a YouTube URL.
func (yc *YouTubeController) OEmbed(c *fiber.Ctx) error {
	videoURL := c.Query("url")
	if videoURL == "" {
		return utils.ValidationError(c, map[string]string{"url": "url query parameter is required"})
	}

	info, err := yc.YouTube.FetchOEmbed(c.UserContext(), videoURL)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch video metadata")
	}
	return c.JSON(info)
}
