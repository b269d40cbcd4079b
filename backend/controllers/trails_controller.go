package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/models"
	"youedu/backend/services/progress"
	"youedu/backend/services/trails"
	"youedu/backend/store"
	"youedu/backend/utils"
)

type TrailsController struct {
	Trails   *trails.Service
	Progress *progress.Service
}

func NewTrailsController(svc *trails.Service, prog *progress.Service) *TrailsController {
	return &TrailsController{Trails: svc, Progress: prog}
}

func (tc *TrailsController) Create(c *fiber.Ctx) error {
	var body struct {
		UserID        string `json:"user_id"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		CoverImageURL string `json:"cover_image_url"`
		IsPublic      bool   `json:"is_public"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.Title == "" {
		return utils.ValidationError(c, map[string]string{"title": "title is required"})
	}

	trail, err := tc.Trails.Create(models.Trail{
		UserID:        body.UserID,
		Title:         body.Title,
		Description:   body.Description,
		CoverImageURL: body.CoverImageURL,
		IsPublic:      body.IsPublic,
	})
	if err != nil {
		return utils.InternalServerError(c, "Failed to create trail")
	}
	return utils.Created(c, trail)
}

func (tc *TrailsController) List(c *fiber.Ctx) error {
	list, err := tc.Trails.List(c.Query("user_id"))
	if err != nil {
		return utils.InternalServerError(c, "Failed to list trails")
	}
	return c.JSON(list)
}

func (tc *TrailsController) Get(c *fiber.Ctx) error {
	trail, err := tc.Trails.Get(c.Params("id"))
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load trail")
	}
	return c.JSON(trail)
}

func (tc *TrailsController) Update(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	fields := store.Row{}
	for _, key := range []string{"title", "description", "cover_image_url", "is_public"} {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return utils.BadRequest(c, "No updatable fields in body")
	}

	trail, err := tc.Trails.Update(c.Params("id"), fields)
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to update trail")
	}
	return c.JSON(trail)
}

func (tc *TrailsController) Delete(c *fiber.Ctx) error {
	err := tc.Trails.Delete(c.Params("id"))
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to delete trail")
	}
	return utils.NoContent(c)
}

func (tc *TrailsController) AddVideo(c *fiber.Ctx) error {
	var body struct {
		VideoURL        string `json:"video_url"`
		Title           string `json:"title"`
		DurationSeconds int    `json:"duration_seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoURL == "" {
		return utils.ValidationError(c, map[string]string{"video_url": "video_url is required"})
	}

	video, err := tc.Trails.AddVideo(c.Params("id"), body.VideoURL, body.Title, body.DurationSeconds)
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to add video")
	}
	return utils.Created(c, video)
}

// UpdateProgress records watch time against a trail video.
func (tc *TrailsController) UpdateProgress(c *fiber.Ctx) error {
	var body struct {
		TrailID        string `json:"trail_id"`
		VideoID        string `json:"video_id"`
		WatchedSeconds int    `json:"watched_seconds"`
		TotalSeconds   int    `json:"total_seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.TrailID == "" || body.VideoID == "" {
		return utils.ValidationError(c, map[string]string{
			"trail_id": "trail_id is required",
			"video_id": "video_id is required",
		})
	}

	videoProgress := tc.Progress.Tracker.UpdateWatchTime(body.TrailID, body.VideoID, body.WatchedSeconds, body.TotalSeconds)
	return c.JSON(videoProgress)
}
