package controllers

import (
	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/gamification"
	"youedu/backend/utils"
)

type GamificationController struct {
	Gamification *gamification.Service
}

func NewGamificationController(svc *gamification.Service) *GamificationController {
	return &GamificationController{Gamification: svc}
}

func (gc *GamificationController) Get(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	return c.JSON(fiber.Map{
		"session":      gc.Gamification.Get(studentID),
		"achievements": gc.Gamification.Achievements(studentID),
		"missions":     gc.Gamification.Missions(studentID),
	})
}

// Update records one answered question in the daily session.
func (gc *GamificationController) Update(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"student_id"`
		IsCorrect bool   `json:"is_correct"`
		XP        int    `json:"xp"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.StudentID == "" {
		return utils.ValidationError(c, map[string]string{"student_id": "student_id is required"})
	}

	return c.JSON(gc.Gamification.RecordAnswer(body.StudentID, body.IsCorrect, body.XP))
}

func (gc *GamificationController) AddWatchTime(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"student_id"`
		Seconds   int    `json:"seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.StudentID == "" {
		return utils.ValidationError(c, map[string]string{"student_id": "student_id is required"})
	}

	return c.JSON(gc.Gamification.AddWatchTime(body.StudentID, body.Seconds))
}

func (gc *GamificationController) CompleteCodeChallenge(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"student_id"`
		XP        int    `json:"xp"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.StudentID == "" {
		return utils.ValidationError(c, map[string]string{"student_id": "student_id is required"})
	}

	return c.JSON(gc.Gamification.CompleteCodeChallenge(body.StudentID, body.XP))
}

func (gc *GamificationController) ResetStreak(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"student_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.StudentID == "" {
		return utils.ValidationError(c, map[string]string{"student_id": "student_id is required"})
	}

	return c.JSON(gc.Gamification.ResetStreak(body.StudentID))
}
