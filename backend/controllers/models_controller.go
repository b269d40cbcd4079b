package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/gemini"
	"youedu/backend/utils"
)

type ModelsController struct {
	Gemini *gemini.Service
}

func NewModelsController(svc *gemini.Service) *ModelsController {
	return &ModelsController{Gemini: svc}
}

// List is a diagnostics endpoint showing which provider models the current
// API key can reach, plus the configured fallback order.
func (mc *ModelsController) List(c *fiber.Ctx) error {
	available, err := mc.Gemini.Client().ListModels(c.UserContext())
	if errors.Is(err, gemini.ErrNotConfigured) {
		return c.JSON(fiber.Map{
			"configured":     false,
			"fallback_order": gemini.Models,
			"available":      []gemini.ModelInfo{},
		})
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to list models")
	}

	return c.JSON(fiber.Map{
		"configured":     true,
		"fallback_order": gemini.Models,
		"available":      available,
	})
}
