package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/config"
	"youedu/backend/services/students"
	"youedu/backend/utils"
)

type AuthController struct {
	Students *students.Service
	Cfg      *config.Config
}

func NewAuthController(svc *students.Service, cfg *config.Config) *AuthController {
	return &AuthController{Students: svc, Cfg: cfg}
}

// SyncUser upserts the student record for an OAuth login and returns an API
// token.
func (ac *AuthController) SyncUser(c *fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" {
		return utils.ValidationError(c, map[string]string{"email": "email is required"})
	}
	if body.Name == "" {
		body.Name = body.Email
	}

	student, err := ac.Students.SyncUser(body.Email, body.Name, body.AvatarURL)
	if err != nil {
		return utils.InternalServerError(c, "Failed to sync user")
	}

	token, err := utils.GenerateJWTToken(student.Email, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"student": student,
		"token":   token,
	})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	email := strings.ToLower(c.Params("email"))

	student, err := ac.Students.GetByEmail(email)
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load student")
	}
	return c.JSON(student)
}
