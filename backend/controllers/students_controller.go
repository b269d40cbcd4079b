package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/services/gamification"
	"youedu/backend/services/students"
	"youedu/backend/utils"
)

type StudentsController struct {
	Students     *students.Service
	Gamification *gamification.Service
}

func NewStudentsController(svc *students.Service, game *gamification.Service) *StudentsController {
	return &StudentsController{Students: svc, Gamification: game}
}

func (sc *StudentsController) List(c *fiber.Ctx) error {
	list, err := sc.Students.List()
	if err != nil {
		return utils.InternalServerError(c, "Failed to list students")
	}
	return c.JSON(list)
}

func (sc *StudentsController) Get(c *fiber.Ctx) error {
	student, err := sc.Students.GetByID(c.Params("id"))
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load student")
	}
	return c.JSON(student)
}

func (sc *StudentsController) GetByEmail(c *fiber.Ctx) error {
	student, err := sc.Students.GetByEmail(strings.ToLower(c.Params("email")))
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load student")
	}
	return c.JSON(student)
}

func (sc *StudentsController) AddXP(c *fiber.Ctx) error {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.Amount <= 0 {
		return utils.ValidationError(c, map[string]string{"amount": "amount must be positive"})
	}

	student, err := sc.Students.AddXP(c.Params("id"), body.Amount)
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to add XP")
	}
	return c.JSON(student)
}

func (sc *StudentsController) StartSession(c *fiber.Ctx) error {
	var body struct {
		StudentID  string `json:"student_id"`
		VideoURL   string `json:"video_url"`
		VideoTitle string `json:"video_title"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.StudentID == "" || body.VideoURL == "" {
		return utils.ValidationError(c, map[string]string{
			"student_id": "student_id is required",
			"video_url":  "video_url is required",
		})
	}

	session, err := sc.Students.StartSession(body.StudentID, body.VideoURL, body.VideoTitle)
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to start session")
	}
	return utils.Created(c, session)
}

func (sc *StudentsController) CompleteSession(c *fiber.Ctx) error {
	var body struct {
		TimeSpent           int     `json:"time_spent"`
		Score               float64 `json:"score"`
		ChallengesCompleted int     `json:"challenges_completed"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	session, err := sc.Students.CompleteSession(c.Params("id"), body.TimeSpent, body.Score, body.ChallengesCompleted)
	if err != nil {
		return utils.NotFound(c, "Session not found")
	}
	return c.JSON(session)
}

// RecordAttempt stores a challenge attempt, awards XP on a correct answer and
// feeds the daily gamification counters.
func (sc *StudentsController) RecordAttempt(c *fiber.Ctx) error {
	var body struct {
		SessionID      string `json:"session_id"`
		StudentID      string `json:"student_id"`
		ChallengeID    string `json:"challenge_id"`
		SelectedAnswer int    `json:"selected_answer"`
		IsCorrect      bool   `json:"is_correct"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.SessionID == "" || body.ChallengeID == "" {
		return utils.ValidationError(c, map[string]string{
			"session_id":   "session_id is required",
			"challenge_id": "challenge_id is required",
		})
	}

	attempt, err := sc.Students.RecordAttempt(body.SessionID, body.ChallengeID, body.SelectedAnswer, body.IsCorrect)
	if err != nil {
		return utils.NotFound(c, "Session not found")
	}

	if body.StudentID != "" {
		sc.Gamification.RecordAnswer(body.StudentID, body.IsCorrect, attempt.XPEarned)
	}
	return utils.Created(c, attempt)
}

func (sc *StudentsController) Stats(c *fiber.Ctx) error {
	stats, err := sc.Students.Stats(c.Params("id"))
	if errors.Is(err, students.ErrStudentNotFound) {
		return utils.NotFound(c, "Student not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load stats")
	}
	return c.JSON(stats)
}
