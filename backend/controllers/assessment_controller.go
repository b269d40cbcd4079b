package controllers

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"youedu/backend/models"
	"youedu/backend/services/gemini"
	"youedu/backend/services/progress"
	"youedu/backend/services/trails"
	"youedu/backend/utils"
)

type AssessmentController struct {
	Gemini   *gemini.Service
	Progress *progress.Service
	Trails   *trails.Service

	mu          sync.RWMutex
	checkpoints map[string][]models.CheckpointQuestion
}

func NewAssessmentController(gem *gemini.Service, prog *progress.Service, tr *trails.Service) *AssessmentController {
	return &AssessmentController{
		Gemini:      gem,
		Progress:    prog,
		Trails:      tr,
		checkpoints: make(map[string][]models.CheckpointQuestion),
	}
}

// GetCheckpoints returns the checkpoints for a video. When no batch was
// generated yet, a pool-question batch is synthesized for the given duration
// so the player always has something to surface.
func (ac *AssessmentController) GetCheckpoints(c *fiber.Ctx) error {
	videoID := c.Params("videoId")
	duration := c.QueryInt("duration_seconds", 300)
	if duration <= 0 {
		duration = 300
	}

	ac.mu.RLock()
	questions, ok := ac.checkpoints[videoID]
	ac.mu.RUnlock()
	if !ok {
		questions = gemini.FallbackCheckpoints(duration)
		ac.mu.Lock()
		ac.checkpoints[videoID] = questions
		ac.mu.Unlock()
	}
	return c.JSON(fiber.Map{
		"video_id":    videoID,
		"checkpoints": questions,
	})
}

// GenerateCheckpoints builds 4 in-video questions from the transcript. The
// batch never hard-fails: provider trouble yields pool questions instead.
func (ac *AssessmentController) GenerateCheckpoints(c *fiber.Ctx) error {
	var body struct {
		VideoID         string `json:"video_id"`
		Transcript      string `json:"transcript"`
		DurationSeconds int    `json:"duration_seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoID == "" || body.Transcript == "" {
		return utils.ValidationError(c, map[string]string{
			"video_id":   "video_id is required",
			"transcript": "transcript is required",
		})
	}
	if body.DurationSeconds <= 0 {
		return utils.ValidationError(c, map[string]string{"duration_seconds": "duration_seconds must be positive"})
	}

	questions := ac.Gemini.GenerateCheckpoints(c.UserContext(), body.Transcript, body.DurationSeconds, body.VideoID)

	ac.mu.Lock()
	ac.checkpoints[body.VideoID] = questions
	ac.mu.Unlock()

	return c.JSON(fiber.Map{
		"video_id":    body.VideoID,
		"checkpoints": questions,
	})
}

func (ac *AssessmentController) findQuestion(videoID, checkpointID string) (models.CheckpointQuestion, bool) {
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	for _, q := range ac.checkpoints[videoID] {
		if q.ID == checkpointID {
			return q, true
		}
	}
	return models.CheckpointQuestion{}, false
}

// AnswerCheckpoint grades one checkpoint answer and updates the score
// impact (+5 correct, -2 skip).
func (ac *AssessmentController) AnswerCheckpoint(c *fiber.Ctx) error {
	var body struct {
		VideoID        string `json:"video_id"`
		TrailID        string `json:"trail_id"`
		CheckpointID   string `json:"checkpoint_id"`
		SelectedAnswer int    `json:"selected_answer"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoID == "" || body.CheckpointID == "" {
		return utils.ValidationError(c, map[string]string{
			"video_id":      "video_id is required",
			"checkpoint_id": "checkpoint_id is required",
		})
	}

	question, ok := ac.findQuestion(body.VideoID, body.CheckpointID)
	if !ok {
		return utils.NotFound(c, "Checkpoint not found")
	}

	isCorrect := body.SelectedAnswer == question.CorrectAnswer
	ac.Progress.Tracker.RecordAnswer(body.TrailID, body.VideoID, body.CheckpointID, body.SelectedAnswer, isCorrect)
	videoProgress := ac.Progress.Tracker.Get(body.TrailID, body.VideoID)

	message := "Não foi dessa vez. Continue assistindo!"
	if isCorrect {
		message = "Correto! +5% na nota final!"
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"is_correct":     isCorrect,
		"message":        message,
		"score_impact":   videoProgress.CheckpointScoreImpact,
		"correct_answer": question.CorrectAnswer,
		"explanation":    question.Explanation,
	})
}

func (ac *AssessmentController) SkipCheckpoint(c *fiber.Ctx) error {
	var body struct {
		VideoID      string `json:"video_id"`
		TrailID      string `json:"trail_id"`
		CheckpointID string `json:"checkpoint_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoID == "" || body.CheckpointID == "" {
		return utils.ValidationError(c, map[string]string{
			"video_id":      "video_id is required",
			"checkpoint_id": "checkpoint_id is required",
		})
	}

	ac.Progress.Tracker.RecordSkip(body.TrailID, body.VideoID, body.CheckpointID)
	videoProgress := ac.Progress.Tracker.Get(body.TrailID, body.VideoID)

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Checkpoint pulado. -2% na nota final.",
		"score_impact": videoProgress.CheckpointScoreImpact,
	})
}

func (ac *AssessmentController) GetProgress(c *fiber.Ctx) error {
	trailID := c.Params("trailId")
	if trailID == "standalone" {
		trailID = ""
	}
	return c.JSON(ac.Progress.Tracker.Get(trailID, c.Params("videoId")))
}

// UpdateVideoProgress raises the watched time. Watched seconds never go
// backwards; a video is completed at 95% watched.
func (ac *AssessmentController) UpdateVideoProgress(c *fiber.Ctx) error {
	var body struct {
		VideoID        string `json:"video_id"`
		TrailID        string `json:"trail_id"`
		WatchedSeconds int    `json:"watched_seconds"`
		TotalSeconds   int    `json:"total_seconds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.VideoID == "" {
		return utils.ValidationError(c, map[string]string{"video_id": "video_id is required"})
	}

	videoProgress := ac.Progress.Tracker.UpdateWatchTime(body.TrailID, body.VideoID, body.WatchedSeconds, body.TotalSeconds)
	return c.JSON(videoProgress)
}

// GetFinalAssessment returns the trail's final assessment, generating it on
// first access.
func (ac *AssessmentController) GetFinalAssessment(c *fiber.Ctx) error {
	trailID := c.Params("trailId")

	trail, err := ac.Trails.Get(trailID)
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load trail")
	}

	assessment, ok := ac.Progress.Assessments.Get(trailID)
	if !ok {
		assessment = ac.Progress.Assessments.Generate(trailID, trail.Title)
	}
	return c.JSON(assessment)
}

// SubmitFinalAssessment grades the submitted answers. Pass mark is 60%.
func (ac *AssessmentController) SubmitFinalAssessment(c *fiber.Ctx) error {
	var body struct {
		TrailID string         `json:"trail_id"`
		Answers map[string]int `json:"answers"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if body.TrailID == "" {
		return utils.ValidationError(c, map[string]string{"trail_id": "trail_id is required"})
	}

	result, err := ac.Progress.Assessments.Submit(body.TrailID, body.Answers)
	if errors.Is(err, progress.ErrNoAssessment) {
		return utils.NotFound(c, "No assessment generated for this trail")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to grade assessment")
	}
	return c.JSON(result)
}

// GetEligibility derives certificate eligibility for a trail.
func (ac *AssessmentController) GetEligibility(c *fiber.Ctx) error {
	trailID := c.Params("trailId")

	videos, err := ac.trailVideos(trailID)
	if errors.Is(err, trails.ErrTrailNotFound) {
		return utils.NotFound(c, "Trail not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to load trail")
	}

	return c.JSON(ac.Progress.CheckEligibility(trailID, videos))
}

func (ac *AssessmentController) trailVideos(trailID string) ([]models.TrailVideo, error) {
	trail, err := ac.Trails.Get(trailID)
	if err != nil {
		return nil, err
	}
	return trail.Videos, nil
}
