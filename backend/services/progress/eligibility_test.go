package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"youedu/backend/models"
)

func trailVideos(ids ...string) []models.TrailVideo {
	videos := make([]models.TrailVideo, 0, len(ids))
	for _, id := range ids {
		videos = append(videos, models.TrailVideo{VideoID: id, TrailID: "trail-1"})
	}
	return videos
}

func completeVideo(s *Service, trailID, videoID string) {
	s.Tracker.UpdateWatchTime(trailID, videoID, 300, 300)
}

func passAssessment(t *testing.T, s *Service) {
	t.Helper()
	assessment := s.Assessments.Generate("trail-1", "Trilha")
	answers := map[string]int{}
	for _, q := range assessment.Questions {
		answers[q.ID] = q.CorrectAnswer
	}
	_, err := s.Assessments.Submit("trail-1", answers)
	assert.NoError(t, err)
}

func TestEligibilityMissingEverything(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1", "v2")

	check := svc.CheckEligibility("trail-1", videos)

	assert.False(t, check.IsEligible)
	assert.Equal(t, 0.0, check.CompletionPercentage)
	assert.Nil(t, check.FinalAssessmentPassed)
	assert.Equal(t, []string{
		"Completar todos os vídeos (0/2)",
		"Realizar avaliação final",
	}, check.MissingRequirements)
}

func TestEligibilityPartialCompletion(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1", "v2")
	completeVideo(svc, "trail-1", "v1")

	check := svc.CheckEligibility("trail-1", videos)

	assert.Equal(t, 50.0, check.CompletionPercentage)
	assert.Equal(t, "Completar todos os vídeos (1/2)", check.MissingRequirements[0])
}

func TestEligibilityFailedAssessment(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1")
	completeVideo(svc, "trail-1", "v1")
	svc.Assessments.Generate("trail-1", "Trilha")
	_, err := svc.Assessments.Submit("trail-1", map[string]int{})
	assert.NoError(t, err)

	check := svc.CheckEligibility("trail-1", videos)

	assert.False(t, check.IsEligible)
	assert.NotNil(t, check.FinalAssessmentPassed)
	assert.False(t, *check.FinalAssessmentPassed)
	assert.Equal(t, []string{"Aprovação na avaliação final (mínimo 60%)"}, check.MissingRequirements)
}

func TestEligibilityGranted(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1", "v2")
	completeVideo(svc, "trail-1", "v1")
	completeVideo(svc, "trail-1", "v2")
	passAssessment(t, svc)

	check := svc.CheckEligibility("trail-1", videos)

	assert.True(t, check.IsEligible)
	assert.Equal(t, 100.0, check.CompletionPercentage)
	assert.Empty(t, check.MissingRequirements)
	assert.NotNil(t, check.FinalScore)
	assert.Equal(t, 100.0, *check.FinalScore)
}

func TestEligibilityCheckpointAverage(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1", "v2")

	svc.Tracker.RecordAnswer("trail-1", "v1", "cp-1", 0, true)  // +5
	svc.Tracker.RecordAnswer("trail-1", "v1", "cp-2", 0, true)  // +5
	svc.Tracker.RecordSkip("trail-1", "v2", "cp-3")             // -2

	check := svc.CheckEligibility("trail-1", videos)

	assert.Equal(t, 4.0, check.CheckpointAverage) // (10 + -2) / 2
}

func TestEligibilityRequirementOrdering(t *testing.T) {
	svc := NewService()
	videos := trailVideos("v1", "v2")
	svc.Assessments.Generate("trail-1", "Trilha")
	_, err := svc.Assessments.Submit("trail-1", map[string]int{})
	assert.NoError(t, err)

	check := svc.CheckEligibility("trail-1", videos)

	assert.Equal(t, []string{
		"Completar todos os vídeos (0/2)",
		"Aprovação na avaliação final (mínimo 60%)",
	}, check.MissingRequirements)
}
