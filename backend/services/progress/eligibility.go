package progress

import (
	"fmt"

	"youedu/backend/models"
)

// Service groups the checkpoint tracker and final-assessment state so
// eligibility can be derived from both.
type Service struct {
	Tracker     *Tracker
	Assessments *Assessments
}

func NewService() *Service {
	return &Service{
		Tracker:     NewTracker(),
		Assessments: NewAssessments(),
	}
}

// CheckEligibility derives certificate eligibility for a trail. A student is
// eligible when every video is completed and the final assessment was passed.
// Missing requirements are listed in resolution order: finish the videos,
// take the assessment, pass the assessment.
func (s *Service) CheckEligibility(trailID string, videos []models.TrailVideo) *models.EligibilityCheck {
	check := &models.EligibilityCheck{
		TrailID:             trailID,
		MissingRequirements: []string{},
	}

	completed := 0
	scoreSum := 0.0
	scoredVideos := 0
	for _, v := range videos {
		p := s.Tracker.Get(trailID, v.VideoID)
		if p.Completed {
			completed++
		}
		if p.CheckpointsAnswered+p.CheckpointsSkipped > 0 {
			scoreSum += p.CheckpointScoreImpact
			scoredVideos++
		}
	}

	if len(videos) > 0 {
		check.CompletionPercentage = float64(completed) / float64(len(videos)) * 100.0
	}
	if scoredVideos > 0 {
		check.CheckpointAverage = scoreSum / float64(scoredVideos)
	}

	if check.CompletionPercentage < 100.0 {
		check.MissingRequirements = append(check.MissingRequirements,
			fmt.Sprintf("Completar todos os vídeos (%d/%d)", completed, len(videos)))
	}

	result, hasResult := s.Assessments.Result(trailID)
	if hasResult {
		check.FinalAssessmentPassed = &result.Passed
		check.FinalScore = &result.Percentage
		if !result.Passed {
			check.MissingRequirements = append(check.MissingRequirements,
				"Aprovação na avaliação final (mínimo 60%)")
		}
	} else {
		check.MissingRequirements = append(check.MissingRequirements,
			"Realizar avaliação final")
	}

	check.IsEligible = check.CompletionPercentage == 100.0 && hasResult && result.Passed
	return check
}
