package progress

import (
	"fmt"
	"sync"
	"time"

	"youedu/backend/models"
)

const (
	finalQuestionCount   = 10
	pointsPerQuestion    = 10
	assessmentTimeLimit  = 30
	// PassingPercentage is the minimum final-assessment percentage for
	// approval.
	PassingPercentage = 60.0
)

// ErrNoAssessment is returned when a submission arrives for a trail that
// never generated an assessment.
var ErrNoAssessment = fmt.Errorf("nenhuma avaliação gerada para esta trilha")

// Assessments holds generated final assessments and their latest results,
// keyed by trail.
type Assessments struct {
	mu      sync.RWMutex
	byTrail map[string]*models.FinalAssessment
	results map[string]*models.AssessmentResult
}

func NewAssessments() *Assessments {
	return &Assessments{
		byTrail: make(map[string]*models.FinalAssessment),
		results: make(map[string]*models.AssessmentResult),
	}
}

// Generate builds the final assessment for a trail: 10 questions worth 10
// points each, 30-minute limit. Re-generating replaces the previous one.
func (a *Assessments) Generate(trailID, trailTitle string) *models.FinalAssessment {
	a.mu.Lock()
	defer a.mu.Unlock()

	questions := make([]models.FinalAssessmentQuestion, 0, finalQuestionCount)
	for i := 0; i < finalQuestionCount; i++ {
		questions = append(questions, models.FinalAssessmentQuestion{
			ID:       fmt.Sprintf("fa-%s-%d", trailID, i),
			Question: fmt.Sprintf("Questão %d sobre o conteúdo da trilha \"%s\"", i+1, trailTitle),
			Options: []string{
				"Alternativa A",
				"Alternativa B",
				"Alternativa C",
				"Alternativa D",
			},
			CorrectAnswer: i % 4,
			Points:        pointsPerQuestion,
		})
	}

	assessment := &models.FinalAssessment{
		ID:               fmt.Sprintf("assessment-%s-%d", trailID, time.Now().Unix()),
		TrailID:          trailID,
		Questions:        questions,
		TotalPoints:      finalQuestionCount * pointsPerQuestion,
		TimeLimitMinutes: assessmentTimeLimit,
		GeneratedAt:      time.Now().UTC(),
	}
	a.byTrail[trailID] = assessment
	return assessment
}

func (a *Assessments) Get(trailID string) (*models.FinalAssessment, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	assessment, ok := a.byTrail[trailID]
	return assessment, ok
}

// Submit grades the answers against the generated assessment. Unanswered
// questions score zero. Pass at 60% or higher.
func (a *Assessments) Submit(trailID string, answers map[string]int) (*models.AssessmentResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	assessment, ok := a.byTrail[trailID]
	if !ok {
		return nil, ErrNoAssessment
	}

	score := 0
	for _, q := range assessment.Questions {
		if selected, answered := answers[q.ID]; answered && selected == q.CorrectAnswer {
			score += q.Points
		}
	}

	percentage := 0.0
	if assessment.TotalPoints > 0 {
		percentage = float64(score) / float64(assessment.TotalPoints) * 100.0
	}

	result := &models.AssessmentResult{
		AssessmentID:      assessment.ID,
		TrailID:           trailID,
		Score:             score,
		TotalPoints:       assessment.TotalPoints,
		Percentage:        percentage,
		Passed:            percentage >= PassingPercentage,
		PassingPercentage: PassingPercentage,
		CompletedAt:       time.Now().UTC(),
	}
	a.results[trailID] = result
	return result, nil
}

// Result returns the latest submission for a trail.
func (a *Assessments) Result(trailID string) (*models.AssessmentResult, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	result, ok := a.results[trailID]
	return result, ok
}
