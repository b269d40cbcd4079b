package models

import "time"

// CheckpointQuestion is an in-video comprehension question surfaced at a
// fixed playback percentage (25/50/75/100).
type CheckpointQuestion struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectAnswer    int      `json:"correct_answer"`
	Explanation      string   `json:"explanation,omitempty"`
	TimestampSeconds int      `json:"timestamp_seconds"`
}

// CheckpointResult records one student response to a checkpoint.
// SelectedAnswer is -1 when the checkpoint was skipped.
type CheckpointResult struct {
	CheckpointID   string    `json:"checkpoint_id"`
	VideoID        string    `json:"video_id"`
	TrailID        string    `json:"trail_id,omitempty"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	Skipped        bool      `json:"skipped"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// VideoProgress aggregates watch time and checkpoint performance for one
// (trail, video) pair.
type VideoProgress struct {
	VideoID              string             `json:"video_id"`
	TrailID              string             `json:"trail_id,omitempty"`
	WatchedSeconds       int                `json:"watched_seconds"`
	TotalSeconds         int                `json:"total_seconds,omitempty"`
	Completed            bool               `json:"completed"`
	CheckpointResults    []CheckpointResult `json:"checkpoint_results"`
	CheckpointsAnswered  int                `json:"checkpoints_answered"`
	CheckpointsSkipped   int                `json:"checkpoints_skipped"`
	CheckpointsCorrect   int                `json:"checkpoints_correct"`
	CheckpointScoreImpact float64           `json:"checkpoint_score_impact"`
}

type FinalAssessmentQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Points        int      `json:"points"`
}

type FinalAssessment struct {
	ID               string                    `json:"id"`
	TrailID          string                    `json:"trail_id"`
	Questions        []FinalAssessmentQuestion `json:"questions"`
	TotalPoints      int                       `json:"total_points"`
	TimeLimitMinutes int                       `json:"time_limit_minutes"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

type AssessmentResult struct {
	AssessmentID      string    `json:"assessment_id"`
	TrailID           string    `json:"trail_id"`
	Score             int       `json:"score"`
	TotalPoints       int       `json:"total_points"`
	Percentage        float64   `json:"percentage"`
	Passed            bool      `json:"passed"`
	PassingPercentage float64   `json:"passing_percentage"`
	CompletedAt       time.Time `json:"completed_at"`
}

// EligibilityCheck is derived on demand, never stored.
type EligibilityCheck struct {
	TrailID               string   `json:"trail_id"`
	IsEligible            bool     `json:"is_eligible"`
	CompletionPercentage  float64  `json:"completion_percentage"`
	CheckpointAverage     float64  `json:"checkpoint_average"`
	FinalAssessmentPassed *bool    `json:"final_assessment_passed"`
	FinalScore            *float64 `json:"final_score"`
	MissingRequirements   []string `json:"missing_requirements"`
}
