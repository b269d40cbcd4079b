package models

import "time"

type Student struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	TotalXP   int       `json:"total_xp"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoSession is one sitting of a student watching a video.
type VideoSession struct {
	ID                  string     `json:"id"`
	StudentID           string     `json:"student_id"`
	VideoURL            string     `json:"video_url"`
	VideoTitle          string     `json:"video_title,omitempty"`
	TimeSpent           int        `json:"time_spent"`
	Score               float64    `json:"score"`
	ChallengesCompleted int        `json:"challenges_completed"`
	StartedAt           time.Time  `json:"started_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

type ChallengeAttempt struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	ChallengeID    string    `json:"challenge_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	XPEarned       int       `json:"xp_earned"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
