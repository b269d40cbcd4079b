package models

import "time"

// Trail is a named ordered collection of videos forming a learning path.
type Trail struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
}

type TrailVideo struct {
	ID              string `json:"id"`
	TrailID         string `json:"trail_id"`
	VideoURL        string `json:"video_url"`
	VideoProvider   string `json:"video_provider,omitempty"`
	VideoID         string `json:"video_id,omitempty"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	OrderIndex      int    `json:"order_index"`
}

// TrailProgress tracks a user's per-video completion inside a trail.
type TrailProgress struct {
	TrailID        string   `json:"trail_id"`
	VideoID        string   `json:"video_id"`
	WatchedSeconds int      `json:"watched_seconds"`
	Completed      bool     `json:"completed"`
	QuizScore      *float64 `json:"quiz_score,omitempty"`
}
