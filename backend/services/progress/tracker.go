package progress

import (
	"sync"
	"time"

	"youedu/backend/models"
)

const completionThreshold = 0.95

// Key builds the progress map key. Videos watched outside a trail share the
// "standalone" namespace.
func Key(trailID, videoID string) string {
	if trailID == "" {
		trailID = "standalone"
	}
	return trailID + ":" + videoID
}

// ScoreImpact converts checkpoint performance into a score delta: +5 per
// correct answer, -2 per skip. Wrong answers neither add nor subtract.
func ScoreImpact(correct, skipped int) float64 {
	return 5.0*float64(correct) - 2.0*float64(skipped)
}

// Tracker keeps per-video watch time and checkpoint results in memory.
// State does not survive restarts.
type Tracker struct {
	mu       sync.RWMutex
	progress map[string]*models.VideoProgress
}

func NewTracker() *Tracker {
	return &Tracker{progress: make(map[string]*models.VideoProgress)}
}

func (t *Tracker) get(trailID, videoID string) *models.VideoProgress {
	key := Key(trailID, videoID)
	p, ok := t.progress[key]
	if !ok {
		p = &models.VideoProgress{VideoID: videoID, TrailID: trailID}
		t.progress[key] = p
	}
	return p
}

// RecordAnswer appends a checkpoint answer and recomputes the score impact.
func (t *Tracker) RecordAnswer(trailID, videoID, checkpointID string, selected int, isCorrect bool) models.CheckpointResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.get(trailID, videoID)
	result := models.CheckpointResult{
		CheckpointID:   checkpointID,
		VideoID:        videoID,
		TrailID:        trailID,
		SelectedAnswer: selected,
		IsCorrect:      isCorrect,
		AnsweredAt:     time.Now().UTC(),
	}
	p.CheckpointResults = append(p.CheckpointResults, result)
	p.CheckpointsAnswered++
	if isCorrect {
		p.CheckpointsCorrect++
	}
	p.CheckpointScoreImpact = ScoreImpact(p.CheckpointsCorrect, p.CheckpointsSkipped)
	return result
}

// RecordSkip appends a skipped checkpoint and recomputes the score impact.
func (t *Tracker) RecordSkip(trailID, videoID, checkpointID string) models.CheckpointResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.get(trailID, videoID)
	result := models.CheckpointResult{
		CheckpointID:   checkpointID,
		VideoID:        videoID,
		TrailID:        trailID,
		SelectedAnswer: -1,
		Skipped:        true,
		AnsweredAt:     time.Now().UTC(),
	}
	p.CheckpointResults = append(p.CheckpointResults, result)
	p.CheckpointsSkipped++
	p.CheckpointScoreImpact = ScoreImpact(p.CheckpointsCorrect, p.CheckpointsSkipped)
	return result
}

// UpdateWatchTime raises watched seconds (never lowers them) and marks the
// video completed once 95% of it was watched.
func (t *Tracker) UpdateWatchTime(trailID, videoID string, watched, total int) *models.VideoProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.get(trailID, videoID)
	if watched > p.WatchedSeconds {
		p.WatchedSeconds = watched
	}
	if total > 0 {
		p.TotalSeconds = total
	}
	if p.TotalSeconds > 0 && float64(p.WatchedSeconds) >= completionThreshold*float64(p.TotalSeconds) {
		p.Completed = true
	}
	return copyProgress(p)
}

// Get returns a copy of the progress for a (trail, video) pair, or an empty
// record when nothing was tracked yet.
func (t *Tracker) Get(trailID, videoID string) *models.VideoProgress {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.progress[Key(trailID, videoID)]
	if !ok {
		return &models.VideoProgress{VideoID: videoID, TrailID: trailID, CheckpointResults: []models.CheckpointResult{}}
	}
	return copyProgress(p)
}

func copyProgress(p *models.VideoProgress) *models.VideoProgress {
	cp := *p
	cp.CheckpointResults = append([]models.CheckpointResult{}, p.CheckpointResults...)
	return &cp
}
