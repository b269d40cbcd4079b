package students

import (
	"errors"
	"time"

	"youedu/backend/models"
	"youedu/backend/store"
)

const (
	tableStudents          = "students"
	tableVideoSessions     = "video_sessions"
	tableChallengeAttempts = "challenge_attempts"

	xpPerCorrectChallenge = 10
)

var ErrStudentNotFound = errors.New("student not found")

// Level derives the student level from accumulated XP: 100 XP per level,
// starting at level 1.
func Level(totalXP int) int {
	return totalXP/100 + 1
}

type Service struct {
	store store.RowStore
}

func NewService(st store.RowStore) *Service {
	return &Service{store: st}
}

func (s *Service) GetByID(id string) (*models.Student, error) {
	row, err := s.store.GetRecordByID(tableStudents, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	var student models.Student
	if err := store.Decode(row, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Service) GetByEmail(email string) (*models.Student, error) {
	rows, err := s.store.GetAllRecords(tableStudents, store.Filters{"email": email})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrStudentNotFound
	}
	var student models.Student
	if err := store.Decode(rows[0], &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *Service) List() ([]models.Student, error) {
	rows, err := s.store.GetAllRecords(tableStudents, nil)
	if err != nil {
		return nil, err
	}
	out := make([]models.Student, 0, len(rows))
	for _, row := range rows {
		var student models.Student
		if err := store.Decode(row, &student); err != nil {
			return nil, err
		}
		out = append(out, student)
	}
	return out, nil
}

// SyncUser upserts a student by email. Existing students keep their XP and
// level; name and avatar are refreshed.
func (s *Service) SyncUser(email, name, avatarURL string) (*models.Student, error) {
	existing, err := s.GetByEmail(email)
	if err == nil {
		updated, err := s.store.UpdateRecord(tableStudents, existing.ID, store.Row{
			"name":       name,
			"avatar_url": avatarURL,
		})
		if err != nil {
			return nil, err
		}
		var student models.Student
		if err := store.Decode(updated, &student); err != nil {
			return nil, err
		}
		return &student, nil
	}
	if !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}

	row, err := s.store.CreateRecord(tableStudents, store.Row{
		"email":      email,
		"name":       name,
		"avatar_url": avatarURL,
		"total_xp":   0,
		"level":      1,
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	var student models.Student
	if err := store.Decode(row, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// AddXP adds experience points and recomputes the level.
func (s *Service) AddXP(id string, amount int) (*models.Student, error) {
	student, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	totalXP := student.TotalXP + amount
	updated, err := s.store.UpdateRecord(tableStudents, id, store.Row{
		"total_xp": totalXP,
		"level":    Level(totalXP),
	})
	if err != nil {
		return nil, err
	}
	var out models.Student
	if err := store.Decode(updated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) StartSession(studentID, videoURL, videoTitle string) (*models.VideoSession, error) {
	if _, err := s.GetByID(studentID); err != nil {
		return nil, err
	}
	row, err := s.store.CreateRecord(tableVideoSessions, store.Row{
		"student_id":  studentID,
		"video_url":   videoURL,
		"video_title": videoTitle,
		"started_at":  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	var session models.VideoSession
	if err := store.Decode(row, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Service) CompleteSession(sessionID string, timeSpent int, score float64, challengesCompleted int) (*models.VideoSession, error) {
	row, err := s.store.UpdateRecord(tableVideoSessions, sessionID, store.Row{
		"time_spent":           timeSpent,
		"score":                score,
		"challenges_completed": challengesCompleted,
		"completed_at":         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	var session models.VideoSession
	if err := store.Decode(row, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RecordAttempt stores a challenge attempt and, when correct, awards XP to
// the session's student.
func (s *Service) RecordAttempt(sessionID, challengeID string, selected int, isCorrect bool) (*models.ChallengeAttempt, error) {
	sessionRow, err := s.store.GetRecordByID(tableVideoSessions, sessionID)
	if err != nil {
		return nil, err
	}
	var session models.VideoSession
	if err := store.Decode(sessionRow, &session); err != nil {
		return nil, err
	}

	xp := 0
	if isCorrect {
		xp = xpPerCorrectChallenge
	}

	row, err := s.store.CreateRecord(tableChallengeAttempts, store.Row{
		"session_id":      sessionID,
		"challenge_id":    challengeID,
		"selected_answer": selected,
		"is_correct":      isCorrect,
		"xp_earned":       xp,
		"attempted_at":    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if xp > 0 {
		if _, err := s.AddXP(session.StudentID, xp); err != nil {
			return nil, err
		}
	}

	var attempt models.ChallengeAttempt
	if err := store.Decode(row, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// Stats summarizes a student's activity.
type Stats struct {
	StudentID        string  `json:"student_id"`
	TotalXP          int     `json:"total_xp"`
	Level            int     `json:"level"`
	SessionCount     int     `json:"session_count"`
	TotalTimeSpent   int     `json:"total_time_spent"`
	AttemptCount     int     `json:"attempt_count"`
	CorrectAttempts  int     `json:"correct_attempts"`
	AccuracyPercent  float64 `json:"accuracy_percent"`
}

func (s *Service) Stats(studentID string) (*Stats, error) {
	student, err := s.GetByID(studentID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		StudentID: student.ID,
		TotalXP:   student.TotalXP,
		Level:     student.Level,
	}

	sessions, err := s.store.GetAllRecords(tableVideoSessions, store.Filters{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	stats.SessionCount = len(sessions)

	for _, row := range sessions {
		var session models.VideoSession
		if err := store.Decode(row, &session); err != nil {
			return nil, err
		}
		stats.TotalTimeSpent += session.TimeSpent

		attempts, err := s.store.GetAllRecords(tableChallengeAttempts, store.Filters{"session_id": session.ID})
		if err != nil {
			return nil, err
		}
		for _, attemptRow := range attempts {
			var attempt models.ChallengeAttempt
			if err := store.Decode(attemptRow, &attempt); err != nil {
				return nil, err
			}
			stats.AttemptCount++
			if attempt.IsCorrect {
				stats.CorrectAttempts++
			}
		}
	}

	if stats.AttemptCount > 0 {
		stats.AccuracyPercent = float64(stats.CorrectAttempts) / float64(stats.AttemptCount) * 100.0
	}
	return stats, nil
}
