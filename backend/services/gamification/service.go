package gamification

import (
	"sync"
	"time"

	"youedu/backend/models"
)

const dateLayout = "2006-01-02"

// Service keeps per-student daily gamification sessions in memory. Counters
// reset at the first activity of a new day; the streak carries over when the
// previous activity happened yesterday and resets otherwise.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	now      func() time.Time
}

func NewService() *Service {
	return &Service{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

func (s *Service) today() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *Service) yesterday() string {
	return s.now().UTC().AddDate(0, 0, -1).Format(dateLayout)
}

// session returns the student's current-day session, rolling counters and
// streak over when the day changed. Caller holds the lock.
func (s *Service) session(studentID string) *models.Session {
	today := s.today()

	sess, ok := s.sessions[studentID]
	if !ok {
		sess = &models.Session{StreakDays: 1, LastActivityDate: today}
		s.sessions[studentID] = sess
		return sess
	}

	if sess.LastActivityDate != today {
		if sess.LastActivityDate == s.yesterday() {
			sess.StreakDays++
		} else {
			sess.StreakDays = 1
		}
		sess.QuestionsToday = 0
		sess.XPToday = 0
		sess.TotalCorrectToday = 0
		sess.CodeChallengesToday = 0
		sess.WatchTimeToday = 0
		sess.ConsecutiveCorrect = 0
		sess.LastActivityDate = today
	}
	return sess
}

// Get returns a copy of the student's session for today.
func (s *Service) Get(studentID string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(studentID)
}

// RecordAnswer updates the daily counters for one answered question.
func (s *Service) RecordAnswer(studentID string, isCorrect bool, xp int) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(studentID)
	sess.QuestionsToday++
	sess.XPToday += xp
	if isCorrect {
		sess.TotalCorrectToday++
		sess.ConsecutiveCorrect++
	} else {
		sess.ConsecutiveCorrect = 0
	}
	return *sess
}

// AddWatchTime accumulates seconds of video watched today.
func (s *Service) AddWatchTime(studentID string, seconds int) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(studentID)
	if seconds > 0 {
		sess.WatchTimeToday += seconds
	}
	return *sess
}

// CompleteCodeChallenge counts a finished coding exercise and its XP.
func (s *Service) CompleteCodeChallenge(studentID string, xp int) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(studentID)
	sess.CodeChallengesToday++
	sess.XPToday += xp
	return *sess
}

// ResetStreak zeroes the streak, keeping today's counters.
func (s *Service) ResetStreak(studentID string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(studentID)
	sess.StreakDays = 0
	return *sess
}
