package models

// Session holds a student's daily gamification counters. Daily counters
// reset at the first activity of a new day; the streak survives when the
// previous activity was yesterday.
type Session struct {
	StreakDays          int    `json:"streak_days"`
	QuestionsToday      int    `json:"questions_today"`
	XPToday             int    `json:"xp_today"`
	TotalCorrectToday   int    `json:"total_correct_today"`
	CodeChallengesToday int    `json:"code_challenges_today"`
	WatchTimeToday      int    `json:"watch_time_today"`
	ConsecutiveCorrect  int    `json:"consecutive_correct"`
	LastActivityDate    string `json:"last_activity_date"`
}

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Target      int    `json:"target"`
	Current     int    `json:"current"`
	Completed   bool   `json:"completed"`
}

type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	RewardXP    int    `json:"reward_xp"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
}
