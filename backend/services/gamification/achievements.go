package gamification

import "youedu/backend/models"

// Achievements derives the achievement list from the student's session
// counters.
func (s *Service) Achievements(studentID string) []models.Achievement {
	sess := s.Get(studentID)

	defs := []models.Achievement{
		{ID: "streak-7", Name: "Semana de fogo", Description: "Estude 7 dias seguidos", Icon: "🔥", Category: "streak", Target: 7, Current: sess.StreakDays},
		{ID: "streak-30", Name: "Mês dedicado", Description: "Estude 30 dias seguidos", Icon: "🏆", Category: "streak", Target: 30, Current: sess.StreakDays},
		{ID: "questions-10", Name: "Curioso", Description: "Responda 10 perguntas em um dia", Icon: "❓", Category: "questions", Target: 10, Current: sess.QuestionsToday},
		{ID: "correct-5", Name: "Em sequência", Description: "Acerte 5 perguntas seguidas", Icon: "🎯", Category: "questions", Target: 5, Current: sess.ConsecutiveCorrect},
		{ID: "code-3", Name: "Mão na massa", Description: "Complete 3 desafios de código em um dia", Icon: "💻", Category: "code", Target: 3, Current: sess.CodeChallengesToday},
		{ID: "watch-3600", Name: "Maratonista", Description: "Assista 1 hora de vídeo em um dia", Icon: "📺", Category: "watch", Target: 3600, Current: sess.WatchTimeToday},
	}

	for i := range defs {
		if defs[i].Current > defs[i].Target {
			defs[i].Current = defs[i].Target
		}
		defs[i].Completed = defs[i].Current >= defs[i].Target
	}
	return defs
}

// Missions derives the daily mission list from the session counters.
func (s *Service) Missions(studentID string) []models.Mission {
	sess := s.Get(studentID)

	defs := []models.Mission{
		{ID: "daily-questions", Title: "Responder 5 perguntas", Description: "Responda 5 perguntas de checkpoint hoje", Icon: "📝", RewardXP: 25, Progress: sess.QuestionsToday, Target: 5},
		{ID: "daily-correct", Title: "Acertar 3 perguntas", Description: "Acerte 3 perguntas hoje", Icon: "✅", RewardXP: 30, Progress: sess.TotalCorrectToday, Target: 3},
		{ID: "daily-watch", Title: "Assistir 20 minutos", Description: "Assista 20 minutos de vídeo hoje", Icon: "🎬", RewardXP: 20, Progress: sess.WatchTimeToday, Target: 1200},
		{ID: "daily-code", Title: "Completar 1 desafio de código", Description: "Finalize um desafio de código hoje", Icon: "⌨️", RewardXP: 50, Progress: sess.CodeChallengesToday, Target: 1},
	}

	for i := range defs {
		if defs[i].Progress > defs[i].Target {
			defs[i].Progress = defs[i].Target
		}
	}
	return defs
}
