package gemini

import (
	"context"
	"fmt"

	"youedu/backend/models"
)

const maxQuizTranscriptChars = 10000

// codingExerciseMinDuration is the video length, in seconds, from which the
// quiz may include a coding exercise.
const codingExerciseMinDuration = 600

// CalculateQuizQuestions returns the question count for a video duration:
// one question per 3 minutes, minimum 2, maximum 10.
func CalculateQuizQuestions(durationSeconds int) int {
	minutes := float64(durationSeconds) / 60
	n := int(minutes/3) + 1
	if n < 2 {
		n = 2
	}
	if n > 10 {
		n = 10
	}
	return n
}

// GenerateQuiz creates a quiz from a transcript. Unlike challenges and
// checkpoints there is no local fallback: provider failures propagate.
func (s *Service) GenerateQuiz(ctx context.Context, transcript string, durationSeconds int) (*models.Quiz, error) {
	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	numQuestions := CalculateQuizQuestions(durationSeconds)

	codingInstruction := ""
	if durationSeconds >= codingExerciseMinDuration {
		codingInstruction = " e 1 exercício de código (se o conteúdo envolver programação)"
	}

	if len(transcript) > maxQuizTranscriptChars {
		transcript = transcript[:maxQuizTranscriptChars]
	}

	prompt := fmt.Sprintf(`
Com base no seguinte texto transcrito de uma aula, crie um quiz educativo.

TEXTO:
"%s"

TAREFA:
Gere EXATAMENTE %d perguntas de múltipla escolha%s.

FORMATO JSON:
{
    "questions": [
        {
            "id": "q1",
            "question": "...",
            "options": ["A", "B", "C", "D"],
            "correctAnswer": 0,
            "explanation": "..."
        }
    ],
    "codingExercises": [
        {
            "id": "ex1",
            "title": "...",
            "description": "...",
            "starterCode": "...",
            "expectedOutput": "..."
        }
    ]
}
`, transcript, numQuestions, codingInstruction)

	cfg := &GenerationConfig{
		Temperature:      0.5,
		ResponseMIMEType: "application/json",
	}

	var quiz models.Quiz
	if err := s.client.GenerateJSON(ctx, []Part{TextPart(prompt)}, cfg, &quiz); err != nil {
		return nil, err
	}

	quiz.TotalPoints = len(quiz.Questions)*20 + len(quiz.CodingExercises)*50
	return &quiz, nil
}
