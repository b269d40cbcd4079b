package gemini

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"youedu/backend/models"
)

const challengeSystemPrompt = `
Você é um tutor pedagógico especialista em criar experiências de aprendizado gamificadas e interativas.

SUA MISSÃO:
Analisar o vídeo educacional fornecido e criar desafios interativos que testem a compreensão do aluno em momentos estratégicos.

DIRETRIZES:
1. Identifique momentos-chave para pausar e verificar o conhecimento.
2. Crie quizzes de múltipla escolha e exercícios de código.
3. Distribua os desafios ao longo do vídeo.

SAÍDA ESPERADA (JSON):
{
  "challenges": [
    {
      "timestamp": 45,
      "timestampLabel": "00:45",
      "type": "quiz",
      "title": "Conceito de Variáveis",
      "content": "Qual a função principal de uma variável?",
      "options": ["Armazenar dados", "Loop", "Função", "Texto"],
      "correctAnswer": 0,
      "summary": "Explicação..."
    }
  ]
}
`

// FallbackChallenges is returned when the provider is unavailable, so the
// challenge path never hard-fails.
func FallbackChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:             "fallback-1",
			Timestamp:      30,
			TimestampLabel: "00:30",
			Type:           "quiz",
			Title:          "Conceito Inicial",
			Content:        "Qual o objetivo principal apresentado?",
			Options:        []string{"Opção A", "Opção B", "Opção C", "Opção D"},
			CorrectAnswer:  0,
			Summary:        "Fallback challenge generated due to AI error.",
		},
	}
}

// AnalyzeVideo generates timestamped challenges from raw video bytes. Any
// provider failure degrades to the fixed fallback list; callers never see an
// error from this path.
func (s *Service) AnalyzeVideo(ctx context.Context, videoBase64, mimeType string) []models.Challenge {
	key := "challenges:" + contentHash(mimeType, videoBase64)

	var cached []models.Challenge
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached
	}

	if !s.client.Configured() {
		s.logger.Println("GEMINI_API_KEY not set, returning fallback challenges")
		return FallbackChallenges()
	}

	parts := []Part{
		DataPart(videoBase64, mimeType),
		TextPart(challengeSystemPrompt),
	}
	cfg := &GenerationConfig{
		Temperature:      0.7,
		TopP:             0.95,
		TopK:             40,
		MaxOutputTokens:  2048,
		ResponseMIMEType: "application/json",
	}

	var payload struct {
		Challenges []models.Challenge `json:"challenges"`
	}
	if err := s.client.GenerateJSON(ctx, parts, cfg, &payload); err != nil {
		s.logger.Printf("Error analyzing video: %v, falling back to mock challenges", err)
		return FallbackChallenges()
	}

	now := time.Now().UnixMilli()
	for i := range payload.Challenges {
		payload.Challenges[i].ID = fmt.Sprintf("ai-%d-%d", now, i)
	}

	if err := s.cache.Set(ctx, key, payload.Challenges); err != nil {
		s.logger.Printf("Failed to cache challenges: %v", err)
	}

	return payload.Challenges
}

func contentHash(mimeType, data string) string {
	h := sha256.New()
	h.Write([]byte(mimeType))
	h.Write([]byte(":"))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
