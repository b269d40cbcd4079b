package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youedu/backend/models"
)

// CheckpointPercentages are the playback marks where questions surface.
var CheckpointPercentages = []float64{0.25, 0.50, 0.75, 1.00}

const minWordsPerSegment = 10

const checkpointSystemPrompt = `
Você é um tutor pedagógico especialista. Sua tarefa é criar UMA pergunta de múltipla escolha
baseada no trecho de transcrição fornecido.

REGRAS:
1. A pergunta deve testar a compreensão do conteúdo do trecho.
2. Crie 4 opções de resposta (A, B, C, D).
3. Apenas uma resposta deve estar correta.
4. Inclua uma breve explicação da resposta correta.
5. A pergunta deve ser clara e objetiva.

FORMATO DE SAÍDA (JSON):
{
    "question": "Sua pergunta aqui?",
    "options": ["Opção A", "Opção B", "Opção C", "Opção D"],
    "correct_answer": 0,
    "explanation": "Explicação breve da resposta correta."
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional.
`

var fallbackQuestionPool = []models.CheckpointQuestion{
	{
		Question:      "Qual o principal conceito apresentado nesta seção do vídeo?",
		Options:       []string{"Conceito A", "Conceito B", "Conceito C", "Conceito D"},
		CorrectAnswer: 0,
		Explanation:   "Este é um checkpoint de verificação de aprendizado.",
	},
	{
		Question:      "O que foi demonstrado neste trecho do conteúdo?",
		Options:       []string{"Um exemplo prático", "Uma teoria abstrata", "Um exercício", "Uma revisão"},
		CorrectAnswer: 0,
		Explanation:   "Preste atenção aos exemplos apresentados no vídeo.",
	},
	{
		Question:      "Qual próximo passo seria adequado após este conteúdo?",
		Options:       []string{"Praticar com exercícios", "Avançar para o próximo tópico", "Revisar fundamentos", "Fazer anotações"},
		CorrectAnswer: 0,
		Explanation:   "A prática é fundamental para fixar o conhecimento.",
	},
	{
		Question:      "Qual o resumo principal deste segmento?",
		Options:       []string{"Introdução ao tema", "Aprofundamento técnico", "Conclusão do assunto", "Revisão geral"},
		CorrectAnswer: 0,
		Explanation:   "Cada segmento do vídeo contribui para o aprendizado completo.",
	},
}

// SplitTranscript splits a transcript into numSegments roughly equal
// word-count segments. Short transcripts (under 10 words per segment) are
// duplicated whole rather than producing degenerate empty segments.
func SplitTranscript(transcript string, numSegments int) []string {
	words := strings.Fields(transcript)

	if len(words) < numSegments*minWordsPerSegment {
		segments := make([]string, numSegments)
		for i := range segments {
			segments[i] = transcript
		}
		return segments
	}

	perSegment := len(words) / numSegments
	segments := make([]string, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		start := i * perSegment
		end := start + perSegment
		if i == numSegments-1 {
			end = len(words)
		}
		segments = append(segments, strings.Join(words[start:end], " "))
	}
	return segments
}

// CheckpointTimestamps maps the percentage marks onto a concrete duration.
// The 100% mark is pulled back so the checkpoint fires before the video
// actually ends.
func CheckpointTimestamps(durationSeconds int) []int {
	timestamps := make([]int, len(CheckpointPercentages))
	for i, pct := range CheckpointPercentages {
		timestamps[i] = int(float64(durationSeconds) * pct)
	}
	if last := len(timestamps) - 1; timestamps[last] >= durationSeconds {
		clamped := durationSeconds - 5
		if pct95 := int(float64(durationSeconds) * 0.95); pct95 > clamped {
			clamped = pct95
		}
		timestamps[last] = clamped
	}
	return timestamps
}

func fallbackQuestion(segmentIndex, timestampSeconds int) models.CheckpointQuestion {
	q := fallbackQuestionPool[segmentIndex%len(fallbackQuestionPool)]
	q.ID = fmt.Sprintf("fallback-cp-%d-%d", segmentIndex, time.Now().Unix())
	q.TimestampSeconds = timestampSeconds
	return q
}

// FallbackCheckpoints builds a full pool-question batch at the standard
// percentage marks, for when no generated batch exists for a video.
func FallbackCheckpoints(durationSeconds int) []models.CheckpointQuestion {
	timestamps := CheckpointTimestamps(durationSeconds)
	checkpoints := make([]models.CheckpointQuestion, 0, len(timestamps))
	for i, ts := range timestamps {
		checkpoints = append(checkpoints, fallbackQuestion(i, ts))
	}
	return checkpoints
}

// GenerateCheckpoints builds exactly one question per transcript segment at
// the 25/50/75/100% marks. Per-segment provider failures degrade to the
// fixed question pool; the batch itself never fails.
func (s *Service) GenerateCheckpoints(ctx context.Context, transcript string, durationSeconds int, videoID string) []models.CheckpointQuestion {
	key := fmt.Sprintf("checkpoints:%s:%d", videoID, durationSeconds)

	var cached []models.CheckpointQuestion
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached
	}

	segments := SplitTranscript(transcript, len(CheckpointPercentages))
	timestamps := CheckpointTimestamps(durationSeconds)

	if !s.client.Configured() {
		s.logger.Println("GEMINI_API_KEY not set, returning fallback checkpoint questions")
		checkpoints := FallbackCheckpoints(durationSeconds)
		if err := s.cache.Set(ctx, key, checkpoints); err != nil {
			s.logger.Printf("Failed to cache checkpoints: %v", err)
		}
		return checkpoints
	}

	checkpoints := make([]models.CheckpointQuestion, 0, len(segments))
	for i, segment := range segments {
		question, err := s.generateSegmentQuestion(ctx, segment, i)
		if err != nil {
			s.logger.Printf("Error generating question for segment %d: %v", i, err)
			checkpoints = append(checkpoints, fallbackQuestion(i, timestamps[i]))
			continue
		}
		question.ID = fmt.Sprintf("cp-%s-%d-%d", videoID, i, time.Now().UnixMilli())
		question.TimestampSeconds = timestamps[i]
		checkpoints = append(checkpoints, question)
	}

	if err := s.cache.Set(ctx, key, checkpoints); err != nil {
		s.logger.Printf("Failed to cache checkpoints: %v", err)
	}

	return checkpoints
}

func (s *Service) generateSegmentQuestion(ctx context.Context, segment string, segmentIndex int) (models.CheckpointQuestion, error) {
	if len(segment) > 2000 {
		segment = segment[:2000]
	}

	prompt := fmt.Sprintf(`
%s

TRECHO DA TRANSCRIÇÃO (Segmento %d):
"""
%s
"""

Crie uma pergunta baseada neste trecho.
`, checkpointSystemPrompt, segmentIndex+1, segment)

	cfg := &GenerationConfig{
		Temperature:      0.7,
		TopP:             0.95,
		TopK:             40,
		MaxOutputTokens:  1024,
		ResponseMIMEType: "application/json",
	}

	var question models.CheckpointQuestion
	if err := s.client.GenerateJSON(ctx, []Part{TextPart(prompt)}, cfg, &question); err != nil {
		return models.CheckpointQuestion{}, err
	}
	return question, nil
}
