package models

// Challenge is a timestamped interactive exercise generated from a video.
// Type is "quiz" or "code".
type Challenge struct {
	ID             string   `json:"id"`
	Timestamp      int      `json:"timestamp"`
	TimestampLabel string   `json:"timestampLabel"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Options        []string `json:"options,omitempty"`
	CorrectAnswer  int      `json:"correctAnswer"`
	Summary        string   `json:"summary,omitempty"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type CodingExercise struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StarterCode    string `json:"starterCode,omitempty"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
}

// Quiz is the generated final quiz for a transcript. Questions are worth 20
// points each, coding exercises 50.
type Quiz struct {
	Questions       []QuizQuestion   `json:"questions"`
	CodingExercises []CodingExercise `json:"codingExercises,omitempty"`
	TotalPoints     int              `json:"totalPoints"`
}
