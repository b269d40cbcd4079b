package models

type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the normalized output of every transcription provider.
type Transcript struct {
	Transcript string              `json:"transcript"`
	Segments   []TranscriptSegment `json:"segments"`
	Duration   float64             `json:"duration"`
	Language   string              `json:"language"`
	Provider   string              `json:"provider"`
}
