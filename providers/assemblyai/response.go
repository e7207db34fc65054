// Package assemblyai maps AssemblyAI transcript objects into the unified
// transcript schema.
package assemblyai

import "encoding/json"

// Transcript is the body of GET /v2/transcript/{id}.
type Transcript struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	Text          *string     `json:"text,omitempty"`
	LanguageCode  *string     `json:"language_code,omitempty"`
	Confidence    *float64    `json:"confidence,omitempty"`
	AudioDuration *float64    `json:"audio_duration,omitempty"`
	Words         []Word      `json:"words,omitempty"`
	Utterances    []Utterance `json:"utterances,omitempty"`
	Summary       *string     `json:"summary,omitempty"`
	Error         *string     `json:"error,omitempty"`

	Chapters          json.RawMessage `json:"chapters,omitempty"`
	Entities          json.RawMessage `json:"entities,omitempty"`
	AutoHighlights    json.RawMessage `json:"auto_highlights_result,omitempty"`
	SentimentAnalysis json.RawMessage `json:"sentiment_analysis_results,omitempty"`
	ContentSafety     json.RawMessage `json:"content_safety_labels,omitempty"`
	IABCategories     json.RawMessage `json:"iab_categories_result,omitempty"`
}

// Word is one recognized token. Times are in milliseconds.
type Word struct {
	Text       string   `json:"text"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
	Speaker    *string  `json:"speaker,omitempty"`
}

// Utterance is one diarized segment. Times are in milliseconds.
type Utterance struct {
	Text       string   `json:"text"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
	Speaker    *string  `json:"speaker,omitempty"`
	Words      []Word   `json:"words,omitempty"`
}

// WebhookPayload is the notification AssemblyAI posts when a transcript
// changes state.
type WebhookPayload struct {
	TranscriptID string `json:"transcript_id"`
	Status       string `json:"status"`
}
