// Package whisper maps OpenAI audio transcription responses (json,
// verbose_json and diarized_json formats) into the unified transcript schema.
package whisper

import "encoding/json"

// Response covers every JSON response format of POST /v1/audio/transcriptions.
type Response struct {
	Task     string          `json:"task,omitempty"`
	Language string          `json:"language,omitempty"`
	Duration *float64        `json:"duration,omitempty"`
	Text     string          `json:"text"`
	Segments []Segment       `json:"segments,omitempty"`
	Words    []Word          `json:"words,omitempty"`
	Usage    json.RawMessage `json:"usage,omitempty"`
}

// Segment is a time-aligned portion of the transcript. Speaker is only set
// by diarizing models.
type Segment struct {
	Text    string   `json:"text"`
	Start   float64  `json:"start"`
	End     float64  `json:"end"`
	Speaker *string  `json:"speaker,omitempty"`
	Type    string   `json:"type,omitempty"`
	AvgLogp *float64 `json:"avg_logprob,omitempty"`
}

// Word is a word-level timestamp (timestamp_granularities=word).
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
