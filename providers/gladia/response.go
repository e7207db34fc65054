// Package gladia maps Gladia pre-recorded (v2) results and webhook payloads
// into the unified transcript schema.
package gladia

import "encoding/json"

// Response is a pre-recorded job as returned by GET /v2/pre-recorded/{id}.
type Response struct {
	ID             string         `json:"id"`
	RequestID      string         `json:"request_id,omitempty"`
	Status         string         `json:"status"`
	CreatedAt      *string        `json:"created_at,omitempty"`
	CompletedAt    *string        `json:"completed_at,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
	ErrorCode      *int           `json:"error_code,omitempty"`
	Result         *Result        `json:"result,omitempty"`
}

// Result holds the outputs of a finished job.
type Result struct {
	Metadata               *Metadata       `json:"metadata,omitempty"`
	Transcription          *Transcription  `json:"transcription,omitempty"`
	Translation            json.RawMessage `json:"translation,omitempty"`
	Summarization          *Summarization  `json:"summarization,omitempty"`
	NamedEntityRecognition json.RawMessage `json:"named_entity_recognition,omitempty"`
	SentimentAnalysis      json.RawMessage `json:"sentiment_analysis,omitempty"`
	Chapterization         json.RawMessage `json:"chapterization,omitempty"`
}

// Metadata describes the processed audio.
type Metadata struct {
	AudioDuration            *float64 `json:"audio_duration,omitempty"`
	NumberOfDistinctChannels *int     `json:"number_of_distinct_channels,omitempty"`
	BillingTime              *float64 `json:"billing_time,omitempty"`
	TranscriptionTime        *float64 `json:"transcription_time,omitempty"`
}

// Transcription is the transcript proper.
type Transcription struct {
	FullTranscript string      `json:"full_transcript"`
	Languages      []string    `json:"languages,omitempty"`
	Utterances     []Utterance `json:"utterances,omitempty"`
}

// Utterance is one diarized segment.
type Utterance struct {
	Text       string   `json:"text"`
	Language   string   `json:"language,omitempty"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
	Channel    *int     `json:"channel,omitempty"`
	Speaker    *int     `json:"speaker,omitempty"`
	Words      []Word   `json:"words,omitempty"`
}

// Word is one recognized token.
type Word struct {
	Word       string   `json:"word"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Summarization is the summarization add-on result.
type Summarization struct {
	Success bool    `json:"success"`
	IsEmpty bool    `json:"is_empty"`
	Results *string `json:"results,omitempty"`
}

// WebhookPayload is the body Gladia posts to a callback URL.
type WebhookPayload struct {
	ID             string          `json:"id"`
	Event          string          `json:"event"`
	CustomMetadata map[string]any  `json:"custom_metadata,omitempty"`
	Payload        *WebhookResult  `json:"payload,omitempty"`
	Error          *WebhookFailure `json:"error,omitempty"`
}

// WebhookResult is the result embedded in a transcription.success event.
type WebhookResult struct {
	Transcription *Transcription `json:"transcription,omitempty"`
	Metadata      *Metadata      `json:"metadata,omitempty"`
	Summarization *Summarization `json:"summarization,omitempty"`
}

// WebhookFailure is the error embedded in a transcription.error event.
type WebhookFailure struct {
	Message string `json:"message"`
	Code    *int   `json:"code,omitempty"`
}
