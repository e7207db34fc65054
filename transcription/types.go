package transcription

import (
	"encoding/json"

	"github.com/kbukum/voicerouter/errors"
)

// Status is the unified transcription lifecycle state.
type Status string

// Unified statuses.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Valid reports whether s is one of the unified statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Word is a single recognized token. Times are in seconds.
type Word struct {
	Word       string   `json:"word"`
	Start      float64  `json:"start" validate:"gte=0"`
	End        float64  `json:"end" validate:"gtefield=Start"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	// Speaker references Speaker.ID.
	Speaker *string `json:"speaker,omitempty"`
}

// Utterance is a contiguous span of speech, usually from one speaker.
type Utterance struct {
	Text       string   `json:"text"`
	Start      float64  `json:"start" validate:"gte=0"`
	End        float64  `json:"end" validate:"gtefield=Start"`
	Speaker    *string  `json:"speaker,omitempty"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	Words      []Word   `json:"words,omitempty" validate:"omitempty,dive"`
}

// Speaker is a diarized speaker.
type Speaker struct {
	ID         string   `json:"id" validate:"required"`
	Label      *string  `json:"label,omitempty"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// TranscriptData is the provider-independent transcript.
type TranscriptData struct {
	ID          string         `json:"id"`
	Text        string         `json:"text"`
	Status      Status         `json:"status" validate:"required,oneof=queued processing completed error"`
	Confidence  *float64       `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	Duration    *float64       `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Language    *string        `json:"language,omitempty"`
	Speakers    []Speaker      `json:"speakers,omitempty" validate:"omitempty,dive"`
	Words       []Word         `json:"words,omitempty" validate:"omitempty,dive"`
	Utterances  []Utterance    `json:"utterances,omitempty" validate:"omitempty,dive"`
	Summary     *string        `json:"summary,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   *string        `json:"createdAt,omitempty"`
	CompletedAt *string        `json:"completedAt,omitempty"`
}

// Tracking carries diagnostic information about a normalization call.
type Tracking struct {
	RequestID        string   `json:"requestId,omitempty"`
	AudioHash        string   `json:"audioHash,omitempty"`
	ProcessingTimeMs *float64 `json:"processingTimeMs,omitempty"`
}

// UnifiedTranscriptResponse is the envelope returned for every provider.
// Data is set iff Success; Error is set iff !Success. Raw may be set on
// either outcome.
type UnifiedTranscriptResponse struct {
	Success  bool                  `json:"success"`
	Provider Provider              `json:"provider"`
	Data     *TranscriptData       `json:"data,omitempty"`
	Extended Extended              `json:"extended,omitempty"`
	Tracking *Tracking             `json:"tracking,omitempty"`
	Error    *errors.StandardError `json:"error,omitempty"`
	Raw      json.RawMessage       `json:"raw,omitempty"`
}

// Failed builds a failure envelope.
func Failed(p Provider, err *errors.StandardError, raw json.RawMessage) *UnifiedTranscriptResponse {
	return &UnifiedTranscriptResponse{
		Success:  false,
		Provider: p,
		Error:    err,
		Raw:      raw,
	}
}
