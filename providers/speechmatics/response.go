// Package speechmatics maps Speechmatics batch job details and json-v2
// transcripts into the unified transcript schema.
package speechmatics

import "encoding/json"

// JobDetailsResponse is the body of GET /v2/jobs/{id}.
type JobDetailsResponse struct {
	Job JobDetails `json:"job"`
}

// JobDetails describes a batch job.
type JobDetails struct {
	ID        string          `json:"id"`
	Status    string          `json:"status,omitempty"`
	CreatedAt *string         `json:"created_at,omitempty"`
	DataName  string          `json:"data_name,omitempty"`
	Duration  *float64        `json:"duration,omitempty"`
	Errors    []JobError      `json:"errors,omitempty"`
	Config    json.RawMessage `json:"config,omitempty"`
}

// JobError is one failure recorded against a job.
type JobError struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Transcript is a json-v2 transcript as returned by GET /v2/jobs/{id}/transcript.
type Transcript struct {
	Format       string          `json:"format"`
	Job          JobDetails      `json:"job"`
	Metadata     Metadata        `json:"metadata"`
	Results      []Result        `json:"results"`
	Summary      json.RawMessage `json:"summary,omitempty"`
	Translations json.RawMessage `json:"translations,omitempty"`
}

// Metadata describes how the transcript was produced.
type Metadata struct {
	CreatedAt           *string              `json:"created_at,omitempty"`
	Type                string               `json:"type,omitempty"`
	TranscriptionConfig *TranscriptionConfig `json:"transcription_config,omitempty"`
}

// TranscriptionConfig is the configuration the job ran with.
type TranscriptionConfig struct {
	Language       string `json:"language"`
	Diarization    string `json:"diarization,omitempty"`
	OperatingPoint string `json:"operating_point,omitempty"`
}

// Result is one recognized item.
type Result struct {
	Type         string        `json:"type"`
	StartTime    float64       `json:"start_time"`
	EndTime      float64       `json:"end_time"`
	AttachesTo   string        `json:"attaches_to,omitempty"`
	IsEOS        bool          `json:"is_eos,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one hypothesis for a result.
type Alternative struct {
	Content    string   `json:"content"`
	Confidence *float64 `json:"confidence,omitempty"`
	Language   string   `json:"language,omitempty"`
	Speaker    string   `json:"speaker,omitempty"`
}

// Summary is the summarization add-on result.
type Summary struct {
	Content string `json:"content"`
}
