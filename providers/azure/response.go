// Package azure maps Azure Speech batch transcription documents into the
// unified transcript schema. Both the transcription job and the
// transcription result file are accepted.
package azure

import "encoding/json"

// Job is a batch transcription as returned by GET /speechtotext/v3.2/transcriptions/{id}.
type Job struct {
	Self               string          `json:"self"`
	Status             string          `json:"status"`
	Locale             string          `json:"locale,omitempty"`
	DisplayName        string          `json:"displayName,omitempty"`
	CreatedDateTime    *string         `json:"createdDateTime,omitempty"`
	LastActionDateTime *string         `json:"lastActionDateTime,omitempty"`
	Properties         *JobProperties  `json:"properties,omitempty"`
	Links              json.RawMessage `json:"links,omitempty"`
}

// JobProperties holds job settings and outcome details.
type JobProperties struct {
	DiarizationEnabled  bool      `json:"diarizationEnabled,omitempty"`
	WordLevelTimestamps bool      `json:"wordLevelTimestampsEnabled,omitempty"`
	Duration            string    `json:"duration,omitempty"`
	Error               *JobError `json:"error,omitempty"`
}

// JobError describes why a job failed.
type JobError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultFile is the content of a transcription result file.
type ResultFile struct {
	Source                    string           `json:"source,omitempty"`
	Timestamp                 *string          `json:"timestamp,omitempty"`
	DurationInTicks           *int64           `json:"durationInTicks,omitempty"`
	Duration                  string           `json:"duration,omitempty"`
	CombinedRecognizedPhrases []CombinedPhrase `json:"combinedRecognizedPhrases,omitempty"`
	RecognizedPhrases         []Phrase         `json:"recognizedPhrases,omitempty"`
}

// CombinedPhrase is the full text of one channel.
type CombinedPhrase struct {
	Channel int    `json:"channel"`
	Lexical string `json:"lexical"`
	Display string `json:"display"`
}

// Phrase is one recognized phrase.
type Phrase struct {
	RecognitionStatus string  `json:"recognitionStatus"`
	Channel           int     `json:"channel"`
	Speaker           *int    `json:"speaker,omitempty"`
	OffsetInTicks     int64   `json:"offsetInTicks"`
	DurationInTicks   int64   `json:"durationInTicks"`
	Locale            string  `json:"locale,omitempty"`
	NBest             []NBest `json:"nBest"`
}

// NBest is one recognition hypothesis.
type NBest struct {
	Confidence *float64 `json:"confidence,omitempty"`
	Lexical    string   `json:"lexical"`
	Display    string   `json:"display"`
	Words      []Word   `json:"words,omitempty"`
}

// Word is one recognized token with tick offsets.
type Word struct {
	Word            string   `json:"word"`
	OffsetInTicks   int64    `json:"offsetInTicks"`
	DurationInTicks int64    `json:"durationInTicks"`
	Confidence      *float64 `json:"confidence,omitempty"`
}
