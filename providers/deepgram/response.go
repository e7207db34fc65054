// Package deepgram maps Deepgram pre-recorded listen responses, including the
// body Deepgram posts to a callback URL, into the unified transcript schema.
package deepgram

import "encoding/json"

// Response is the body of POST /v1/listen.
type Response struct {
	// RequestID is set alone when a callback was requested.
	RequestID string    `json:"request_id,omitempty"`
	Metadata  *Metadata `json:"metadata,omitempty"`
	Results   *Results  `json:"results,omitempty"`

	ErrCode string `json:"err_code,omitempty"`
	ErrMsg  string `json:"err_msg,omitempty"`
}

// Metadata describes the request.
type Metadata struct {
	TransactionKey string   `json:"transaction_key,omitempty"`
	RequestID      string   `json:"request_id"`
	SHA256         string   `json:"sha256,omitempty"`
	Created        *string  `json:"created,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	Channels       *int     `json:"channels,omitempty"`
	Models         []string `json:"models,omitempty"`
}

// Results holds the recognition output.
type Results struct {
	Channels   []Channel       `json:"channels"`
	Utterances []Utterance     `json:"utterances,omitempty"`
	Summary    *Summary        `json:"summary,omitempty"`
	Topics     json.RawMessage `json:"topics,omitempty"`
	Intents    json.RawMessage `json:"intents,omitempty"`
	Sentiments json.RawMessage `json:"sentiments,omitempty"`
}

// Channel is one audio channel.
type Channel struct {
	Alternatives       []Alternative `json:"alternatives"`
	DetectedLanguage   *string       `json:"detected_language,omitempty"`
	LanguageConfidence *float64      `json:"language_confidence,omitempty"`
}

// Alternative is one transcription hypothesis.
type Alternative struct {
	Transcript string   `json:"transcript"`
	Confidence *float64 `json:"confidence,omitempty"`
	Words      []Word   `json:"words,omitempty"`
}

// Word is one recognized token.
type Word struct {
	Word              string   `json:"word"`
	PunctuatedWord    string   `json:"punctuated_word,omitempty"`
	Start             float64  `json:"start"`
	End               float64  `json:"end"`
	Confidence        *float64 `json:"confidence,omitempty"`
	Speaker           *int     `json:"speaker,omitempty"`
	SpeakerConfidence *float64 `json:"speaker_confidence,omitempty"`
}

// Utterance is one diarized segment.
type Utterance struct {
	ID         string   `json:"id,omitempty"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
	Channel    int      `json:"channel"`
	Transcript string   `json:"transcript"`
	Words      []Word   `json:"words,omitempty"`
	Speaker    *int     `json:"speaker,omitempty"`
}

// Summary is the summarize=v2 result.
type Summary struct {
	Result string `json:"result"`
	Short  string `json:"short"`
}
