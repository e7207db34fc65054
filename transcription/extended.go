package transcription

import "encoding/json"

// Extended holds provider-specific data that has no place in the unified
// schema. The set of implementations is closed; each one reports the
// provider it belongs to.
type Extended interface {
	Provider() Provider
	extended()
}

// GladiaExtended carries Gladia side-channel results.
type GladiaExtended struct {
	Translation            json.RawMessage      `json:"translation,omitempty"`
	Summarization          json.RawMessage      `json:"summarization,omitempty"`
	NamedEntityRecognition json.RawMessage      `json:"namedEntityRecognition,omitempty"`
	SentimentAnalysis      json.RawMessage      `json:"sentimentAnalysis,omitempty"`
	Chapterization         json.RawMessage      `json:"chapterization,omitempty"`
	AudioMetadata          *GladiaAudioMetadata `json:"audioMetadata,omitempty"`
}

// GladiaAudioMetadata is Gladia's processing metadata.
type GladiaAudioMetadata struct {
	AudioDuration            *float64 `json:"audioDuration,omitempty"`
	NumberOfDistinctChannels *int     `json:"numberOfDistinctChannels,omitempty"`
	BillingTime              *float64 `json:"billingTime,omitempty"`
	TranscriptionTime        *float64 `json:"transcriptionTime,omitempty"`
}

// DeepgramExtended carries Deepgram side-channel results.
type DeepgramExtended struct {
	RequestID          string          `json:"requestId,omitempty"`
	Models             []string        `json:"models,omitempty"`
	Channels           *int            `json:"channels,omitempty"`
	LanguageConfidence *float64        `json:"languageConfidence,omitempty"`
	Topics             json.RawMessage `json:"topics,omitempty"`
	Intents            json.RawMessage `json:"intents,omitempty"`
	Sentiments         json.RawMessage `json:"sentiments,omitempty"`
}

// AssemblyAIExtended carries AssemblyAI side-channel results.
type AssemblyAIExtended struct {
	Chapters          json.RawMessage `json:"chapters,omitempty"`
	Entities          json.RawMessage `json:"entities,omitempty"`
	Highlights        json.RawMessage `json:"autoHighlights,omitempty"`
	SentimentAnalysis json.RawMessage `json:"sentimentAnalysis,omitempty"`
	ContentSafety     json.RawMessage `json:"contentSafety,omitempty"`
	IABCategories     json.RawMessage `json:"iabCategories,omitempty"`
}

// AzureExtended carries Azure batch transcription details.
type AzureExtended struct {
	Self        string          `json:"self,omitempty"`
	Locale      string          `json:"locale,omitempty"`
	DisplayName string          `json:"displayName,omitempty"`
	Source      string          `json:"source,omitempty"`
	Properties  json.RawMessage `json:"properties,omitempty"`
}

// SpeechmaticsExtended carries Speechmatics job details.
type SpeechmaticsExtended struct {
	JobID          string          `json:"jobId,omitempty"`
	OperatingPoint string          `json:"operatingPoint,omitempty"`
	DataName       string          `json:"dataName,omitempty"`
	FormatVersion  string          `json:"formatVersion,omitempty"`
	Summary        json.RawMessage `json:"summary,omitempty"`
	Translations   json.RawMessage `json:"translations,omitempty"`
}

// WhisperExtended carries OpenAI transcription details.
type WhisperExtended struct {
	Task     string          `json:"task,omitempty"`
	Segments json.RawMessage `json:"segments,omitempty"`
	Usage    json.RawMessage `json:"usage,omitempty"`
}

// VexaExtended carries Vexa meeting details.
type VexaExtended struct {
	MeetingID       *int64  `json:"meetingId,omitempty"`
	Platform        string  `json:"platform,omitempty"`
	NativeMeetingID string  `json:"nativeMeetingId,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
}

// MeetingBaaSExtended carries Meeting BaaS bot details.
type MeetingBaaSExtended struct {
	BotID      string   `json:"botId,omitempty"`
	BotName    string   `json:"botName,omitempty"`
	MeetingURL string   `json:"meetingUrl,omitempty"`
	MP4        string   `json:"mp4,omitempty"`
	Speakers   []string `json:"speakers,omitempty"`
}

func (GladiaExtended) Provider() Provider       { return ProviderGladia }
func (DeepgramExtended) Provider() Provider     { return ProviderDeepgram }
func (AssemblyAIExtended) Provider() Provider   { return ProviderAssemblyAI }
func (AzureExtended) Provider() Provider        { return ProviderAzureSTT }
func (SpeechmaticsExtended) Provider() Provider { return ProviderSpeechmatics }
func (WhisperExtended) Provider() Provider      { return ProviderWhisper }
func (VexaExtended) Provider() Provider         { return ProviderVexa }
func (MeetingBaaSExtended) Provider() Provider  { return ProviderMeetingBaaS }

func (GladiaExtended) extended()       {}
func (DeepgramExtended) extended()     {}
func (AssemblyAIExtended) extended()   {}
func (AzureExtended) extended()        {}
func (SpeechmaticsExtended) extended() {}
func (WhisperExtended) extended()      {}
func (VexaExtended) extended()         {}
func (MeetingBaaSExtended) extended()  {}
