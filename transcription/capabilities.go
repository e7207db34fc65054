package transcription

// Capabilities describes the features a provider exposes.
type Capabilities struct {
	Streaming         bool `json:"streaming"`
	Diarization       bool `json:"diarization"`
	WordTimestamps    bool `json:"wordTimestamps"`
	LanguageDetection bool `json:"languageDetection"`
	CustomVocabulary  bool `json:"customVocabulary"`
	Summarization     bool `json:"summarization"`
	SentimentAnalysis bool `json:"sentimentAnalysis"`
	EntityDetection   bool `json:"entityDetection"`
	PIIRedaction      bool `json:"piiRedaction"`
}

var capabilities = map[Provider]Capabilities{
	ProviderGladia: {
		Streaming: true, Diarization: true, WordTimestamps: true, LanguageDetection: true,
		CustomVocabulary: true, Summarization: true, SentimentAnalysis: true, EntityDetection: true,
	},
	ProviderDeepgram: {
		Streaming: true, Diarization: true, WordTimestamps: true, LanguageDetection: true,
		CustomVocabulary: true, Summarization: true, SentimentAnalysis: true, EntityDetection: true,
		PIIRedaction: true,
	},
	ProviderAssemblyAI: {
		Streaming: true, Diarization: true, WordTimestamps: true, LanguageDetection: true,
		CustomVocabulary: true, Summarization: true, SentimentAnalysis: true, EntityDetection: true,
		PIIRedaction: true,
	},
	ProviderWhisper: {
		WordTimestamps: true, LanguageDetection: true,
	},
	ProviderAzureSTT: {
		Streaming: true, Diarization: true, WordTimestamps: true, LanguageDetection: true,
		CustomVocabulary: true,
	},
	ProviderSpeechmatics: {
		Streaming: true, Diarization: true, WordTimestamps: true, LanguageDetection: true,
		CustomVocabulary: true, Summarization: true, SentimentAnalysis: true,
	},
	ProviderVexa: {
		Streaming: true, Diarization: true, LanguageDetection: true,
	},
	ProviderMeetingBaaS: {
		Diarization: true, WordTimestamps: true,
	},
}

// CapabilitiesOf returns the feature set of p.
func CapabilitiesOf(p Provider) (Capabilities, bool) {
	c, ok := capabilities[p]
	return c, ok
}
