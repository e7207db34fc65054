package transcription

import (
	"strings"

	"github.com/kbukum/voicerouter/errors"
)

// Provider identifies a speech-to-text or meeting-bot service.
type Provider string

// Supported providers.
const (
	ProviderGladia       Provider = "gladia"
	ProviderDeepgram     Provider = "deepgram"
	ProviderAssemblyAI   Provider = "assemblyai"
	ProviderWhisper      Provider = "openai-whisper"
	ProviderAzureSTT     Provider = "azure-stt"
	ProviderSpeechmatics Provider = "speechmatics"
	ProviderVexa         Provider = "vexa"
	ProviderMeetingBaaS  Provider = "meeting-baas"
)

// Providers returns the closed set of supported providers in declaration order.
func Providers() []Provider {
	return []Provider{
		ProviderGladia,
		ProviderDeepgram,
		ProviderAssemblyAI,
		ProviderWhisper,
		ProviderAzureSTT,
		ProviderSpeechmatics,
		ProviderVexa,
		ProviderMeetingBaaS,
	}
}

var providerAliases = map[string]Provider{
	"azure":       ProviderAzureSTT,
	"whisper":     ProviderWhisper,
	"openai":      ProviderWhisper,
	"meetingbaas": ProviderMeetingBaaS,
	"assembly":    ProviderAssemblyAI,
}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	for _, known := range Providers() {
		if p == known {
			return true
		}
	}
	return false
}

func (p Provider) String() string { return string(p) }

// ParseProvider resolves a provider tag, accepting a few common aliases
// ("azure", "whisper", "meetingbaas"). Matching is case-insensitive.
func ParseProvider(s string) (Provider, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p := Provider(key); p.Valid() {
		return p, nil
	}
	if p, ok := providerAliases[key]; ok {
		return p, nil
	}
	return "", errors.NewNotSupported("provider " + s)
}
