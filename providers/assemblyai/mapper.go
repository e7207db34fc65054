package assemblyai

import (
	"encoding/json"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for AssemblyAI.
type Mapper struct{}

// New creates an AssemblyAI mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the AssemblyAI provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderAssemblyAI }

// Map decodes a transcript object and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var tr Transcript
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, err
	}
	return MapTranscript(&tr, opts), nil
}

// MapTranscript maps a decoded transcript. Word and utterance times are
// converted from milliseconds to seconds; audio_duration is already seconds.
func MapTranscript(tr *Transcript, opts transcription.MapOptions) *transcription.Mapped {
	status := opts.Status(tr.Status, transcription.ProviderAssemblyAI)
	if status == transcription.StatusError {
		msg := ""
		if tr.Error != nil {
			msg = *tr.Error
		}
		return &transcription.Mapped{
			Failure: errors.NewTranscription(msg).WithDetails(map[string]any{"id": tr.ID}),
		}
	}

	data := &transcription.TranscriptData{
		ID:         tr.ID,
		Status:     status,
		Text:       util.Deref(tr.Text),
		Confidence: tr.Confidence,
		Duration:   tr.AudioDuration,
		Language:   tr.LanguageCode,
		Summary:    tr.Summary,
		Words:      transcription.ExtractWords(tr.Words, mapWord),
		Utterances: mapUtterances(tr.Utterances),
	}
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)

	ext := transcription.AssemblyAIExtended{
		Chapters:          util.NonNullJSON(tr.Chapters),
		Entities:          util.NonNullJSON(tr.Entities),
		Highlights:        util.NonNullJSON(tr.AutoHighlights),
		SentimentAnalysis: util.NonNullJSON(tr.SentimentAnalysis),
		ContentSafety:     util.NonNullJSON(tr.ContentSafety),
		IABCategories:     util.NonNullJSON(tr.IABCategories),
	}
	mapped := &transcription.Mapped{Data: data}
	if hasAny(ext.Chapters, ext.Entities, ext.Highlights, ext.SentimentAnalysis, ext.ContentSafety, ext.IABCategories) {
		mapped.Extended = ext
	}
	return mapped
}

func mapWord(w Word) transcription.Word {
	return transcription.Word{
		Word:       w.Text,
		Start:      util.MillisToSeconds(w.Start),
		End:        util.MillisToSeconds(w.End),
		Confidence: w.Confidence,
		Speaker:    w.Speaker,
	}
}

func mapUtterances(in []Utterance) []transcription.Utterance {
	if len(in) == 0 {
		return nil
	}
	out := make([]transcription.Utterance, len(in))
	for i, u := range in {
		out[i] = transcription.Utterance{
			Text:       u.Text,
			Start:      util.MillisToSeconds(u.Start),
			End:        util.MillisToSeconds(u.End),
			Speaker:    u.Speaker,
			Confidence: u.Confidence,
			Words:      transcription.ExtractWords(u.Words, mapWord),
		}
	}
	return out
}

func hasAny(values ...json.RawMessage) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}
