package gladia

import (
	"encoding/json"
	"strconv"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for Gladia.
type Mapper struct{}

// New creates a Gladia mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Gladia provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderGladia }

// Map decodes a pre-recorded job and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return MapResponse(&resp, opts), nil
}

// MapResponse maps a decoded pre-recorded job.
func MapResponse(resp *Response, opts transcription.MapOptions) *transcription.Mapped {
	status := opts.Status(resp.Status, transcription.ProviderGladia)
	if status == transcription.StatusError {
		failure := errors.NewTranscription("Transcription failed")
		if resp.ErrorCode != nil {
			failure = failure.WithStatus(*resp.ErrorCode)
		}
		return &transcription.Mapped{Failure: failure}
	}

	data := &transcription.TranscriptData{
		ID:          resp.ID,
		Status:      status,
		Metadata:    resp.CustomMetadata,
		CreatedAt:   resp.CreatedAt,
		CompletedAt: resp.CompletedAt,
	}
	if resp.Result == nil {
		return &transcription.Mapped{Data: data}
	}

	r := resp.Result
	if r.Metadata != nil {
		data.Duration = r.Metadata.AudioDuration
	}
	applyTranscription(data, r.Transcription, opts)
	data.Summary = summaryOf(r.Summarization)

	return &transcription.Mapped{
		Data: data,
		Extended: transcription.GladiaExtended{
			Translation:            r.Translation,
			Summarization:          summarizationRaw(r.Summarization),
			NamedEntityRecognition: r.NamedEntityRecognition,
			SentimentAnalysis:      r.SentimentAnalysis,
			Chapterization:         r.Chapterization,
			AudioMetadata:          audioMetadata(r.Metadata),
		},
	}
}

// MapWebhookResult maps the result of a transcription.success event.
func MapWebhookResult(p *WebhookPayload, opts transcription.MapOptions) *transcription.TranscriptData {
	data := &transcription.TranscriptData{
		ID:     p.ID,
		Status: transcription.StatusCompleted,
	}
	meta := map[string]any{}
	if p.CustomMetadata != nil {
		meta["custom_metadata"] = p.CustomMetadata
	}
	if res := p.Payload; res != nil {
		applyTranscription(data, res.Transcription, opts)
		data.Summary = summaryOf(res.Summarization)
		if m := res.Metadata; m != nil {
			data.Duration = m.AudioDuration
			putIfSet(meta, "transcription_time", m.TranscriptionTime)
			putIfSet(meta, "billing_time", m.BillingTime)
			putIfSet(meta, "number_of_distinct_channels", m.NumberOfDistinctChannels)
		}
	}
	if len(meta) > 0 {
		data.Metadata = meta
	}
	return data
}

func applyTranscription(data *transcription.TranscriptData, t *Transcription, opts transcription.MapOptions) {
	if t == nil {
		return
	}
	data.Text = t.FullTranscript
	if len(t.Languages) > 0 {
		data.Language = util.NonZero(t.Languages[0])
	}
	data.Utterances = mapUtterances(t.Utterances)
	data.Words = util.NonEmpty(transcription.WordsOf(data.Utterances))
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)
}

func mapUtterances(in []Utterance) []transcription.Utterance {
	if len(in) == 0 {
		return nil
	}
	out := make([]transcription.Utterance, len(in))
	for i, u := range in {
		speaker := speakerID(u.Speaker)
		out[i] = transcription.Utterance{
			Text:       u.Text,
			Start:      u.Start,
			End:        u.End,
			Speaker:    speaker,
			Confidence: u.Confidence,
			Words: transcription.ExtractWords(u.Words, func(w Word) transcription.Word {
				return transcription.Word{
					Word:       w.Word,
					Start:      w.Start,
					End:        w.End,
					Confidence: w.Confidence,
					Speaker:    speaker,
				}
			}),
		}
	}
	return out
}

func speakerID(s *int) *string {
	if s == nil {
		return nil
	}
	return util.Ptr(strconv.Itoa(*s))
}

func summaryOf(s *Summarization) *string {
	if s == nil || !s.Success || s.IsEmpty || s.Results == nil || *s.Results == "" {
		return nil
	}
	return s.Results
}

func summarizationRaw(s *Summarization) json.RawMessage {
	if s == nil {
		return nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	return b
}

func audioMetadata(m *Metadata) *transcription.GladiaAudioMetadata {
	if m == nil {
		return nil
	}
	return &transcription.GladiaAudioMetadata{
		AudioDuration:            m.AudioDuration,
		NumberOfDistinctChannels: m.NumberOfDistinctChannels,
		BillingTime:              m.BillingTime,
		TranscriptionTime:        m.TranscriptionTime,
	}
}

func putIfSet[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}
