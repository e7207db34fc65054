package whisper

import (
	"encoding/json"
	"strings"

	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for OpenAI transcription.
type Mapper struct{}

// New creates an OpenAI Whisper mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the OpenAI Whisper provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderWhisper }

// Map decodes a transcription response and maps it. OpenAI answers
// synchronously, so every decodable response is complete.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return MapResponse(&resp, opts), nil
}

// MapResponse maps a decoded transcription response. Segments become
// utterances; when the response carries no duration it is taken from the
// end of the last segment.
func MapResponse(resp *Response, opts transcription.MapOptions) *transcription.Mapped {
	data := &transcription.TranscriptData{
		Text:     resp.Text,
		Status:   transcription.StatusCompleted,
		Language: util.NonZero(resp.Language),
		Duration: resp.Duration,
	}

	if len(resp.Segments) > 0 {
		utterances := make([]transcription.Utterance, len(resp.Segments))
		for i, seg := range resp.Segments {
			utterances[i] = transcription.Utterance{
				Text:    strings.TrimSpace(seg.Text),
				Start:   seg.Start,
				End:     seg.End,
				Speaker: seg.Speaker,
			}
		}
		data.Utterances = utterances
		if data.Duration == nil {
			data.Duration = util.Ptr(resp.Segments[len(resp.Segments)-1].End)
		}
	}

	data.Words = transcription.ExtractWords(resp.Words, func(w Word) transcription.Word {
		return transcription.Word{
			Word:    strings.TrimSpace(w.Word),
			Start:   w.Start,
			End:     w.End,
			Speaker: speakerAt(data.Utterances, w.Start),
		}
	})
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)

	mapped := &transcription.Mapped{Data: data}
	if resp.Task != "" || resp.Usage != nil {
		ext := transcription.WhisperExtended{Task: resp.Task, Usage: resp.Usage}
		if len(resp.Segments) > 0 {
			ext.Segments, _ = json.Marshal(resp.Segments)
		}
		mapped.Extended = ext
	}
	return mapped
}

// speakerAt returns the speaker of the utterance spanning t.
func speakerAt(utterances []transcription.Utterance, t float64) *string {
	for _, u := range utterances {
		if t >= u.Start && t <= u.End {
			return u.Speaker
		}
	}
	return nil
}
