package deepgram

import (
	"encoding/json"
	"strconv"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for Deepgram.
type Mapper struct{}

// New creates a Deepgram mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Deepgram provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderDeepgram }

// Map decodes a listen response and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return MapResponse(&resp, opts), nil
}

// MapResponse maps a decoded listen response. Deepgram has no job states: a
// body with results is complete, and a body holding only a request id is an
// accepted callback request.
func MapResponse(resp *Response, opts transcription.MapOptions) *transcription.Mapped {
	if resp.ErrCode != "" {
		return &transcription.Mapped{
			Failure: errors.NewTranscription(util.Coalesce(resp.ErrMsg, resp.ErrCode)).
				WithDetails(map[string]any{"err_code": resp.ErrCode, "request_id": resp.RequestID}),
		}
	}

	if resp.Results == nil {
		return &transcription.Mapped{Data: &transcription.TranscriptData{
			ID:     requestID(resp),
			Status: transcription.StatusQueued,
		}}
	}

	data := &transcription.TranscriptData{
		ID:     requestID(resp),
		Status: transcription.StatusCompleted,
	}
	ext := transcription.DeepgramExtended{
		RequestID:  requestID(resp),
		Topics:     util.NonNullJSON(resp.Results.Topics),
		Intents:    util.NonNullJSON(resp.Results.Intents),
		Sentiments: util.NonNullJSON(resp.Results.Sentiments),
	}
	if md := resp.Metadata; md != nil {
		data.Duration = md.Duration
		data.CreatedAt = md.Created
		ext.Models = util.NonEmpty(md.Models)
		ext.Channels = md.Channels
	}

	if len(resp.Results.Channels) > 0 {
		ch := resp.Results.Channels[0]
		data.Language = ch.DetectedLanguage
		ext.LanguageConfidence = ch.LanguageConfidence
		if len(ch.Alternatives) > 0 {
			alt := ch.Alternatives[0]
			data.Text = alt.Transcript
			data.Confidence = alt.Confidence
			data.Words = transcription.ExtractWords(alt.Words, mapWord)
		}
	}

	data.Utterances = mapUtterances(resp.Results.Utterances)
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)
	if s := resp.Results.Summary; s != nil && s.Short != "" {
		data.Summary = util.Ptr(s.Short)
	}

	return &transcription.Mapped{Data: data, Extended: ext}
}

func requestID(resp *Response) string {
	if resp.Metadata != nil && resp.Metadata.RequestID != "" {
		return resp.Metadata.RequestID
	}
	return resp.RequestID
}

func mapWord(w Word) transcription.Word {
	return transcription.Word{
		Word:       util.Coalesce(w.PunctuatedWord, w.Word),
		Start:      w.Start,
		End:        w.End,
		Confidence: w.Confidence,
		Speaker:    speakerID(w.Speaker),
	}
}

func mapUtterances(in []Utterance) []transcription.Utterance {
	if len(in) == 0 {
		return nil
	}
	out := make([]transcription.Utterance, len(in))
	for i, u := range in {
		out[i] = transcription.Utterance{
			Text:       u.Transcript,
			Start:      u.Start,
			End:        u.End,
			Speaker:    speakerID(u.Speaker),
			Confidence: u.Confidence,
			Words:      transcription.ExtractWords(u.Words, mapWord),
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
