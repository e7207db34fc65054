package vexa

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for Vexa.
type Mapper struct{}

// New creates a Vexa mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Vexa provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderVexa }

// Map decodes a meeting transcript and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var tr Transcript
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, err
	}
	return MapTranscript(&tr, opts), nil
}

// MapTranscript maps a decoded transcript. Vexa attributes segments to
// participant names, so the name is both the speaker id and its label.
// A transcript without status but with segments is treated as processing,
// since segments stream in while the bot is in the meeting.
func MapTranscript(tr *Transcript, opts transcription.MapOptions) *transcription.Mapped {
	def := opts.DefaultStatus
	if tr.Status == "" && len(tr.Segments) > 0 {
		def = transcription.StatusProcessing
	}
	data := &transcription.TranscriptData{
		Status:    transcription.NormalizeStatus(tr.Status, transcription.ProviderVexa, def),
		CreatedAt: tr.StartTime,
	}
	if tr.ID != nil {
		data.ID = strconv.FormatInt(*tr.ID, 10)
	} else {
		data.ID = tr.NativeMeetingID
	}
	if data.Status == transcription.StatusCompleted {
		data.CompletedAt = tr.EndTime
	}

	if len(tr.Segments) > 0 {
		utterances := make([]transcription.Utterance, len(tr.Segments))
		texts := make([]string, 0, len(tr.Segments))
		for i, s := range tr.Segments {
			utterances[i] = transcription.Utterance{
				Text:    strings.TrimSpace(s.Text),
				Start:   s.Start,
				End:     s.End,
				Speaker: nonBlank(s.Speaker),
			}
			texts = append(texts, utterances[i].Text)
			if data.Language == nil && s.Language != nil {
				data.Language = util.NonZero(*s.Language)
			}
		}
		data.Utterances = utterances
		data.Text = strings.Join(texts, " ")
		data.Duration = util.Ptr(tr.Segments[len(tr.Segments)-1].End)
		data.Speakers = transcription.ExtractSpeakers(utterances,
			func(u transcription.Utterance) *string { return u.Speaker },
			func(name string) string { return name })
	}

	return &transcription.Mapped{
		Data: data,
		Extended: transcription.VexaExtended{
			MeetingID:       tr.ID,
			Platform:        tr.Platform,
			NativeMeetingID: tr.NativeMeetingID,
			StartTime:       tr.StartTime,
			EndTime:         tr.EndTime,
		},
	}
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
