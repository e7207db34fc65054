package meetingbaas

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for Meeting BaaS.
type Mapper struct{}

// New creates a Meeting BaaS mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Meeting BaaS provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderMeetingBaaS }

// Map decodes a meeting data document and maps it.
func (m *Mapper) Map(raw json.RawMessage, _ transcription.MapOptions) (*transcription.Mapped, error) {
	var md MeetingData
	if err := json.Unmarshal(raw, &md); err != nil {
		return nil, err
	}
	return MapMeetingData(&md), nil
}

// MapMeetingData maps a meeting data document. The recording is complete
// once transcripts exist; before that the bot is still in the call.
func MapMeetingData(md *MeetingData) *transcription.Mapped {
	bot := md.BotData.Bot
	data := &transcription.TranscriptData{
		ID:        util.Coalesce(bot.UUID, botID(bot.ID)),
		Status:    transcription.StatusProcessing,
		Duration:  md.Duration,
		CreatedAt: bot.CreatedAt,
	}

	if len(md.BotData.Transcripts) > 0 {
		data.Status = transcription.StatusCompleted
		data.CompletedAt = bot.EndedAt
		utterances := make([]transcription.Utterance, len(md.BotData.Transcripts))
		for i, tr := range md.BotData.Transcripts {
			speaker := util.NonZero(tr.Speaker)
			words := transcription.ExtractWords(tr.Words, func(w Word) transcription.Word {
				return transcription.Word{Word: w.Text, Start: w.StartTime, End: w.EndTime, Speaker: speaker}
			})
			end := tr.StartTime
			if tr.EndTime != nil {
				end = *tr.EndTime
			} else if len(words) > 0 {
				end = words[len(words)-1].End
			}
			utterances[i] = transcription.Utterance{
				Text:    joinWords(words),
				Start:   tr.StartTime,
				End:     end,
				Speaker: speaker,
				Words:   words,
			}
		}
		fillTranscript(data, utterances)
	}

	return &transcription.Mapped{
		Data: data,
		Extended: transcription.MeetingBaaSExtended{
			BotID:      data.ID,
			BotName:    bot.BotName,
			MeetingURL: bot.MeetingURL,
			MP4:        md.MP4,
		},
	}
}

// MapCompleteEvent maps the payload of a "complete" webhook event.
func MapCompleteEvent(d *EventData) *transcription.Mapped {
	data := &transcription.TranscriptData{
		ID:     d.BotID,
		Status: transcription.StatusCompleted,
	}
	if len(d.Transcript) > 0 {
		utterances := make([]transcription.Utterance, len(d.Transcript))
		for i, seg := range d.Transcript {
			speaker := util.NonZero(seg.Speaker)
			words := transcription.ExtractWords(seg.Words, func(w EventWord) transcription.Word {
				return transcription.Word{Word: w.Word, Start: w.Start, End: w.End, Speaker: speaker}
			})
			end := seg.Offset
			if len(words) > 0 {
				end = words[len(words)-1].End
			}
			utterances[i] = transcription.Utterance{
				Text:    joinWords(words),
				Start:   seg.Offset,
				End:     end,
				Speaker: speaker,
				Words:   words,
			}
		}
		fillTranscript(data, utterances)
	}
	return &transcription.Mapped{
		Data: data,
		Extended: transcription.MeetingBaaSExtended{
			BotID:    d.BotID,
			MP4:      d.MP4,
			Speakers: util.NonEmpty(d.Speakers),
		},
	}
}

// fillTranscript sets the text, words and speakers derived from utterances.
// Participant names serve as both speaker id and label.
func fillTranscript(data *transcription.TranscriptData, utterances []transcription.Utterance) {
	texts := make([]string, 0, len(utterances))
	for _, u := range utterances {
		if u.Text != "" {
			texts = append(texts, u.Text)
		}
	}
	data.Text = strings.Join(texts, " ")
	data.Utterances = utterances
	data.Words = util.NonEmpty(transcription.WordsOf(utterances))
	data.Speakers = transcription.SpeakersOf(utterances, data.Words, func(name string) string { return name })
}

func joinWords(words []transcription.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Word
	}
	return strings.Join(parts, " ")
}

func botID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
