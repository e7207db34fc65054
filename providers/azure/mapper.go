package azure

import (
	"encoding/json"
	"path"
	"strconv"
	"strings"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Mapper implements transcription.Mapper for Azure batch transcription.
type Mapper struct{}

// New creates an Azure mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Azure STT provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderAzureSTT }

// Map decodes either a job document or a result file and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var probe struct {
		RecognizedPhrases         json.RawMessage `json:"recognizedPhrases"`
		CombinedRecognizedPhrases json.RawMessage `json:"combinedRecognizedPhrases"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.RecognizedPhrases != nil || probe.CombinedRecognizedPhrases != nil {
		var rf ResultFile
		if err := json.Unmarshal(raw, &rf); err != nil {
			return nil, err
		}
		return MapResultFile(&rf, opts), nil
	}
	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, err
	}
	return MapJob(&job, opts), nil
}

// MapJob maps a transcription job. Jobs carry status only; the transcript
// lives in the result files.
func MapJob(job *Job, opts transcription.MapOptions) *transcription.Mapped {
	id := ""
	if job.Self != "" {
		id = path.Base(strings.TrimRight(job.Self, "/"))
	}
	status := opts.Status(job.Status, transcription.ProviderAzureSTT)
	if status == transcription.StatusError {
		failure := errors.NewTranscription("")
		if p := job.Properties; p != nil && p.Error != nil {
			failure = errors.NewTranscription(p.Error.Message).
				WithDetails(map[string]any{"code": p.Error.Code, "id": id})
		}
		return &transcription.Mapped{Failure: failure}
	}

	data := &transcription.TranscriptData{
		ID:        id,
		Status:    status,
		Language:  util.NonZero(job.Locale),
		CreatedAt: job.CreatedDateTime,
	}
	if status == transcription.StatusCompleted {
		data.CompletedAt = job.LastActionDateTime
	}
	var props json.RawMessage
	if job.Properties != nil {
		if secs, err := util.ParseISODuration(job.Properties.Duration); err == nil {
			data.Duration = &secs
		}
		props, _ = json.Marshal(job.Properties)
	}
	return &transcription.Mapped{
		Data: data,
		Extended: transcription.AzureExtended{
			Self:        job.Self,
			Locale:      job.Locale,
			DisplayName: job.DisplayName,
			Properties:  props,
		},
	}
}

// MapResultFile maps a transcription result file. Tick offsets (100ns) are
// converted to seconds and the best hypothesis of each phrase is used.
func MapResultFile(rf *ResultFile, opts transcription.MapOptions) *transcription.Mapped {
	data := &transcription.TranscriptData{
		Status:    transcription.StatusCompleted,
		CreatedAt: rf.Timestamp,
	}
	if rf.DurationInTicks != nil {
		data.Duration = util.Ptr(util.TicksToSeconds(*rf.DurationInTicks))
	} else if secs, err := util.ParseISODuration(rf.Duration); err == nil {
		data.Duration = &secs
	}

	texts := make([]string, 0, len(rf.CombinedRecognizedPhrases))
	for _, c := range rf.CombinedRecognizedPhrases {
		if c.Display != "" {
			texts = append(texts, c.Display)
		}
	}

	var utterances []transcription.Utterance
	var confSum float64
	var confN int
	for _, ph := range rf.RecognizedPhrases {
		if !strings.EqualFold(ph.RecognitionStatus, "success") || len(ph.NBest) == 0 {
			continue
		}
		best := ph.NBest[0]
		speaker := speakerID(ph.Speaker)
		start := util.TicksToSeconds(ph.OffsetInTicks)
		utterances = append(utterances, transcription.Utterance{
			Text:       best.Display,
			Start:      start,
			End:        start + util.TicksToSeconds(ph.DurationInTicks),
			Speaker:    speaker,
			Confidence: best.Confidence,
			Words: transcription.ExtractWords(best.Words, func(w Word) transcription.Word {
				ws := util.TicksToSeconds(w.OffsetInTicks)
				return transcription.Word{
					Word:       w.Word,
					Start:      ws,
					End:        ws + util.TicksToSeconds(w.DurationInTicks),
					Confidence: w.Confidence,
					Speaker:    speaker,
				}
			}),
		})
		if best.Confidence != nil {
			confSum += *best.Confidence
			confN++
		}
		data.Language = util.FirstNonNil(data.Language, util.NonZero(ph.Locale))
	}

	if len(texts) == 0 {
		for _, u := range utterances {
			texts = append(texts, u.Text)
		}
	}
	data.Text = strings.Join(texts, " ")
	data.Utterances = util.NonEmpty(utterances)
	data.Words = util.NonEmpty(transcription.WordsOf(data.Utterances))
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)
	if confN > 0 {
		data.Confidence = util.Ptr(confSum / float64(confN))
	}

	return &transcription.Mapped{
		Data:     data,
		Extended: transcription.AzureExtended{Source: rf.Source},
	}
}

func speakerID(s *int) *string {
	if s == nil {
		return nil
	}
	return util.Ptr(strconv.Itoa(*s))
}
