package speechmatics

import (
	"encoding/json"
	"strings"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// unknownSpeaker is the label Speechmatics uses for undiarized speech.
const unknownSpeaker = "UU"

// Mapper implements transcription.Mapper for Speechmatics.
type Mapper struct{}

// New creates a Speechmatics mapper.
func New() *Mapper { return &Mapper{} }

// Provider returns the Speechmatics provider tag.
func (*Mapper) Provider() transcription.Provider { return transcription.ProviderSpeechmatics }

// Map decodes a job details document or a json-v2 transcript and maps it.
func (m *Mapper) Map(raw json.RawMessage, opts transcription.MapOptions) (*transcription.Mapped, error) {
	var probe struct {
		Results json.RawMessage `json:"results"`
		Format  string          `json:"format"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if probe.Results != nil || probe.Format != "" {
		var tr Transcript
		if err := json.Unmarshal(raw, &tr); err != nil {
			return nil, err
		}
		return MapTranscript(&tr, opts), nil
	}
	var jd JobDetailsResponse
	if err := json.Unmarshal(raw, &jd); err != nil {
		return nil, err
	}
	return MapJob(&jd.Job, opts), nil
}

// IsTranscript reports whether body looks like a json-v2 transcript.
func IsTranscript(body map[string]any) bool {
	_, hasResults := body["results"]
	_, hasFormat := body["format"]
	return hasResults || hasFormat
}

// MapJob maps job details. Rejected and expired jobs are failures.
func MapJob(job *JobDetails, opts transcription.MapOptions) *transcription.Mapped {
	status := opts.Status(job.Status, transcription.ProviderSpeechmatics)
	if status == transcription.StatusError {
		msgs := make([]string, 0, len(job.Errors))
		for _, e := range job.Errors {
			msgs = append(msgs, e.Message)
		}
		failure := errors.NewTranscription(strings.Join(msgs, "; ")).
			WithDetails(map[string]any{"id": job.ID, "status": job.Status})
		return &transcription.Mapped{Failure: failure}
	}
	return &transcription.Mapped{
		Data: &transcription.TranscriptData{
			ID:        job.ID,
			Status:    status,
			Duration:  job.Duration,
			CreatedAt: job.CreatedAt,
		},
		Extended: transcription.SpeechmaticsExtended{JobID: job.ID, DataName: job.DataName},
	}
}

// MapTranscript maps a json-v2 transcript. Punctuation is attached to the
// neighbouring word and utterances group consecutive words of one speaker.
func MapTranscript(tr *Transcript, opts transcription.MapOptions) *transcription.Mapped {
	data := &transcription.TranscriptData{
		ID:          tr.Job.ID,
		Status:      transcription.StatusCompleted,
		Duration:    tr.Job.Duration,
		CreatedAt:   tr.Job.CreatedAt,
		CompletedAt: tr.Metadata.CreatedAt,
	}
	ext := transcription.SpeechmaticsExtended{
		JobID:         tr.Job.ID,
		DataName:      tr.Job.DataName,
		FormatVersion: tr.Format,
		Translations:  tr.Translations,
		Summary:       tr.Summary,
	}
	if cfg := tr.Metadata.TranscriptionConfig; cfg != nil {
		data.Language = util.NonZero(cfg.Language)
		ext.OperatingPoint = cfg.OperatingPoint
	}
	if len(tr.Summary) > 0 {
		var s Summary
		if err := json.Unmarshal(tr.Summary, &s); err == nil {
			data.Summary = util.NonZero(s.Content)
		}
	}

	words := wordsOf(tr.Results)
	data.Words = util.NonEmpty(words)
	data.Utterances = groupUtterances(words)
	data.Speakers = transcription.SpeakersOf(data.Utterances, data.Words, opts.Label)
	data.Text = joinWords(words)
	data.Confidence = meanConfidence(words)

	return &transcription.Mapped{Data: data, Extended: ext}
}

// wordsOf folds punctuation into its neighbouring word: "previous" marks
// are appended to the last word, "next" marks (opening quotes, ¿, ¡) are
// prepended to the following one.
func wordsOf(results []Result) []transcription.Word {
	var words []transcription.Word
	var prefix string
	for _, r := range results {
		if len(r.Alternatives) == 0 {
			continue
		}
		alt := r.Alternatives[0]
		switch r.Type {
		case "word":
			words = append(words, transcription.Word{
				Word:       prefix + alt.Content,
				Start:      r.StartTime,
				End:        r.EndTime,
				Confidence: alt.Confidence,
				Speaker:    speakerRef(alt.Speaker),
			})
			prefix = ""
		case "punctuation":
			if r.AttachesTo == "next" {
				prefix += alt.Content
				continue
			}
			if len(words) > 0 {
				words[len(words)-1].Word += alt.Content
			}
		}
	}
	if prefix != "" && len(words) > 0 {
		words[len(words)-1].Word += prefix
	}
	return words
}

func groupUtterances(words []transcription.Word) []transcription.Utterance {
	var out []transcription.Utterance
	for _, w := range words {
		if n := len(out); n > 0 && sameSpeaker(out[n-1].Speaker, w.Speaker) {
			u := &out[n-1]
			u.Text += " " + w.Word
			u.End = w.End
			u.Words = append(u.Words, w)
			continue
		}
		out = append(out, transcription.Utterance{
			Text:    w.Word,
			Start:   w.Start,
			End:     w.End,
			Speaker: w.Speaker,
			Words:   []transcription.Word{w},
		})
	}
	if len(out) <= 1 && (len(out) == 0 || out[0].Speaker == nil) {
		return nil
	}
	return out
}

func sameSpeaker(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func speakerRef(s string) *string {
	if s == "" || s == unknownSpeaker {
		return nil
	}
	return &s
}

func joinWords(words []transcription.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Word
	}
	return strings.Join(parts, " ")
}

func meanConfidence(words []transcription.Word) *float64 {
	var sum float64
	var n int
	for _, w := range words {
		if w.Confidence != nil {
			sum += *w.Confidence
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return util.Ptr(sum / float64(n))
}
