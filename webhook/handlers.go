package webhook

import (
	"encoding/json"
	"strings"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/providers/assemblyai"
	"github.com/kbukum/voicerouter/providers/deepgram"
	"github.com/kbukum/voicerouter/providers/gladia"
	"github.com/kbukum/voicerouter/providers/meetingbaas"
	"github.com/kbukum/voicerouter/providers/speechmatics"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Handler recognizes and parses one provider's notifications.
// Parse returns an error only when raw cannot be decoded.
type Handler interface {
	Provider() transcription.Provider
	Detect(body map[string]any) bool
	Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error)
}

// DefaultHandlers returns the built-in handlers in detection order.
func DefaultHandlers() []Handler {
	return []Handler{
		GladiaHandler{},
		MeetingBaaSHandler{},
		AssemblyAIHandler{},
		DeepgramHandler{},
		SpeechmaticsHandler{},
	}
}

// Gladia

const (
	gladiaCreated = "transcription.created"
	gladiaSuccess = "transcription.success"
	gladiaError   = "transcription.error"
)

// GladiaHandler parses Gladia transcription.* notifications.
type GladiaHandler struct{}

func (GladiaHandler) Provider() transcription.Provider { return transcription.ProviderGladia }

func (GladiaHandler) Detect(body map[string]any) bool {
	ev, _ := util.GetString(body, "event")
	return strings.HasPrefix(ev, "transcription.")
}

func (GladiaHandler) Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error) {
	var p gladia.WebhookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	switch p.Event {
	case gladiaSuccess:
		ev := &Event{ID: p.ID, EventType: EventCompleted, Success: true}
		if p.Payload == nil {
			// Results are fetched separately; only the notification is known.
			if p.CustomMetadata != nil {
				ev.Metadata = map[string]any{"custom_metadata": p.CustomMetadata}
			}
			return ev, nil
		}
		ev.Data = gladia.MapWebhookResult(&p, opts)
		return ev, nil
	case gladiaError:
		failure := errors.NewTranscription("")
		if p.Error != nil {
			failure = errors.NewTranscription(p.Error.Message)
			if p.Error.Code != nil {
				failure = failure.WithStatus(*p.Error.Code)
			}
		}
		return &Event{ID: p.ID, EventType: EventFailed, Error: failure}, nil
	default:
		ev := &Event{ID: p.ID, EventType: EventCreated, Success: true}
		if p.Event != gladiaCreated {
			ev.EventType = EventType(p.Event)
		}
		if p.CustomMetadata != nil {
			ev.Metadata = map[string]any{"custom_metadata": p.CustomMetadata}
		}
		return ev, nil
	}
}

// Meeting BaaS

const (
	meetingBaaSComplete     = "complete"
	meetingBaaSFailed       = "failed"
	meetingBaaSStatusChange = "bot.status_change"
)

// MeetingBaaSHandler parses Meeting BaaS bot notifications.
type MeetingBaaSHandler struct{}

func (MeetingBaaSHandler) Provider() transcription.Provider {
	return transcription.ProviderMeetingBaaS
}

func (MeetingBaaSHandler) Detect(body map[string]any) bool {
	ev, _ := util.GetString(body, "event")
	if ev != meetingBaaSComplete && ev != meetingBaaSFailed && ev != meetingBaaSStatusChange {
		return false
	}
	data, ok := util.GetMap(body, "data")
	return ok && util.HasKey(data, "bot_id")
}

func (MeetingBaaSHandler) Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error) {
	var e meetingbaas.Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	d := &e.Data

	switch e.Event {
	case meetingBaaSComplete:
		return fromMapped(d.BotID, meetingbaas.MapCompleteEvent(d)), nil
	case meetingBaaSFailed:
		failure := errors.NewTranscription(util.Coalesce(d.Message, d.Error))
		if d.Error != "" {
			failure = failure.WithDetails(map[string]any{"error": d.Error})
		}
		return &Event{ID: d.BotID, EventType: EventFailed, Error: failure}, nil
	case meetingBaaSStatusChange:
		ev := &Event{ID: d.BotID, EventType: EventBotStatusChange, Success: true}
		if s := d.Status; s != nil {
			ev.Metadata = map[string]any{
				"status":          string(opts.Status(s.Code, transcription.ProviderMeetingBaaS)),
				"provider_status": s.Code,
			}
			if s.CreatedAt != nil {
				ev.Metadata["created_at"] = *s.CreatedAt
			}
		}
		return ev, nil
	default:
		return nil, errors.NewNotSupported("meeting-baas event " + e.Event)
	}
}

// AssemblyAI

// AssemblyAIHandler parses AssemblyAI transcript status notifications.
// They carry only the transcript id and status.
type AssemblyAIHandler struct{}

func (AssemblyAIHandler) Provider() transcription.Provider { return transcription.ProviderAssemblyAI }

func (AssemblyAIHandler) Detect(body map[string]any) bool {
	_, hasID := util.GetString(body, "transcript_id")
	_, hasStatus := util.GetString(body, "status")
	return hasID && hasStatus
}

func (AssemblyAIHandler) Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error) {
	var p assemblyai.WebhookPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	status := opts.Status(p.Status, transcription.ProviderAssemblyAI)
	ev := &Event{
		ID:        p.TranscriptID,
		EventType: eventTypeFor(status),
		Success:   status != transcription.StatusError,
		Metadata:  map[string]any{"status": string(status)},
	}
	if !ev.Success {
		ev.Error = errors.NewTranscription("").WithDetails(map[string]any{"transcript_id": p.TranscriptID})
	}
	return ev, nil
}

// Deepgram

// DeepgramHandler parses Deepgram callbacks, which carry a full response.
type DeepgramHandler struct{}

func (DeepgramHandler) Provider() transcription.Provider { return transcription.ProviderDeepgram }

func (DeepgramHandler) Detect(body map[string]any) bool {
	if meta, ok := util.GetMap(body, "metadata"); ok && util.HasKey(meta, "request_id") {
		return true
	}
	results, ok := util.GetMap(body, "results")
	return ok && util.HasKey(results, "channels")
}

func (DeepgramHandler) Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error) {
	var resp deepgram.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	id := resp.RequestID
	if id == "" && resp.Metadata != nil {
		id = resp.Metadata.RequestID
	}
	return fromMapped(id, deepgram.MapResponse(&resp, opts)), nil
}

// Speechmatics

// SpeechmaticsHandler parses Speechmatics notifications carrying either the
// job details or the transcript.
type SpeechmaticsHandler struct{}

func (SpeechmaticsHandler) Provider() transcription.Provider {
	return transcription.ProviderSpeechmatics
}

func (SpeechmaticsHandler) Detect(body map[string]any) bool {
	if speechmatics.IsTranscript(body) {
		return true
	}
	job, ok := util.GetMap(body, "job")
	return ok && util.HasKey(job, "id")
}

func (SpeechmaticsHandler) Parse(raw json.RawMessage, opts transcription.MapOptions) (*Event, error) {
	mapped, err := speechmatics.New().Map(raw, opts)
	if err != nil {
		return nil, err
	}
	return fromMapped("", mapped), nil
}
