package webhook

import (
	"encoding/json"
	"time"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
)

// EventType classifies a normalized notification.
type EventType string

const (
	EventCreated         EventType = "transcription.created"
	EventProcessing      EventType = "transcription.processing"
	EventCompleted       EventType = "transcription.completed"
	EventFailed          EventType = "transcription.failed"
	EventBotStatusChange EventType = "bot.status_change"
)

// Event is a provider notification in unified form. Data is absent for
// notifications that carry only metadata. Raw is always the untouched body.
type Event struct {
	Provider  transcription.Provider        `json:"provider"`
	EventType EventType                     `json:"eventType"`
	ID        string                        `json:"id,omitempty"`
	Success   bool                          `json:"success"`
	Data      *transcription.TranscriptData `json:"data,omitempty"`
	Extended  transcription.Extended        `json:"extended,omitempty"`
	Error     *errors.StandardError         `json:"error,omitempty"`
	Metadata  map[string]any                `json:"metadata,omitempty"`
	Timestamp time.Time                     `json:"timestamp"`
	Raw       json.RawMessage               `json:"raw"`
}

// eventTypeFor maps a unified status to the event announcing it.
func eventTypeFor(s transcription.Status) EventType {
	switch s {
	case transcription.StatusCompleted:
		return EventCompleted
	case transcription.StatusError:
		return EventFailed
	case transcription.StatusProcessing:
		return EventProcessing
	default:
		return EventCreated
	}
}

// fromMapped builds an event from a mapper result.
func fromMapped(id string, m *transcription.Mapped) *Event {
	if m.Failure != nil {
		return &Event{ID: id, EventType: EventFailed, Error: m.Failure}
	}
	if m.Data.ID != "" {
		id = m.Data.ID
	}
	return &Event{
		ID:        id,
		EventType: eventTypeFor(m.Data.Status),
		Success:   true,
		Data:      m.Data,
		Extended:  m.Extended,
	}
}
