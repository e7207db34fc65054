// Package meetingbaas maps Meeting BaaS bot recordings, both the meeting data
// document and the webhook events, into the unified transcript schema.
package meetingbaas

// MeetingData is the body of GET /bots/meeting_data.
type MeetingData struct {
	BotData  BotData  `json:"bot_data"`
	MP4      string   `json:"mp4,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
}

// BotData holds the bot and its transcripts.
type BotData struct {
	Bot         Bot          `json:"bot"`
	Transcripts []Transcript `json:"transcripts"`
}

// Bot describes the recording bot.
type Bot struct {
	ID         *int64  `json:"id,omitempty"`
	UUID       string  `json:"uuid,omitempty"`
	BotName    string  `json:"bot_name,omitempty"`
	MeetingURL string  `json:"meeting_url,omitempty"`
	CreatedAt  *string `json:"created_at,omitempty"`
	EndedAt    *string `json:"ended_at,omitempty"`
}

// Transcript is one speaker turn.
type Transcript struct {
	Speaker   string   `json:"speaker"`
	StartTime float64  `json:"start_time"`
	EndTime   *float64 `json:"end_time,omitempty"`
	Words     []Word   `json:"words"`
}

// Word is one recognized token.
type Word struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Event is the envelope of every Meeting BaaS webhook.
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

// EventData is the union of the fields carried by the webhook events.
type EventData struct {
	BotID      string         `json:"bot_id"`
	MP4        string         `json:"mp4,omitempty"`
	Speakers   []string       `json:"speakers,omitempty"`
	Transcript []EventSegment `json:"transcript,omitempty"`
	Error      string         `json:"error,omitempty"`
	Message    string         `json:"message,omitempty"`
	Status     *BotStatus     `json:"status,omitempty"`
}

// EventSegment is one speaker turn inside a complete event.
type EventSegment struct {
	Speaker string      `json:"speaker"`
	Offset  float64     `json:"offset"`
	Words   []EventWord `json:"words"`
}

// EventWord is one token inside a complete event.
type EventWord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// BotStatus is the status carried by bot.status_change events.
type BotStatus struct {
	Code      string  `json:"code"`
	CreatedAt *string `json:"created_at,omitempty"`
}
