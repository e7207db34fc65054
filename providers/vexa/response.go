// Package vexa maps Vexa meeting transcripts into the unified transcript
// schema.
package vexa

// Transcript is the body of GET /transcripts/{platform}/{native_meeting_id}.
type Transcript struct {
	ID                    *int64    `json:"id,omitempty"`
	Platform              string    `json:"platform,omitempty"`
	NativeMeetingID       string    `json:"native_meeting_id,omitempty"`
	ConstructedMeetingURL string    `json:"constructed_meeting_url,omitempty"`
	Status                string    `json:"status,omitempty"`
	StartTime             *string   `json:"start_time,omitempty"`
	EndTime               *string   `json:"end_time,omitempty"`
	Segments              []Segment `json:"segments,omitempty"`
}

// Segment is one transcribed span attributed to a named participant.
type Segment struct {
	Start             float64 `json:"start"`
	End               float64 `json:"end"`
	Text              string  `json:"text"`
	Language          *string `json:"language,omitempty"`
	Speaker           *string `json:"speaker,omitempty"`
	AbsoluteStartTime *string `json:"absolute_start_time,omitempty"`
	AbsoluteEndTime   *string `json:"absolute_end_time,omitempty"`
}
