package azure

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMap_SucceededJob(t *testing.T) {
	raw := `{
	  "self": "https://westus.api.cognitive.microsoft.com/speechtotext/v3.2/transcriptions/9c1f",
	  "status": "Succeeded", "locale": "en-US", "displayName": "call",
	  "createdDateTime": "2024-05-01T10:00:00Z", "lastActionDateTime": "2024-05-01T10:01:00Z",
	  "properties": {"diarizationEnabled": true, "duration": "PT1M3.5S"}
	}`
	mapped, err := New().Map(json.RawMessage(raw), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := mapped.Data
	if d.ID != "9c1f" {
		t.Errorf("expected id from self link, got %q", d.ID)
	}
	if d.Status != transcription.StatusCompleted {
		t.Errorf("expected completed, got %s", d.Status)
	}
	if d.Duration == nil || *d.Duration != 63.5 {
		t.Errorf("expected 63.5s, got %v", d.Duration)
	}
	if d.CompletedAt == nil || *d.CompletedAt != "2024-05-01T10:01:00Z" {
		t.Errorf("expected completedAt, got %v", d.CompletedAt)
	}
	if ext := mapped.Extended.(transcription.AzureExtended); ext.Locale != "en-US" {
		t.Errorf("unexpected extended %+v", ext)
	}
}

func TestMap_NotStartedJob(t *testing.T) {
	mapped, err := New().Map(json.RawMessage(`{"self":"https://x/transcriptions/1","status":"NotStarted"}`), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapped.Data.Status != transcription.StatusQueued {
		t.Errorf("expected queued, got %s", mapped.Data.Status)
	}
	if mapped.Data.CompletedAt != nil || mapped.Data.Duration != nil {
		t.Error("expected completion fields to be absent")
	}
}

func TestMap_FailedJob(t *testing.T) {
	raw := `{"self":"https://x/transcriptions/2","status":"Failed","properties":{"error":{"code":"InvalidData","message":"Audio file is corrupt."}}}`
	mapped, err := New().Map(json.RawMessage(raw), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapped.Failure == nil || mapped.Failure.Code != errors.ErrCodeTranscription {
		t.Fatalf("expected TRANSCRIPTION_ERROR, got %+v", mapped.Failure)
	}
	if mapped.Failure.Message != "Audio file is corrupt." {
		t.Errorf("unexpected message %q", mapped.Failure.Message)
	}
}

func TestMap_ResultFile(t *testing.T) {
	raw := `{
	  "source": "https://blob/audio.wav",
	  "timestamp": "2024-05-01T10:00:30Z",
	  "durationInTicks": 25000000,
	  "combinedRecognizedPhrases": [{"channel": 0, "lexical": "hello world", "display": "Hello world."}],
	  "recognizedPhrases": [
	    {"recognitionStatus": "Success", "channel": 0, "speaker": 1, "offsetInTicks": 700000, "durationInTicks": 15900000, "locale": "en-US",
	     "nBest": [{"confidence": 0.9, "lexical": "hello world", "display": "Hello world.",
	       "words": [{"word": "hello", "offsetInTicks": 700000, "durationInTicks": 5000000, "confidence": 0.95},
	                 {"word": "world", "offsetInTicks": 6000000, "durationInTicks": 4000000, "confidence": 0.85}]}]},
	    {"recognitionStatus": "NoMatch", "channel": 0, "offsetInTicks": 0, "durationInTicks": 0, "nBest": []}
	  ]
	}`
	mapped, err := New().Map(json.RawMessage(raw), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := mapped.Data
	if d.Text != "Hello world." {
		t.Errorf("unexpected text %q", d.Text)
	}
	if d.Duration == nil || *d.Duration != 2.5 {
		t.Errorf("expected 2.5s, got %v", d.Duration)
	}
	if len(d.Utterances) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(d.Utterances))
	}
	u := d.Utterances[0]
	if !approx(u.Start, 0.07) || !approx(u.End, 1.66) {
		t.Errorf("unexpected utterance span %v-%v", u.Start, u.End)
	}
	if len(d.Words) != 2 || !approx(d.Words[1].Start, 0.6) || !approx(d.Words[1].End, 1.0) {
		t.Errorf("unexpected words %+v", d.Words)
	}
	if len(d.Speakers) != 1 || d.Speakers[0].ID != "1" {
		t.Errorf("unexpected speakers %+v", d.Speakers)
	}
	if d.Language == nil || *d.Language != "en-US" {
		t.Errorf("expected locale as language, got %v", d.Language)
	}
	if d.Confidence == nil || *d.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", d.Confidence)
	}
}
