package deepgram

import (
	"encoding/json"
	"testing"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
)

const listenResponse = `{
  "metadata": {
    "request_id": "req-1", "created": "2024-05-01T10:00:00.000Z", "duration": 2.5,
    "channels": 1, "models": ["nova-2"]
  },
  "results": {
    "channels": [{
      "detected_language": "en", "language_confidence": 0.97,
      "alternatives": [{
        "transcript": "hello there",
        "confidence": 0.98,
        "words": [
          {"word": "hello", "punctuated_word": "Hello", "start": 0.1, "end": 0.4, "confidence": 0.99, "speaker": 0},
          {"word": "there", "start": 0.5, "end": 0.9, "confidence": 0.97, "speaker": 1}
        ]
      }]
    }],
    "utterances": [
      {"start": 0.1, "end": 0.4, "confidence": 0.99, "channel": 0, "transcript": "Hello", "speaker": 0,
       "words": [{"word": "hello", "start": 0.1, "end": 0.4, "confidence": 0.99, "speaker": 0}]},
      {"start": 0.5, "end": 0.9, "confidence": 0.97, "channel": 0, "transcript": "there", "speaker": 1}
    ],
    "summary": {"result": "success", "short": "A greeting."},
    "topics": {"segments": []}
  }
}`

func TestMap_Completed(t *testing.T) {
	mapped, err := New().Map(json.RawMessage(listenResponse), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := mapped.Data
	if d.ID != "req-1" || d.Status != transcription.StatusCompleted {
		t.Errorf("unexpected id/status %s/%s", d.ID, d.Status)
	}
	if d.Text != "hello there" || d.Confidence == nil || *d.Confidence != 0.98 {
		t.Errorf("unexpected text/confidence %q/%v", d.Text, d.Confidence)
	}
	if len(d.Words) != 2 || d.Words[0].Word != "Hello" {
		t.Errorf("expected punctuated words, got %+v", d.Words)
	}
	if len(d.Utterances) != 2 || d.Utterances[1].Words != nil {
		t.Errorf("unexpected utterances %+v", d.Utterances)
	}
	if len(d.Speakers) != 2 || d.Speakers[1].ID != "1" {
		t.Errorf("unexpected speakers %+v", d.Speakers)
	}
	if d.Summary == nil || *d.Summary != "A greeting." {
		t.Errorf("unexpected summary %v", d.Summary)
	}
	if d.Language == nil || *d.Language != "en" || d.Duration == nil || *d.Duration != 2.5 {
		t.Errorf("unexpected language/duration %v/%v", d.Language, d.Duration)
	}
	ext := mapped.Extended.(transcription.DeepgramExtended)
	if len(ext.Models) != 1 || ext.Topics == nil || *ext.LanguageConfidence != 0.97 {
		t.Errorf("unexpected extended %+v", ext)
	}
}

func TestMap_CallbackAccepted(t *testing.T) {
	mapped, err := New().Map(json.RawMessage(`{"request_id":"req-9"}`), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := mapped.Data
	if d.Status != transcription.StatusQueued || d.ID != "req-9" {
		t.Errorf("expected queued req-9, got %s/%s", d.Status, d.ID)
	}
	if d.Words != nil || d.Confidence != nil || d.Duration != nil {
		t.Error("expected optional fields to be absent")
	}
}

func TestMap_ErrorBody(t *testing.T) {
	mapped, err := New().Map(json.RawMessage(`{"err_code":"Bad Request","err_msg":"corrupt audio","request_id":"r"}`), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapped.Failure == nil || mapped.Failure.Code != errors.ErrCodeTranscription {
		t.Fatalf("expected TRANSCRIPTION_ERROR, got %+v", mapped.Failure)
	}
	if mapped.Failure.Message != "corrupt audio" {
		t.Errorf("unexpected message %q", mapped.Failure.Message)
	}
}

func TestMap_NoUtterancesUsesWordSpeakers(t *testing.T) {
	raw := `{"metadata":{"request_id":"r"},"results":{"channels":[{"alternatives":[{"transcript":"a b","words":[
	  {"word":"a","start":0,"end":1,"speaker":3},{"word":"b","start":1,"end":2}]}]}]}}`
	mapped, err := New().Map(json.RawMessage(raw), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mapped.Data.Speakers) != 1 || mapped.Data.Speakers[0].ID != "3" {
		t.Errorf("unexpected speakers %+v", mapped.Data.Speakers)
	}
	if mapped.Data.Utterances != nil {
		t.Error("expected utterances to be absent")
	}
}

func TestMap_NullIntelligenceOmitted(t *testing.T) {
	raw := `{"metadata":{"request_id":"r"},"results":{"channels":[],"topics":null,"intents":null,"sentiments":{"average":{"sentiment":"neutral"}}}}`
	mapped, err := New().Map(json.RawMessage(raw), transcription.MapOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ext, ok := mapped.Extended.(transcription.DeepgramExtended)
	if !ok {
		t.Fatalf("expected DeepgramExtended, got %T", mapped.Extended)
	}
	if ext.Topics != nil || ext.Intents != nil {
		t.Errorf("expected null topics and intents to be dropped, got %s / %s", ext.Topics, ext.Intents)
	}
	if ext.Sentiments == nil {
		t.Error("expected sentiments to be kept")
	}

	out, err := json.Marshal(ext)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := fields["topics"]; ok {
		t.Errorf("expected topics omitted, got %s", out)
	}
}
