package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/voicerouter/errors"
)

func TestValidatorCheck(t *testing.T) {
	v := New().Check(true, "speakers[0].id", "duplicate speaker id %q", "0")
	if v.HasErrors() {
		t.Error("expected no errors when the check holds")
	}

	v.Check(false, "words[3].speaker", "references unknown speaker %q", "9")
	if !v.HasErrors() {
		t.Fatal("expected an error when the check fails")
	}
	got := v.Errors()[0]
	if got.Field != "words[3].speaker" || got.Message != `references unknown speaker "9"` {
		t.Errorf("unexpected field error %+v", got)
	}
}

func TestValidatorOneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"allowed", "queued", false},
		{"empty skipped", "", false},
		{"not allowed", "done", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().OneOf("status", tc.value, "queued", "processing", "completed", "error")
			if v.HasErrors() != tc.wantErr {
				t.Errorf("expected errors=%v, got %v", tc.wantErr, v.Errors())
			}
		})
	}
}

func TestValidatorErr(t *testing.T) {
	if err := New().Err(); err != nil {
		t.Errorf("expected nil for an empty validator, got %v", err)
	}

	err := New().
		Check(false, "a", "is wrong").
		Check(false, "b", "is also wrong").
		Err()
	se, ok := errors.AsStandardError(err)
	if !ok {
		t.Fatalf("expected StandardError, got %T", err)
	}
	if se.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", se.Code)
	}
	if se.Message != "a: is wrong; b: is also wrong" {
		t.Errorf("unexpected message %q", se.Message)
	}
	details, _ := se.Details.(map[string]any)
	if fields, _ := details["fields"].([]FieldError); len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", se.Details)
	}
}

func TestValidatorStructAndChecks(t *testing.T) {
	err := New().
		Struct(span{Start: 2, End: 1}).
		Check(false, "speakers", "must not be empty").
		Err()
	se, ok := errors.AsStandardError(err)
	if !ok {
		t.Fatalf("expected StandardError, got %v", err)
	}
	if !strings.Contains(se.Message, "end:") || !strings.Contains(se.Message, "speakers: must not be empty") {
		t.Errorf("expected struct and custom failures combined, got %q", se.Message)
	}
}

func TestValidatorStruct_NotAStruct(t *testing.T) {
	err := New().Struct(42).Err()
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation failure for a non-struct, got %v", err)
	}
}

type span struct {
	Start      float64  `json:"start" validate:"gte=0"`
	End        float64  `json:"end" validate:"gtefield=Start"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	c := 0.9
	if err := ValidateStruct(span{Start: 1, End: 2, Confidence: &c}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := ValidateStruct(span{Start: 1, End: 1}); err != nil {
		t.Errorf("expected zero-length span to be valid, got %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	c := 1.5
	err := ValidateStruct(span{Start: 2, End: 1, Confidence: &c})
	if err == nil {
		t.Fatal("expected validation error")
	}
	se, ok := errors.AsStandardError(err)
	if !ok {
		t.Fatalf("expected StandardError, got %T", err)
	}
	if se.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", se.Code)
	}
	if !strings.Contains(se.Message, "end") || !strings.Contains(se.Message, "confidence") {
		t.Errorf("expected message to mention end and confidence, got %q", se.Message)
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := RegisterValidation("lowercase_tag", func(v string) bool { return v == strings.ToLower(v) }); err != nil {
		t.Fatalf("register: %v", err)
	}
	type tagged struct {
		Name string `json:"name" validate:"lowercase_tag"`
	}
	if err := ValidateStruct(tagged{Name: "gladia"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := ValidateStruct(tagged{Name: "Gladia"}); err == nil {
		t.Error("expected error for uppercase value")
	}
}
