package util

import "testing"

func TestPtr(t *testing.T) {
	v := 42
	p := Ptr(v)
	if *p != 42 {
		t.Errorf("expected *p=42, got %d", *p)
	}

	s := Ptr("hello")
	if *s != "hello" {
		t.Errorf("expected *s=hello, got %s", *s)
	}
}

func TestDeref(t *testing.T) {
	v := 42
	if Deref(&v) != 42 {
		t.Error("expected Deref to return 42")
	}

	var p *int
	if Deref(p) != 0 {
		t.Error("expected Deref of nil to return zero value")
	}
}

func TestNonZero(t *testing.T) {
	if NonZero("") != nil {
		t.Error("expected nil for empty string")
	}
	if got := NonZero("en"); got == nil || *got != "en" {
		t.Errorf("expected pointer to en, got %v", got)
	}
	if NonZero(0.0) != nil {
		t.Error("expected nil for zero float")
	}
}

func TestNonEmpty(t *testing.T) {
	if NonEmpty([]int{}) != nil {
		t.Error("expected nil for empty slice")
	}
	if got := NonEmpty([]int{1}); len(got) != 1 {
		t.Errorf("expected slice to be kept, got %v", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "c"); got != "c" {
		t.Errorf("expected c, got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestFirstNonNil(t *testing.T) {
	a := 1.5
	if got := FirstNonNil[float64](nil, &a); got != &a {
		t.Errorf("expected second pointer, got %v", got)
	}
	if FirstNonNil[float64](nil, nil) != nil {
		t.Error("expected nil")
	}
}
