package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/voicerouter/errors"
)

// FieldError names one failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates field errors from struct tags and from checks tags
// cannot express, such as references between transcript sections.
type Validator struct {
	errs []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Struct runs tag validation on s and records every failure.
func (v *Validator) Struct(s any) *Validator {
	v.errs = append(v.errs, structErrors(s)...)
	return v
}

// Check records an error for field unless ok holds.
func (v *Validator) Check(ok bool, field, format string, args ...any) *Validator {
	if !ok {
		v.errs = append(v.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	return v
}

// OneOf records an error when a non-empty value is not in allowed.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if value == "" || slices.Contains(allowed, value) {
		return v
	}
	return v.Check(false, field, "must be one of: %s", strings.Join(allowed, ", "))
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Errors returns the recorded failures in order.
func (v *Validator) Errors() []FieldError {
	return v.errs
}

// Err returns nil, or an INVALID_INPUT error listing every failure.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errs))
	for i, e := range v.errs {
		if e.Field == "" {
			messages[i] = e.Message
			continue
		}
		messages[i] = e.Field + ": " + e.Message
	}

	return errors.New(errors.ErrCodeInvalidInput, strings.Join(messages, "; "), map[string]any{
		"fields": v.errs,
	})
}
