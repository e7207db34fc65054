// Package validation checks transcripts and configuration.
//
// Struct tags cover per-field rules; a Validator adds checks that span
// fields. Failures are reported as one INVALID_INPUT error whose details list
// every offending field.
//
//	type Word struct {
//	    Start float64 `validate:"gte=0"`
//	    End   float64 `validate:"gtefield=Start"`
//	}
//	err := validation.ValidateStruct(w)
//
//	err := validation.New().
//	    Struct(d).
//	    Check(known(w.Speaker), "words[0].speaker", "references unknown speaker %q", *w.Speaker).
//	    Err()
package validation
