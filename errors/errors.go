package errors

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/kbukum/voicerouter/transport"
)

// StandardError is the normalized error value returned by every operation.
type StandardError struct {
	// Code is the machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// StatusCode is the HTTP status of the failed provider call, if any.
	StatusCode *int `json:"statusCode,omitempty"`
	// Details holds arbitrary provider context.
	Details any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Retryable reports whether the error's code is retryable.
func (e *StandardError) Retryable() bool {
	return IsRetryableCode(e.Code)
}

// WithStatus returns a copy of the error carrying statusCode.
func (e *StandardError) WithStatus(statusCode int) *StandardError {
	c := *e
	c.StatusCode = &statusCode
	return &c
}

// WithDetails returns a copy of the error carrying details.
func (e *StandardError) WithDetails(details any) *StandardError {
	c := *e
	c.Details = details
	return &c
}

// New creates a StandardError. An empty customMessage selects the code's
// default message.
func New(code ErrorCode, customMessage string, details any) *StandardError {
	msg := customMessage
	if msg == "" {
		msg = DefaultMessage(code)
	}
	return &StandardError{Code: code, Message: msg, Details: details}
}

// Convenience constructors

// NewParse creates a PARSE_ERROR.
func NewParse(cause error) *StandardError {
	e := New(ErrCodeParse, "", nil)
	if cause != nil {
		e.Details = map[string]any{"cause": cause.Error()}
	}
	return e
}

// NewNotSupported creates a NOT_SUPPORTED error naming what is unsupported.
func NewNotSupported(what string) *StandardError {
	return New(ErrCodeNotSupported, "", map[string]any{"operation": what})
}

// NewInvalidInput creates an INVALID_INPUT error.
func NewInvalidInput(message string) *StandardError {
	return New(ErrCodeInvalidInput, message, nil)
}

// NewTranscription creates a TRANSCRIPTION_ERROR.
func NewTranscription(message string) *StandardError {
	return New(ErrCodeTranscription, message, nil)
}

type statusCoder interface {
	StatusCode() int
}

type coder interface {
	Code() string
}

// FromException converts an arbitrary failure value into a StandardError.
// It never fails: a panic raised while inspecting v yields an UNKNOWN_ERROR.
// An empty defaultCode selects UNKNOWN_ERROR; statusCode > 0 overrides any
// status found on v.
func FromException(v any, defaultCode ErrorCode, statusCode int) (se *StandardError) {
	if !defaultCode.Valid() {
		defaultCode = ErrCodeUnknown
	}
	defer func() {
		if r := recover(); r != nil {
			se = New(ErrCodeUnknown, "", map[string]any{"panic": fmt.Sprint(r)})
		}
		if statusCode > 0 {
			se.StatusCode = &statusCode
		}
	}()
	return fromValue(v, defaultCode)
}

func fromValue(v any, defaultCode ErrorCode) *StandardError {
	if isNil(v) {
		return New(defaultCode, "", nil)
	}

	switch x := v.(type) {
	case *StandardError:
		c := *x
		return &c
	case StandardError:
		return &x
	case *transport.Error:
		return fromTransport(x, defaultCode)
	case map[string]any:
		return fromBag(x, defaultCode)
	}

	if err, ok := v.(error); ok {
		if se, ok := AsStandardError(err); ok {
			c := *se
			return &c
		}
		if te, ok := transport.As(err); ok {
			e := fromTransport(te, defaultCode)
			e.Message = err.Error()
			return e
		}
	}

	e := New(defaultCode, messageOf(v), nil)
	if sc, ok := v.(statusCoder); ok {
		if code := sc.StatusCode(); code > 0 {
			e.StatusCode = &code
		}
	}
	if c, ok := v.(coder); ok {
		if code := ErrorCode(c.Code()); code.Valid() {
			e.Code = code
		}
	}
	return e
}

func fromTransport(te *transport.Error, defaultCode ErrorCode) *StandardError {
	code := defaultCode
	if te.Kind == transport.KindTimeout {
		code = ErrCodeConnectionTimeout
	}
	e := New(code, te.Message, nil)
	if te.StatusCode > 0 {
		status := te.StatusCode
		e.StatusCode = &status
	}
	if len(te.Body) > 0 {
		e.Details = map[string]any{"body": string(te.Body)}
	}
	return e
}

func fromBag(m map[string]any, defaultCode ErrorCode) *StandardError {
	msg, _ := m["message"].(string)
	if msg == "" {
		msg, _ = m["error"].(string)
	}
	e := New(defaultCode, msg, m["details"])
	if c, ok := m["code"].(string); ok && ErrorCode(c).Valid() {
		e.Code = ErrorCode(c)
		if msg == "" {
			e.Message = DefaultMessage(e.Code)
		}
	}
	for _, key := range []string{"statusCode", "status_code", "status"} {
		if status, ok := asInt(m[key]); ok && status > 0 {
			e.StatusCode = &status
			break
		}
	}
	return e
}

func messageOf(v any) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		var i int
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &i); err == nil {
			return i, true
		}
	}
	return 0, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// CodeForHTTPStatus maps a failed provider HTTP status to an error code.
func CodeForHTTPStatus(status int) ErrorCode {
	switch status {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeConnectionTimeout
	default:
		return ErrCodeTranscription
	}
}
