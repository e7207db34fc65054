package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON envelope returned to HTTP clients.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error details sent to clients.
type ErrorBody struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Retryable  bool      `json:"retryable"`
	StatusCode *int      `json:"statusCode,omitempty"`
	Details    any       `json:"details,omitempty"`
}

// ToResponse converts a StandardError to an ErrorResponse for JSON serialization.
func (e *StandardError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:       e.Code,
			Message:    e.Message,
			Retryable:  e.Retryable(),
			StatusCode: e.StatusCode,
			Details:    e.Details,
		},
	}
}

// HTTPStatus returns the status the receiver should answer with.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeParse, ErrCodeInvalidInput:
		return 400
	case ErrCodeNotSupported:
		return 404
	case ErrCodeNoResults:
		return 422
	case ErrCodeConnectionTimeout, ErrCodePollingTimeout:
		return 504
	case ErrCodeTranscription, ErrCodeWebSocket:
		return 502
	default:
		return 500
	}
}

// IsStandardError checks if an error is a StandardError.
func IsStandardError(err error) bool {
	var se *StandardError
	return stderrors.As(err, &se)
}

// AsStandardError extracts a StandardError from err's chain.
func AsStandardError(err error) (*StandardError, bool) {
	var se *StandardError
	if stderrors.As(err, &se) && se != nil {
		return se, true
	}
	return nil, false
}
