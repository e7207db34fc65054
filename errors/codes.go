package errors

// ErrorCode represents a machine-readable error code. The set is closed:
// every StandardError carries exactly one of the codes below.
type ErrorCode string

// Payload errors
const (
	// ErrCodeParse indicates a provider payload could not be decoded.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeNoResults indicates the provider returned no transcription result.
	ErrCodeNoResults ErrorCode = "NO_RESULTS"
	// ErrCodeInvalidInput indicates the caller supplied invalid input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Connection errors (retryable)
const (
	// ErrCodeWebSocket indicates a streaming connection failure.
	ErrCodeWebSocket ErrorCode = "WEBSOCKET_ERROR"
	// ErrCodePollingTimeout indicates a job did not finish while polling.
	ErrCodePollingTimeout ErrorCode = "POLLING_TIMEOUT"
	// ErrCodeConnectionTimeout indicates a connection attempt timed out.
	ErrCodeConnectionTimeout ErrorCode = "CONNECTION_TIMEOUT"
)

// Provider errors
const (
	// ErrCodeTranscription indicates the provider failed the transcription.
	ErrCodeTranscription ErrorCode = "TRANSCRIPTION_ERROR"
	// ErrCodeNotSupported indicates the provider does not support the operation.
	ErrCodeNotSupported ErrorCode = "NOT_SUPPORTED"
	// ErrCodeUnknown is the catch-all code.
	ErrCodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

var defaultMessages = map[ErrorCode]string{
	ErrCodeParse:             "Failed to parse response data",
	ErrCodeWebSocket:         "WebSocket connection error",
	ErrCodePollingTimeout:    "Transcription did not complete within timeout period",
	ErrCodeTranscription:     "Transcription processing failed",
	ErrCodeConnectionTimeout: "Connection attempt timed out",
	ErrCodeInvalidInput:      "Invalid input provided",
	ErrCodeNotSupported:      "Operation not supported by this provider",
	ErrCodeNoResults:         "No transcription results available",
	ErrCodeUnknown:           "An unknown error occurred",
}

var retryableCodes = map[ErrorCode]bool{
	ErrCodeWebSocket:         true,
	ErrCodePollingTimeout:    true,
	ErrCodeConnectionTimeout: true,
}

// Codes returns every known error code.
func Codes() []ErrorCode {
	return []ErrorCode{
		ErrCodeParse,
		ErrCodeWebSocket,
		ErrCodePollingTimeout,
		ErrCodeTranscription,
		ErrCodeConnectionTimeout,
		ErrCodeInvalidInput,
		ErrCodeNotSupported,
		ErrCodeNoResults,
		ErrCodeUnknown,
	}
}

// Valid reports whether c is one of the known codes.
func (c ErrorCode) Valid() bool {
	_, ok := defaultMessages[c]
	return ok
}

// DefaultMessage returns the human-readable default message for code.
// Unknown codes get the UNKNOWN_ERROR message.
func DefaultMessage(code ErrorCode) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return defaultMessages[ErrCodeUnknown]
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
