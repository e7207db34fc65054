package normalize

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/providers/assemblyai"
	"github.com/kbukum/voicerouter/providers/azure"
	"github.com/kbukum/voicerouter/providers/deepgram"
	"github.com/kbukum/voicerouter/providers/gladia"
	"github.com/kbukum/voicerouter/providers/meetingbaas"
	"github.com/kbukum/voicerouter/providers/speechmatics"
	"github.com/kbukum/voicerouter/providers/vexa"
	"github.com/kbukum/voicerouter/providers/whisper"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/util"
)

// Normalizer turns provider call results into unified responses.
type Normalizer interface {
	// Assemble maps raw, the body of a provider call that succeeded or
	// failed at the HTTP level with httpStatus.
	Assemble(ctx context.Context, p transcription.Provider, raw json.RawMessage, success bool, httpStatus int, opts ...CallOption) *transcription.UnifiedTranscriptResponse
	// AssembleFailure converts a transport-level failure.
	AssembleFailure(ctx context.Context, p transcription.Provider, cause any, raw json.RawMessage, opts ...CallOption) *transcription.UnifiedTranscriptResponse
}

var _ Normalizer = (*Assembler)(nil)

// Assembler is the default Normalizer.
type Assembler struct {
	registry  *Registry
	mapOpts   transcription.MapOptions
	tracking  bool
	retainRaw bool
	newID     func() string
}

// BuiltinMappers returns one mapper per supported provider.
func BuiltinMappers() []transcription.Mapper {
	return []transcription.Mapper{
		gladia.New(),
		deepgram.New(),
		assemblyai.New(),
		whisper.New(),
		azure.New(),
		speechmatics.New(),
		vexa.New(),
		meetingbaas.New(),
	}
}

// NewAssembler creates an Assembler with every built-in mapper registered.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		registry:  NewRegistry(BuiltinMappers()...),
		mapOpts:   transcription.MapOptions{DefaultStatus: transcription.StatusQueued},
		retainRaw: true,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry returns the assembler's mapper registry.
func (a *Assembler) Registry() *Registry { return a.registry }

// Assemble implements Normalizer.
func (a *Assembler) Assemble(ctx context.Context, p transcription.Provider, raw json.RawMessage, success bool, httpStatus int, opts ...CallOption) *transcription.UnifiedTranscriptResponse {
	start := time.Now()
	resp := a.assemble(p, raw, success, httpStatus)
	a.stamp(ctx, resp, start, opts)
	return resp
}

// AssembleFailure implements Normalizer. cause is classified with
// errors.FromException; raw is the error body, if any.
func (a *Assembler) AssembleFailure(ctx context.Context, p transcription.Provider, cause any, raw json.RawMessage, opts ...CallOption) *transcription.UnifiedTranscriptResponse {
	start := time.Now()
	if canonical, err := transcription.ParseProvider(string(p)); err == nil {
		p = canonical
	}
	resp := transcription.Failed(p, errors.FromException(cause, errors.ErrCodeUnknown, 0), a.keepRaw(raw))
	a.stamp(ctx, resp, start, opts)
	return resp
}

func (a *Assembler) assemble(p transcription.Provider, raw json.RawMessage, success bool, httpStatus int) (resp *transcription.UnifiedTranscriptResponse) {
	kept := a.keepRaw(raw)

	canonical, err := transcription.ParseProvider(string(p))
	if err != nil {
		return transcription.Failed(p, errors.NewNotSupported("provider "+string(p)), kept)
	}
	p = canonical

	if !success {
		return transcription.Failed(p, rejection(raw, httpStatus), kept)
	}
	if isEmpty(raw) {
		return transcription.Failed(p, errors.New(errors.ErrCodeNoResults, "", nil), kept)
	}

	m, ok := a.registry.Get(p)
	if !ok {
		return transcription.Failed(p, errors.NewNotSupported("provider "+string(p)), kept)
	}

	defer func() {
		if r := recover(); r != nil {
			resp = transcription.Failed(p, errors.FromException(r, errors.ErrCodeUnknown, 0), kept)
		}
	}()

	mapped, err := m.Map(raw, a.mapOpts)
	switch {
	case err != nil:
		return transcription.Failed(p, errors.NewParse(err), kept)
	case mapped == nil || (mapped.Data == nil && mapped.Failure == nil):
		return transcription.Failed(p, errors.New(errors.ErrCodeNoResults, "", nil), kept)
	case mapped.Failure != nil:
		return transcription.Failed(p, mapped.Failure, kept)
	}

	return &transcription.UnifiedTranscriptResponse{
		Success:  true,
		Provider: p,
		Data:     mapped.Data,
		Extended: mapped.Extended,
		Raw:      kept,
	}
}

func (a *Assembler) stamp(ctx context.Context, resp *transcription.UnifiedTranscriptResponse, start time.Time, opts []CallOption) {
	if !a.tracking {
		return
	}
	var c call
	for _, opt := range opts {
		opt(&c)
	}
	id := c.requestID
	if id == "" {
		id = logger.RequestIDFromContext(ctx)
	}
	if id == "" {
		id = a.newID()
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	resp.Tracking = &transcription.Tracking{
		RequestID:        id,
		AudioHash:        c.audioHash,
		ProcessingTimeMs: &elapsed,
	}
}

// keepRaw returns the payload to retain on the response. Bodies that are
// not valid JSON are kept as a JSON string.
func (a *Assembler) keepRaw(raw json.RawMessage) json.RawMessage {
	if !a.retainRaw || isEmpty(raw) {
		return nil
	}
	if json.Valid(raw) {
		return raw
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nil
	}
	return quoted
}

// rejection builds the error for a provider call that failed at the HTTP
// level. The message is taken from the error body when it carries one.
func rejection(raw json.RawMessage, httpStatus int) *errors.StandardError {
	se := errors.New(errors.CodeForHTTPStatus(httpStatus), bodyMessage(raw), nil)
	if bag, ok := util.DecodeObject(raw); ok {
		se.Details = map[string]any{"body": bag}
	}
	if httpStatus > 0 {
		se = se.WithStatus(httpStatus)
	}
	return se
}

func bodyMessage(raw json.RawMessage) string {
	bag, ok := util.DecodeObject(raw)
	if !ok {
		return ""
	}
	for _, key := range []string{"message", "error", "detail", "err_msg"} {
		if s, ok := util.GetString(bag, key); ok && s != "" {
			return s
		}
		if nested, ok := util.GetMap(bag, key); ok {
			if s, ok := util.GetString(nested, "message"); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func isEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
