// Package normalize assembles unified transcript responses from raw
// provider payloads.
//
// An Assembler owns a Registry of per-provider mappers. Adding a provider
// means registering one more transcription.Mapper; existing mappings are
// untouched.
//
//	a := normalize.NewAssembler(normalize.WithTracking(true))
//	resp := a.Assemble(ctx, transcription.ProviderGladia, raw, true, 200)
//	if !resp.Success {
//	    log.Println(resp.Error)
//	}
//
// Assemblers are safe for concurrent use. Wrap one with Instrumented to
// record spans, metrics and logs for every call.
package normalize
