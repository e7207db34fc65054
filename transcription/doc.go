// Package transcription defines the unified transcript schema shared by every
// speech-to-text provider integration, together with the pure helpers used to
// build it: the per-provider status tables, the speaker and word extractors,
// and the Mapper contract each provider implements.
//
// # Absence
//
// Optional scalars are pointers and optional sequences are slices. A nil
// pointer or nil slice means the provider has not produced the value yet; a
// present slice is never empty.
//
// # Usage
//
//	status := transcription.NormalizeStatus("Succeeded", transcription.ProviderAzureSTT)
//	speakers := transcription.ExtractSpeakers(utts, func(u Utterance) *string { return u.Speaker }, nil)
package transcription
