package transcription

import "strings"

// StatusRule maps one lowercase provider status key to a unified status.
type StatusRule struct {
	Key    string
	Status Status
}

// StatusTable is an ordered list of rules. Order matters: during the
// substring fallback the first declared key contained in the input wins.
type StatusTable []StatusRule

var statusTables = map[Provider]StatusTable{
	ProviderGladia: {
		{"queued", StatusQueued},
		{"processing", StatusProcessing},
		{"done", StatusCompleted},
		{"error", StatusError},
	},
	ProviderAssemblyAI: {
		{"queued", StatusQueued},
		{"processing", StatusProcessing},
		{"completed", StatusCompleted},
		{"error", StatusError},
	},
	ProviderDeepgram: {
		{"queued", StatusQueued},
		{"processing", StatusProcessing},
		{"completed", StatusCompleted},
		{"error", StatusError},
	},
	ProviderAzureSTT: {
		{"succeeded", StatusCompleted},
		{"running", StatusProcessing},
		{"notstarted", StatusQueued},
		{"failed", StatusError},
	},
	ProviderSpeechmatics: {
		{"running", StatusProcessing},
		{"done", StatusCompleted},
		{"rejected", StatusError},
		{"expired", StatusError},
	},
	ProviderVexa: {
		{"requested", StatusQueued},
		{"active", StatusProcessing},
		{"completed", StatusCompleted},
		{"failed", StatusError},
	},
	ProviderMeetingBaaS: {
		{"joining_call", StatusQueued},
		{"in_waiting_room", StatusQueued},
		{"in_call_recording", StatusProcessing},
		{"call_ended", StatusProcessing},
		{"complete", StatusCompleted},
		{"failed", StatusError},
	},
}

// StatusTableFor returns a copy of the provider's status table. The second
// result is false for providers that report no status (openai-whisper).
func StatusTableFor(p Provider) (StatusTable, bool) {
	t, ok := statusTables[resolveTableKey(p)]
	if !ok {
		return nil, false
	}
	return append(StatusTable(nil), t...), true
}

func resolveTableKey(p Provider) Provider {
	if p.Valid() {
		return p
	}
	if alias, ok := providerAliases[strings.ToLower(string(p))]; ok {
		return alias
	}
	return p
}

// Lookup resolves s against the table: exact key first, then the first
// declared key that is a substring of s. s must already be lowercase.
func (t StatusTable) Lookup(s string) (Status, bool) {
	for _, r := range t {
		if r.Key == s {
			return r.Status, true
		}
	}
	for _, r := range t {
		if strings.Contains(s, r.Key) {
			return r.Status, true
		}
	}
	return "", false
}

// NormalizeStatus maps a provider status string to a unified status.
// Empty input and unknown statuses resolve to the default, which is
// StatusQueued unless one is supplied.
func NormalizeStatus(providerStatus string, p Provider, defaultStatus ...Status) Status {
	def := StatusQueued
	if len(defaultStatus) > 0 && defaultStatus[0] != "" {
		def = defaultStatus[0]
	}
	if providerStatus == "" {
		return def
	}
	table, ok := statusTables[resolveTableKey(p)]
	if !ok {
		return def
	}
	if s, ok := table.Lookup(strings.ToLower(providerStatus)); ok {
		return s
	}
	return def
}
