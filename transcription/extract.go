package transcription

import "fmt"

// DefaultSpeakerLabel formats the label used when a provider supplies none.
func DefaultSpeakerLabel(id string) string {
	return "Speaker " + id
}

// ExtractSpeakers collects the distinct speaker ids of items in first-seen
// order. Items with no id are skipped. It returns nil when items is empty or
// carries no ids, so callers can tell "no speaker info" from "no speakers".
// A nil formatLabel selects DefaultSpeakerLabel.
func ExtractSpeakers[U any](items []U, getID func(U) *string, formatLabel func(string) string) []Speaker {
	if len(items) == 0 {
		return nil
	}
	if formatLabel == nil {
		formatLabel = DefaultSpeakerLabel
	}

	seen := make(map[string]struct{})
	var speakers []Speaker
	for _, item := range items {
		id := getID(item)
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		label := formatLabel(*id)
		speakers = append(speakers, Speaker{ID: *id, Label: &label})
	}
	return speakers
}

// ExtractWords maps every element of items through mapper, preserving order.
// It returns nil for empty input.
func ExtractWords[W any](items []W, mapper func(W) Word) []Word {
	if len(items) == 0 {
		return nil
	}
	words := make([]Word, len(items))
	for i, item := range items {
		words[i] = mapper(item)
	}
	return words
}

// ExtractWordsE is ExtractWords for a mapper that can fail. The first
// failure aborts the whole extraction; elements are never skipped.
func ExtractWordsE[W any](items []W, mapper func(W) (Word, error)) ([]Word, error) {
	if len(items) == 0 {
		return nil, nil
	}
	words := make([]Word, len(items))
	for i, item := range items {
		w, err := mapper(item)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		words[i] = w
	}
	return words, nil
}

// SpeakersOf derives the speaker set of a transcript from its utterances,
// falling back to words when utterances carry no speaker references.
func SpeakersOf(utterances []Utterance, words []Word, formatLabel func(string) string) []Speaker {
	if s := ExtractSpeakers(utterances, func(u Utterance) *string { return u.Speaker }, formatLabel); s != nil {
		return mergeSpeakers(s, ExtractSpeakers(words, func(w Word) *string { return w.Speaker }, formatLabel))
	}
	return ExtractSpeakers(words, func(w Word) *string { return w.Speaker }, formatLabel)
}

func mergeSpeakers(a, b []Speaker) []Speaker {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s.ID] = struct{}{}
	}
	for _, s := range b {
		if _, ok := seen[s.ID]; !ok {
			seen[s.ID] = struct{}{}
			a = append(a, s)
		}
	}
	return a
}

// WordsOf flattens the words nested in utterances, giving each word the
// utterance speaker when it has none of its own.
func WordsOf(utterances []Utterance) []Word {
	var words []Word
	for _, u := range utterances {
		for _, w := range u.Words {
			if w.Speaker == nil {
				w.Speaker = u.Speaker
			}
			words = append(words, w)
		}
	}
	return words
}
