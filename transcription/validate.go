package transcription

import (
	"fmt"

	"github.com/kbukum/voicerouter/util"
	"github.com/kbukum/voicerouter/validation"
)

// Validate checks the structural invariants of a transcript: time ranges,
// confidence bounds, a known status, unique speaker ids, and that every
// speaker reference in words and utterances names a listed speaker. All
// failures are reported together.
func (d *TranscriptData) Validate() error {
	v := validation.New().Struct(d)
	if d.Speakers == nil {
		return v.Err()
	}

	ids := make(map[string]struct{}, len(d.Speakers))
	for i, s := range d.Speakers {
		_, dup := ids[s.ID]
		v.Check(!dup, fmt.Sprintf("speakers[%d].id", i), "duplicate speaker id %q", s.ID)
		ids[s.ID] = struct{}{}
	}
	known := func(ref *string) bool {
		if ref == nil {
			return true
		}
		_, ok := ids[*ref]
		return ok
	}
	for i, w := range d.Words {
		v.Check(known(w.Speaker), fmt.Sprintf("words[%d].speaker", i), "references unknown speaker %q", util.Deref(w.Speaker))
	}
	for i, u := range d.Utterances {
		v.Check(known(u.Speaker), fmt.Sprintf("utterances[%d].speaker", i), "references unknown speaker %q", util.Deref(u.Speaker))
	}
	return v.Err()
}
