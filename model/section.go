package model

import (
	"bytes"
	"encoding/json"
)

// DefaultBeats is assumed when a section has no sectionBeats member.
const DefaultBeats = 4

// Section is one ordered batch of note events. All members other than
// sectionNotes are passthrough: the engine preserves them but never
// interprets them (mustHitSection, altAnim, ...). sectionBeats is the
// one passthrough member that is also read, for duration estimation.
type Section struct {
	Notes []Note

	// Extra holds every member except sectionNotes, in document order.
	Extra []Field

	// NotesIndex is the position of sectionNotes among the original
	// members, so serialization can put it back where it was.
	NotesIndex int

	// Opaque is set when the section is not a JSON object at all; it
	// is then emitted verbatim and skipped by every transform.
	Opaque json.RawMessage

	beats    float64
	hasBeats bool
}

// Beats returns the section's beat count, defaulting to 4.
func (s *Section) Beats() float64 {
	if s.hasBeats && s.beats > 0 {
		return s.beats
	}
	return DefaultBeats
}

// WithNotes returns a copy of the section carrying the given notes.
// Passthrough members are shared, which is safe: they are never
// mutated, only re-serialized.
func (s *Section) WithNotes(notes []Note) Section {
	out := *s
	out.Notes = notes
	return out
}

func (s *Section) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		s.Opaque = append(json.RawMessage(nil), trimmed...)
		return nil
	}
	fields, err := ParseFields(trimmed)
	if err != nil {
		s.Opaque = append(json.RawMessage(nil), trimmed...)
		return nil
	}

	s.NotesIndex = -1
	for _, f := range fields {
		switch f.Key {
		case "sectionNotes":
			var notes []Note
			if err := json.Unmarshal(f.Value, &notes); err != nil {
				// Not an array: keep it as a passthrough member.
				s.Extra = append(s.Extra, f)
				continue
			}
			s.Notes = notes
			s.NotesIndex = len(s.Extra)
		case "sectionBeats":
			if b, ok := parseNumber(f.Value); ok {
				s.beats = b
				s.hasBeats = true
			}
			s.Extra = append(s.Extra, f)
		default:
			s.Extra = append(s.Extra, f)
		}
	}
	if s.NotesIndex < 0 {
		s.NotesIndex = len(s.Extra)
	}
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	if s.Opaque != nil {
		return CompactValue(s.Opaque), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	wrote := false
	writeKey := func(key string) error {
		if wrote {
			buf.WriteByte(',')
		}
		wrote = true
		enc, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(enc)
		buf.WriteByte(':')
		return nil
	}
	writeNotes := func() error {
		if err := writeKey("sectionNotes"); err != nil {
			return err
		}
		buf.WriteByte('[')
		for i, n := range s.Notes {
			if i > 0 {
				buf.WriteByte(',')
			}
			enc, err := n.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(enc)
		}
		buf.WriteByte(']')
		return nil
	}

	for i, f := range s.Extra {
		if i == s.NotesIndex {
			if err := writeNotes(); err != nil {
				return nil, err
			}
		}
		if err := writeKey(f.Key); err != nil {
			return nil, err
		}
		buf.Write(CompactValue(f.Value))
	}
	if s.NotesIndex >= len(s.Extra) {
		if err := writeNotes(); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
