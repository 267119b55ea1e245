package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NoteKind discriminates the two recognized note encodings. Anything
// else is carried through the pipeline verbatim.
type NoteKind int

const (
	// NoteRow is the positional encoding: an array whose first element
	// is the timestamp in milliseconds, e.g. [1200, 2, 0].
	NoteRow NoteKind = iota
	// NoteKeyed is the object encoding with an explicit "time" member.
	NoteKeyed
	// NoteOpaque is any other shape. Opaque notes are never shifted.
	NoteOpaque
)

// Note is one timestamped playable event within a section.
type Note struct {
	Kind NoteKind

	// Time is the timestamp in ms for row and keyed notes.
	Time float64

	// Rest holds the row elements after the timestamp (lane, sustain,
	// note type...). Raw, untouched.
	Rest []json.RawMessage

	// Fields holds the keyed variant's members in document order. The
	// "time" member's stored value is stale; Time is authoritative.
	Fields []Field

	// Raw is the verbatim bytes of an opaque note.
	Raw json.RawMessage
}

// Shifted returns a copy of the note with its timestamp increased by
// offsetMs. The receiver is not modified; opaque notes come back as-is.
func (n Note) Shifted(offsetMs float64) Note {
	switch n.Kind {
	case NoteRow, NoteKeyed:
		out := n
		out.Time += offsetMs
		return out
	default:
		return n
	}
}

func (n *Note) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		n.Kind = NoteOpaque
		n.Raw = append(json.RawMessage(nil), data...)
		return nil
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			break
		}
		if len(elems) == 0 {
			break
		}
		t, ok := parseNumber(elems[0])
		if !ok {
			break
		}
		n.Kind = NoteRow
		n.Time = t
		n.Rest = elems[1:]
		return nil
	case '{':
		fields, err := ParseFields(trimmed)
		if err != nil {
			break
		}
		for _, f := range fields {
			if f.Key != "time" {
				continue
			}
			t, ok := parseNumber(f.Value)
			if !ok {
				break
			}
			n.Kind = NoteKeyed
			n.Time = t
			n.Fields = fields
			return nil
		}
	}

	n.Kind = NoteOpaque
	n.Raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	switch n.Kind {
	case NoteRow:
		buf.WriteByte('[')
		buf.Write(AppendTime(nil, n.Time))
		for _, el := range n.Rest {
			buf.WriteByte(',')
			buf.Write(CompactValue(el))
		}
		buf.WriteByte(']')
	case NoteKeyed:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if f.Key == "time" {
				buf.Write(AppendTime(nil, n.Time))
			} else {
				buf.Write(CompactValue(f.Value))
			}
		}
		buf.WriteByte('}')
	default:
		return CompactValue(n.Raw), nil
	}
	return buf.Bytes(), nil
}

// AppendTime formats a timestamp, keeping integral values free of a
// decimal point so integer inputs stay integers after shifting.
func AppendTime(dst []byte, t float64) []byte {
	return strconv.AppendFloat(dst, t, 'f', -1, 64)
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
