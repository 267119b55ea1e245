package chart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SENAndrhevn23/FNF-Tools/model"
)

// FormatError reports a document that matches neither the canonical
// {"song":{"notes":[...]}} shape nor a recognized legacy shape.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: not a recognized chart: %v", e.Path, e.Reason)
}

// Load parses a chart file and normalizes it to canonical shape.
//
// Accepted shapes, per the legacy formats in the wild:
//
//	{"song":{"notes":[...], ...meta}}   canonical
//	{"song":{"sections":[...], ...}}    old engines
//	{"notes":[...], ...}                bare top level
//
// Song metadata keys keep their original order so the writer can
// reproduce them verbatim. Note events are validated lazily, at
// transform time, never here.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}

	top, err := model.ParseFields(data)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}

	for _, f := range top {
		if f.Key != "song" {
			continue
		}
		songFields, err := model.ParseFields(f.Value)
		if err != nil {
			break
		}
		if doc, ok := documentFromFields(songFields); ok {
			return doc, nil
		}
		break
	}

	// Legacy: notes array at the top level. Every other top-level
	// member moves into the song object so nothing is dropped.
	if doc, ok := documentFromFields(top); ok {
		return doc, nil
	}

	return nil, &FormatError{Path: path, Reason: "no notes or sections array"}
}

// documentFromFields builds a Document when the fields contain a notes
// (or legacy sections) array.
func documentFromFields(fields []model.Field) (*model.Document, bool) {
	idx := -1
	key := ""
	for i, f := range fields {
		if f.Key == "notes" || f.Key == "sections" {
			if isArray(f.Value) {
				idx = i
				key = f.Key
				break
			}
		}
	}
	if idx < 0 {
		return nil, false
	}

	var sections []model.Section
	if err := json.Unmarshal(fields[idx].Value, &sections); err != nil {
		return nil, false
	}

	doc := &model.Document{Sections: sections, NotesIndex: -1}
	for i, f := range fields {
		if i == idx {
			doc.NotesIndex = len(doc.Meta)
			continue
		}
		// Normalizing a legacy "sections" document must not leave a
		// stray duplicate key next to the rebuilt notes array.
		if key == "sections" && f.Key == "notes" {
			continue
		}
		doc.Meta = append(doc.Meta, f)
	}
	if doc.NotesIndex < 0 {
		doc.NotesIndex = len(doc.Meta)
	}
	return doc, true
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
