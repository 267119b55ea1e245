package model

// Document is a chart in canonical shape: the members of the song
// object in original order (minus notes, which is rebuilt on write)
// plus the parsed section list.
//
// A Document is owned by the operation that loaded it and is never
// shared between concurrent operations.
type Document struct {
	// Meta holds every song member except notes, in document order.
	Meta []Field

	// NotesIndex is the position of the notes member among the song
	// members, so the writer can emit metadata around it faithfully.
	NotesIndex int

	Sections []Section
}

// BPM reads the song's bpm metadata, or 0 when absent or non-numeric.
func (d *Document) BPM() float64 {
	for _, f := range d.Meta {
		if f.Key == "bpm" {
			if bpm, ok := parseNumber(f.Value); ok {
				return bpm
			}
			return 0
		}
	}
	return 0
}

// NoteCount totals the parsed note events across all sections.
func (d *Document) NoteCount() int {
	var total int
	for i := range d.Sections {
		total += len(d.Sections[i].Notes)
	}
	return total
}
