package stream

import (
	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/model"
)

// A Sequence lazily produces sections, one pull at a time. It has two
// states, active and exhausted, and the transition is one-way: once
// Next reports false it reports false forever. Sequences are never
// reused or rewound.
//
// Everything downstream consumes a sequence eagerly and synchronously,
// so at most one produced section is alive beyond the source document.
type Sequence struct {
	next func() (model.Section, bool)
}

// NewSequence wraps a pull function into a Sequence.
func NewSequence(next func() (model.Section, bool)) *Sequence {
	return &Sequence{next: next}
}

// Next produces the next section, or reports exhaustion.
func (s *Sequence) Next() (model.Section, bool) {
	if s.next == nil {
		return model.Section{}, false
	}
	sec, ok := s.next()
	if !ok {
		s.next = nil
		return model.Section{}, false
	}
	return sec, true
}

// FromSections yields the given sections as-is, by reference. Used by
// Split and Compress, where no transform occurs.
func FromSections(sections []model.Section) *Sequence {
	i := 0
	return NewSequence(func() (model.Section, bool) {
		if i >= len(sections) {
			return model.Section{}, false
		}
		sec := sections[i]
		i++
		return sec, true
	})
}

// Multiply repeats the document's sections k times. Repetition i is
// shifted forward by i times the document's duration, so each loop
// plays strictly after the previous one. Yields len(sections) × k.
func Multiply(doc *model.Document, k int) *Sequence {
	loop := chart.Duration(doc.Sections, doc.BPM())
	rep, idx := 0, 0
	return NewSequence(func() (model.Section, bool) {
		for rep < k {
			if idx < len(doc.Sections) {
				sec := chart.Shift(doc.Sections[idx], float64(rep)*loop)
				idx++
				return sec, true
			}
			rep++
			idx = 0
		}
		return model.Section{}, false
	})
}

// Merge concatenates documents on one timeline. A running time base
// starts at 0; each document's sections are shifted by the base, then
// the base advances by that document's own duration, so later content
// begins strictly after earlier content ends and never overlaps.
func Merge(docs []*model.Document) *Sequence {
	var base float64
	di, si := 0, 0
	return NewSequence(func() (model.Section, bool) {
		for di < len(docs) {
			doc := docs[di]
			if si < len(doc.Sections) {
				sec := chart.Shift(doc.Sections[si], base)
				si++
				return sec, true
			}
			base += chart.Duration(doc.Sections, doc.BPM())
			di++
			si = 0
		}
		return model.Section{}, false
	})
}

// Append re-yields every section, assigning a fresh copy of the note
// pool (the concatenation of all existing notes in section order) to
// each section that currently has none. Sections with notes, and
// opaque sections, pass through untouched.
func Append(doc *model.Document) *Sequence {
	pool := chart.Pool(doc.Sections)
	i := 0
	return NewSequence(func() (model.Section, bool) {
		if i >= len(doc.Sections) {
			return model.Section{}, false
		}
		sec := doc.Sections[i]
		i++
		if sec.Opaque == nil && len(sec.Notes) == 0 {
			return sec.WithNotes(append([]model.Note(nil), pool...)), true
		}
		return sec, true
	})
}
