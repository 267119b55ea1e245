package chart

import "github.com/SENAndrhevn23/FNF-Tools/model"

// Shift returns a new section whose note timestamps are increased by
// offsetMs. The input is never mutated: the caller may shift the same
// original section once per repetition. Notes the engine does not
// recognize pass through unchanged; that is deliberate policy, not an
// error, so unknown note formats survive the round trip.
func Shift(sec model.Section, offsetMs float64) model.Section {
	if sec.Opaque != nil {
		return sec
	}
	notes := make([]model.Note, len(sec.Notes))
	for i, n := range sec.Notes {
		notes[i] = n.Shifted(offsetMs)
	}
	return sec.WithNotes(notes)
}

// Pool concatenates every section's note events in section order. Used
// to fill empty sections during Append.
func Pool(sections []model.Section) []model.Note {
	var pool []model.Note
	for i := range sections {
		pool = append(pool, sections[i].Notes...)
	}
	return pool
}
