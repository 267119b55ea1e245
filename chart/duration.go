package chart

import "github.com/SENAndrhevn23/FNF-Tools/model"

// FallbackBPM stands in when a chart has no usable bpm, so duration
// math never divides by zero.
const FallbackBPM = 100

// Duration estimates the playable length of the sections in
// milliseconds: each section contributes its beat count (default 4)
// times the length of one beat at the given bpm.
//
// This is the loop length that separates repeated or concatenated
// content in time.
func Duration(sections []model.Section, bpm float64) float64 {
	if bpm <= 0 {
		bpm = FallbackBPM
	}
	beatMs := 60000 / bpm
	var total float64
	for i := range sections {
		total += sections[i].Beats() * beatMs
	}
	return total
}
