// Package midichart converts Standard MIDI Files into Psych Engine
// charts: all note-ons flattened onto one side, lanes folded down to
// the four arrows.
package midichart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/SENAndrhevn23/FNF-Tools/constants"
	"github.com/SENAndrhevn23/FNF-Tools/model"
)

// Side selects which player the imported notes belong to.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// NoteEvent is a flattened note-on with its absolute time resolved
// through the file's tempo map.
type NoteEvent struct {
	TimeMs float64
	Lane   int
}

// ReadFile parses an SMF from disk.
func ReadFile(path string) (s *smf.SMF, e error) {
	// the smf reader can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

// Events flattens every sounding note-on across all tracks, in time
// order. Lanes fold the MIDI key through %8 then %4, matching the
// original importer.
func Events(s *smf.SMF) []NoteEvent {
	var events []NoteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			if ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				events = append(events, NoteEvent{
					TimeMs: float64(s.TimeAt(absTicks)) / 1000,
					Lane:   int(key) % 8 % 4,
				})
			}
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TimeMs < events[j].TimeMs
	})
	return events
}

// BuildSections groups events into sections of at most
// constants.MaxNotesPerSection rows [timeMs, lane, 0]. Every section
// carries the full Psych Engine flag set; the target side decides
// mustHitSection.
func BuildSections(events []NoteEvent, bpm float64, side Side) []model.Section {
	var sections []model.Section
	var rows []model.Note

	flush := func() {
		if len(rows) == 0 {
			return
		}
		sections = append(sections, sectionFor(rows, bpm, side))
		rows = nil
	}

	for _, ev := range events {
		rows = append(rows, model.Note{
			Kind: model.NoteRow,
			Time: math.Trunc(ev.TimeMs),
			Rest: []json.RawMessage{
				json.RawMessage(strconv.Itoa(ev.Lane)),
				json.RawMessage("0"),
			},
		})
		if len(rows) >= constants.MaxNotesPerSection {
			flush()
		}
	}
	flush()
	return sections
}

func sectionFor(rows []model.Note, bpm float64, side Side) model.Section {
	mustHit := "false"
	if side == SidePlayer {
		mustHit = "true"
	}
	sec := model.Section{
		Notes:      rows,
		NotesIndex: 0,
		Extra: []model.Field{
			{Key: "mustHitSection", Value: json.RawMessage(mustHit)},
			{Key: "bpm", Value: model.AppendTime(nil, bpm)},
			{Key: "changeBPM", Value: json.RawMessage("false")},
			{Key: "altAnim", Value: json.RawMessage("false")},
			{Key: "gfSection", Value: json.RawMessage("false")},
			{Key: "typeOfSection", Value: json.RawMessage("0")},
		},
	}
	return sec
}

// Convert reads a MIDI file and builds a complete chart document for
// one side, with the standard Psych Engine song metadata.
func Convert(path string, bpm float64, songName string, side Side) (*model.Document, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	events := Events(s)
	if len(events) == 0 {
		return nil, fmt.Errorf("no notes found in %v", path)
	}

	doc := &model.Document{
		Sections:   BuildSections(events, bpm, side),
		NotesIndex: 1,
		Meta: []model.Field{
			{Key: "song", Value: mustJSON(songName)},
			{Key: "bpm", Value: model.AppendTime(nil, bpm)},
			{Key: "needsVoices", Value: json.RawMessage("true")},
			{Key: "speed", Value: json.RawMessage("1.0")},
			{Key: "player1", Value: json.RawMessage(`"bf"`)},
			{Key: "player2", Value: json.RawMessage(`"dad"`)},
			{Key: "gfVersion", Value: json.RawMessage(`"gf"`)},
			{Key: "stage", Value: json.RawMessage(`"stage"`)},
			{Key: "events", Value: json.RawMessage("[]")},
		},
	}
	return doc, nil
}

func mustJSON(v any) json.RawMessage {
	enc, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return enc
}
