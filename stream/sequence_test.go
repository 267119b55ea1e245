package stream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/model"
)

func docFromJSON(t *testing.T, metaJSON, sectionsJSON string) *model.Document {
	t.Helper()
	meta, err := model.ParseFields([]byte(metaJSON))
	assert.NoError(t, err)
	var sections []model.Section
	assert.NoError(t, json.Unmarshal([]byte(sectionsJSON), &sections))
	return &model.Document{Meta: meta, NotesIndex: len(meta), Sections: sections}
}

func drain(seq *Sequence) []model.Section {
	var out []model.Section
	for {
		sec, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, sec)
	}
}

func TestMultiplyYieldsSectionCountTimesK(t *testing.T) {
	doc := docFromJSON(t, `{"bpm":100}`, `[{"sectionNotes":[[0,1,0]]},{"sectionNotes":[[600,2,0]]}]`)

	out := drain(Multiply(doc, 3))

	assert.Len(t, out, 6)
}

func TestMultiplyShiftsEachRepetitionByTheLoopLength(t *testing.T) {
	// one 4-beat section at 100 bpm: loop length 2400ms
	doc := docFromJSON(t, `{"bpm":100}`, `[{"sectionNotes":[[0,1,0,1]],"sectionBeats":4}]`)

	out := drain(Multiply(doc, 3))

	assert := assert.New(t)
	assert.Len(out, 3)
	assert.Equal(float64(0), out[0].Notes[0].Time)
	assert.Equal(float64(2400), out[1].Notes[0].Time)
	assert.Equal(float64(4800), out[2].Notes[0].Time)

	// lane/sustain/flag untouched
	enc, err := json.Marshal(out[2])
	assert.NoError(err)
	assert.Equal(`{"sectionNotes":[[4800,1,0,1]],"sectionBeats":4}`, string(enc))
}

func TestMergeRebasesEachDocumentPastThePrevious(t *testing.T) {
	d1 := docFromJSON(t, `{"bpm":100}`, `[{"sectionNotes":[[0,1,0]]},{"sectionNotes":[[2400,2,0]]}]`)
	d2 := docFromJSON(t, `{"bpm":200}`, `[{"sectionNotes":[[0,3,0]]}]`)

	out := drain(Merge([]*model.Document{d1, d2}))

	assert := assert.New(t)
	assert.Len(out, 3)
	assert.Equal(float64(0), out[0].Notes[0].Time)
	assert.Equal(float64(2400), out[1].Notes[0].Time)

	// d1 lasts 2 sections x 4 beats x 600ms = 4800ms; everything from
	// d2 starts at or after that
	d1Duration := chart.Duration(d1.Sections, d1.BPM())
	assert.Equal(float64(4800), d1Duration)
	assert.GreaterOrEqual(out[2].Notes[0].Time, d1Duration)
}

func TestAppendFillsOnlyEmptySections(t *testing.T) {
	doc := docFromJSON(t, `{"bpm":100}`, `[{"sectionNotes":[[0,1,0]]},{"sectionNotes":[]},{"sectionNotes":[[100,2,0]]},{"sectionNotes":[]}]`)

	out := drain(Append(doc))

	assert := assert.New(t)
	assert.Len(out, 4)
	assert.Len(out[0].Notes, 1)
	assert.Len(out[1].Notes, 2)
	assert.Len(out[2].Notes, 1)
	assert.Len(out[3].Notes, 2)
	assert.Equal(float64(0), out[1].Notes[0].Time)
	assert.Equal(float64(100), out[1].Notes[1].Time)

	// the source document is untouched
	assert.Len(doc.Sections[1].Notes, 0)
}

func TestFromSectionsYieldsReferencesInOrder(t *testing.T) {
	doc := docFromJSON(t, `{}`, `[{"sectionNotes":[[0,1,0]]},{"sectionNotes":[[1,1,0]]}]`)

	out := drain(FromSections(doc.Sections))

	assert := assert.New(t)
	assert.Len(out, 2)
	assert.Equal(doc.Sections[0].Notes[0].Time, out[0].Notes[0].Time)
}

func TestExhaustionIsOneWay(t *testing.T) {
	doc := docFromJSON(t, `{"bpm":100}`, `[{"sectionNotes":[]}]`)
	seq := Multiply(doc, 1)

	drain(seq)

	for i := 0; i < 3; i++ {
		_, ok := seq.Next()
		assert.False(t, ok)
	}
}
