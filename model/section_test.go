package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesSectionWithPassthroughFlags(t *testing.T) {
	src := `{"sectionNotes":[[0,1,0,1]],"lengthInSteps":16,"mustHitSection":true,"sectionBeats":8}`
	var s Section
	err := json.Unmarshal([]byte(src), &s)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(s.Notes, 1)
	assert.Equal(float64(8), s.Beats())
	assert.Len(s.Extra, 3)
}

func TestSectionBeatsDefaultsToFour(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"sectionNotes":[]}`), &s)

	assert.NoError(t, err)
	assert.Equal(t, float64(4), s.Beats())
}

func TestSectionRoundTripKeepsKeyPositions(t *testing.T) {
	cases := []string{
		`{"sectionNotes":[[0,1,0]],"mustHitSection":true}`,
		`{"mustHitSection":false,"sectionNotes":[[0,1,0]],"altAnim":true}`,
		`{"bpm":150,"changeBPM":true,"sectionNotes":[]}`,
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			var s Section
			assert.NoError(t, json.Unmarshal([]byte(c), &s))
			enc, err := json.Marshal(s)
			assert.NoError(t, err)
			assert.Equal(t, c, string(enc))
		})
	}
}

func TestNonObjectSectionPassesThrough(t *testing.T) {
	var s Section
	assert.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &s))

	enc, err := json.Marshal(s)

	assert.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(enc))
}

func TestWithNotesSharesNothingMutable(t *testing.T) {
	var s Section
	assert.NoError(t, json.Unmarshal([]byte(`{"sectionNotes":[[0,1,0]],"mustHitSection":true}`), &s))

	out := s.WithNotes([]Note{})

	assert := assert.New(t)
	assert.Len(s.Notes, 1)
	assert.Len(out.Notes, 0)
	assert.Equal(s.Extra, out.Extra)
}
