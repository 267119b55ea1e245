package midichart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeEvents(n int) []NoteEvent {
	events := make([]NoteEvent, n)
	for i := range events {
		events[i] = NoteEvent{TimeMs: float64(i * 100), Lane: i % 7}
	}
	return events
}

func TestBuildSectionsGroupsSixteenRowsPerSection(t *testing.T) {
	sections := BuildSections(makeEvents(17), 120, SidePlayer)

	assert := assert.New(t)
	assert.Len(sections, 2)
	assert.Len(sections[0].Notes, 16)
	assert.Len(sections[1].Notes, 1)
}

func TestBuildSectionsEmitsRowNotes(t *testing.T) {
	sections := BuildSections([]NoteEvent{{TimeMs: 123.9, Lane: 2}}, 120, SidePlayer)

	enc, err := json.Marshal(sections[0].Notes[0])

	assert.NoError(t, err)
	assert.Equal(t, `[123,2,0]`, string(enc))
}

func TestBuildSectionsSetsMustHitPerSide(t *testing.T) {
	for _, c := range []struct {
		side Side
		want string
	}{
		{SidePlayer, "true"},
		{SideOpponent, "false"},
	} {
		t.Run(string(c.side), func(t *testing.T) {
			sections := BuildSections(makeEvents(1), 120, c.side)

			enc, err := json.Marshal(sections[0])
			assert.NoError(t, err)
			assert.Contains(t, string(enc), `"mustHitSection":`+c.want)
		})
	}
}

func TestBuildSectionsCarriesTheFullFlagSet(t *testing.T) {
	sections := BuildSections(makeEvents(1), 150, SideOpponent)

	var keys []string
	for _, f := range sections[0].Extra {
		keys = append(keys, f.Key)
	}

	assert := assert.New(t)
	assert.Equal([]string{"mustHitSection", "bpm", "changeBPM", "altAnim", "gfSection", "typeOfSection"}, keys)
	assert.Equal("150", string(sections[0].Extra[1].Value))
}

func TestBuildSectionsOfNothingIsEmpty(t *testing.T) {
	assert.Empty(t, BuildSections(nil, 120, SidePlayer))
}
