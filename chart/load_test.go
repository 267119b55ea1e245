package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SENAndrhevn23/FNF-Tools/model"
)

func writeChart(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func metaKeys(doc *model.Document) []string {
	var keys []string
	for _, f := range doc.Meta {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestLoadsCanonicalShape(t *testing.T) {
	path := writeChart(t, "a.json", `{"song":{"song":"Bopeebo","bpm":100,"notes":[{"sectionNotes":[[0,1,0]]}],"speed":1}}`)

	doc, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(doc.Sections, 1)
	assert.Equal(float64(100), doc.BPM())
	assert.Equal(2, doc.NotesIndex)
	assert.Equal([]string{"song", "bpm", "speed"}, metaKeys(doc))
}

func TestNormalizesLegacySectionsShape(t *testing.T) {
	path := writeChart(t, "a.json", `{"song":{"bpm":120,"sections":[{"sectionNotes":[]},{"sectionNotes":[[10,0,0]]}]}}`)

	doc, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(doc.Sections, 2)
	assert.Equal(float64(120), doc.BPM())
	assert.Equal([]string{"bpm"}, metaKeys(doc))
}

func TestNormalizesBareTopLevelNotes(t *testing.T) {
	path := writeChart(t, "a.json", `{"bpm":90,"notes":[{"sectionNotes":[[5,1,0]]}]}`)

	doc, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(doc.Sections, 1)
	assert.Equal(float64(90), doc.BPM())
}

func TestRejectsUnrecognizedShapes(t *testing.T) {
	cases := map[string]string{
		"no notes anywhere": `{"song":{"bpm":100}}`,
		"notes not array":   `{"song":{"notes":"nope"}}`,
		"top-level array":   `[1,2,3]`,
		"not json":          `hello`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeChart(t, "a.json", content)
			_, err := Load(path)

			var formatErr *FormatError
			assert.Error(t, err)
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestLoadReportsMissingFilesAsIOErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	var formatErr *FormatError
	assert.Error(t, err)
	assert.False(t, errors.As(err, &formatErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
