package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SENAndrhevn23/FNF-Tools/model"
	"github.com/google/uuid"
)

// Writer serializes a document incrementally: song metadata in its
// original key order, then sections pulled from a Sequence one at a
// time. The full output structure never exists in memory.
//
// Output goes to a uniquely named temp file first and is renamed onto
// Dest only after a syntactically complete document has been written
// and closed. The destination is never visible partially written; on
// failure the temp file is removed and the destination untouched.
type Writer struct {
	Dest string

	// Meta is the song metadata minus the notes key; NotesIndex is
	// where the notes array belongs among those keys.
	Meta       []model.Field
	NotesIndex int

	// Count is the declared number of sections. The writer stops at
	// Count or at exhaustion, whichever comes first; producing fewer
	// sections than declared still closes a valid document (degraded
	// success), and extra sections are ignored.
	Count int

	// Indent selects pretty output when non-empty. Compact and pretty
	// are both valid encodings; this is configuration, not
	// correctness.
	Indent string
}

// Write drains the sequence into the destination and reports how many
// sections were emitted.
func (w *Writer) Write(seq *Sequence) (int, error) {
	if err := os.MkdirAll(filepath.Dir(w.Dest), 0777); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	tmp := w.Dest + "." + uuid.New().String() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}

	written, err := w.writeTo(bufio.NewWriter(f), seq)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return written, err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return written, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp, w.Dest); err != nil {
		os.Remove(tmp)
		return written, fmt.Errorf("replacing %v: %w", w.Dest, err)
	}
	return written, nil
}

func (w *Writer) writeTo(out *bufio.Writer, seq *Sequence) (int, error) {
	e := &emitter{out: out, indent: w.Indent}

	e.raw(`{`)
	e.nl(1)
	e.key("song")
	e.raw(`{`)

	wroteMember := false
	member := func(key string) {
		if wroteMember {
			e.raw(`,`)
		}
		wroteMember = true
		e.nl(2)
		e.key(key)
	}

	written := 0
	notes := func() error {
		member("notes")
		e.raw(`[`)
		first := true
		for written < w.Count {
			sec, ok := seq.Next()
			if !ok {
				break
			}
			enc, err := json.Marshal(sec)
			if err != nil {
				return fmt.Errorf("encoding section %v: %w", written, err)
			}
			if !first {
				e.raw(`,`)
			}
			first = false
			e.nl(3)
			e.value(enc, 3)
			written++
		}
		if !first {
			e.nl(2)
		}
		e.raw(`]`)
		return nil
	}

	for i, f := range w.Meta {
		if i == w.NotesIndex {
			if err := notes(); err != nil {
				return written, err
			}
		}
		member(f.Key)
		e.value(model.CompactValue(f.Value), 2)
	}
	if w.NotesIndex >= len(w.Meta) {
		if err := notes(); err != nil {
			return written, err
		}
	}

	e.nl(1)
	e.raw(`}`)
	e.nl(0)
	e.raw(`}`)

	if err := e.out.Flush(); err != nil {
		return written, fmt.Errorf("writing document: %w", err)
	}
	return written, nil
}

// emitter handles the compact/pretty distinction in one place. All
// write errors are sticky in the underlying bufio.Writer and surface
// at Flush.
type emitter struct {
	out    *bufio.Writer
	indent string
}

func (e *emitter) raw(s string) {
	e.out.WriteString(s)
}

// nl breaks the line and indents to the given depth in pretty mode;
// a no-op in compact mode.
func (e *emitter) nl(depth int) {
	if e.indent == "" {
		return
	}
	e.out.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.out.WriteString(e.indent)
	}
}

func (e *emitter) key(k string) {
	enc, _ := json.Marshal(k)
	e.out.Write(enc)
	e.out.WriteByte(':')
	if e.indent != "" {
		e.out.WriteByte(' ')
	}
}

// value writes a compact raw value, re-indenting it to the given depth
// in pretty mode.
func (e *emitter) value(raw []byte, depth int) {
	if e.indent == "" {
		e.out.Write(raw)
		return
	}
	var buf bytes.Buffer
	prefix := bytes.Repeat([]byte(e.indent), depth)
	if err := json.Indent(&buf, raw, string(prefix), e.indent); err != nil {
		e.out.Write(raw)
		return
	}
	e.out.Write(buf.Bytes())
}
