// Package ops implements the end-to-end chart operations: load a
// chart, run a lazy section sequence through the streaming writer,
// report what happened. All parameter validation happens before any
// load or write; once streaming starts the only abnormal end is an
// I/O failure, which leaves the destination untouched.
package ops

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/model"
	"github.com/SENAndrhevn23/FNF-Tools/stream"
	"github.com/SENAndrhevn23/FNF-Tools/util"
)

// Config carries the knobs that used to be process globals in the
// original tool. Operations receive it explicitly.
type Config struct {
	// OutputRoot is where per-operation folders are created. Empty
	// means next to the input file.
	OutputRoot string

	// MaxBytes is the size-guard ceiling; zero disables the guard.
	MaxBytes int64

	// Confirm is asked when an estimate exceeds MaxBytes. Nil declines.
	Confirm func(estimatedMB float64) bool

	// Indent selects pretty output when non-empty.
	Indent string
}

// Result summarizes one operation.
type Result struct {
	Outputs  []string
	Sections int      // sections written across all outputs
	Notes    int      // note events in the written content
	Filled   int      // empty sections filled (Append only)
	Skipped  []string // inputs skipped as invalid (Merge only)

	// Canceled is set when the size guard was declined. A clean
	// outcome, not an error: nothing was loaded or written.
	Canceled bool
}

// ValueError rejects an out-of-range operation parameter before any
// file is touched.
type ValueError struct {
	Param string
	Value int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %v: %v", e.Param, e.Value)
}

// ErrNoValidCharts means every merge input failed to load or validate.
var ErrNoValidCharts = errors.New("no valid charts to merge")

func (c Config) guard() stream.SizeGuard {
	return stream.SizeGuard{MaxBytes: c.MaxBytes, Confirm: c.Confirm}
}

// outDir resolves the folder an operation writes into, next to the
// input unless an output root is configured.
func (c Config) outDir(inputPath, folder string) string {
	root := c.OutputRoot
	if root == "" {
		root = filepath.Dir(inputPath)
	}
	return filepath.Join(root, folder)
}

// Multiply repeats a chart k times on one timeline, optionally
// splitting the multiplied stream across several part files. One
// shared sequence feeds every part, so each part picks up exactly
// where the previous one stopped.
func Multiply(cfg Config, path string, k, splits int) (Result, error) {
	var res Result
	if k < 1 {
		return res, &ValueError{Param: "multiplier", Value: k}
	}
	if splits < 1 {
		splits = 1
	}
	if !cfg.guard().Allow(stream.FileSize(path) * int64(k)) {
		res.Canceled = true
		return res, nil
	}

	doc, err := chart.Load(path)
	if err != nil {
		return res, err
	}
	total := len(doc.Sections) * k
	res.Notes = doc.NoteCount() * k
	seq := stream.Multiply(doc, k)
	dir := cfg.outDir(path, "Multiply")
	stem := util.Stem(path)

	if splits == 1 {
		dest := filepath.Join(dir, fmt.Sprintf("%v_x%v.json", stem, k))
		return res, writeOut(cfg, &res, doc, dest, total, seq)
	}

	perPart := util.CeilDiv(total, splits)
	remaining := total
	for i := 0; i < splits && remaining > 0; i++ {
		count := util.Min(perPart, remaining)
		dest := filepath.Join(dir, fmt.Sprintf("%v_x%v_part%v.json", stem, k, i+1))
		if err := writeOut(cfg, &res, doc, dest, count, seq); err != nil {
			return res, err
		}
		remaining -= count
	}
	return res, nil
}

// MergeFiles concatenates charts end to end, rebasing each chart's
// timestamps past the accumulated duration of everything before it.
// Inputs that fail to load or validate are skipped with a note in the
// result; the merge fails only when none survive.
func MergeFiles(cfg Config, paths []string) (Result, error) {
	var res Result

	var estimate int64
	for _, p := range paths {
		estimate += stream.FileSize(p)
	}
	if !cfg.guard().Allow(estimate) {
		res.Canceled = true
		return res, nil
	}

	var docs []*model.Document
	first := ""
	for _, p := range paths {
		doc, err := chart.Load(p)
		if err != nil {
			res.Skipped = append(res.Skipped, p)
			continue
		}
		if first == "" {
			first = p
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return res, ErrNoValidCharts
	}

	total := 0
	for _, d := range docs {
		total += len(d.Sections)
		res.Notes += d.NoteCount()
	}
	dest := filepath.Join(cfg.outDir(first, "Merged"), "merged.json")
	return res, writeOut(cfg, &res, docs[0], dest, total, stream.Merge(docs))
}

// Split partitions a chart into n contiguous parts of size
// ceil(total/n), unmodified and unshifted. Splitting into fewer than
// two parts is meaningless and rejected. Empty tail groups produce no
// output file.
func Split(cfg Config, path string, parts int) (Result, error) {
	var res Result
	if parts < 2 {
		return res, &ValueError{Param: "parts", Value: parts}
	}

	doc, err := chart.Load(path)
	if err != nil {
		return res, err
	}
	total := len(doc.Sections)
	res.Notes = doc.NoteCount()
	size := util.CeilDiv(total, parts)
	dir := cfg.outDir(path, "Split")
	stem := util.Stem(path)

	for i := 0; i < parts; i++ {
		lo := util.Min(i*size, total)
		hi := util.Min(lo+size, total)
		if lo == hi {
			continue
		}
		group := doc.Sections[lo:hi]
		dest := filepath.Join(dir, fmt.Sprintf("%v_part%v.json", stem, i+1))
		if err := writeOut(cfg, &res, doc, dest, hi-lo, stream.FromSections(group)); err != nil {
			return res, err
		}
	}
	return res, nil
}

// AppendNotes fills every empty section with a copy of the chart's
// combined note pool and rewrites the chart.
func AppendNotes(cfg Config, path string) (Result, error) {
	var res Result
	doc, err := chart.Load(path)
	if err != nil {
		return res, err
	}
	for i := range doc.Sections {
		s := &doc.Sections[i]
		if s.Opaque == nil && len(s.Notes) == 0 {
			res.Filled++
		}
	}
	res.Notes = doc.NoteCount() + res.Filled*len(chart.Pool(doc.Sections))

	dest := filepath.Join(cfg.outDir(path, "Append"), util.Stem(path)+"_appended.json")
	return res, writeOut(cfg, &res, doc, dest, len(doc.Sections), stream.Append(doc))
}

// Compress rewrites a chart without touching its content; only the
// encoding changes (compact unless the config says otherwise).
func Compress(cfg Config, path string) (Result, error) {
	var res Result
	doc, err := chart.Load(path)
	if err != nil {
		return res, err
	}
	res.Notes = doc.NoteCount()
	dest := filepath.Join(cfg.outDir(path, "Compressed"), util.Stem(path)+"_compressed.json")
	return res, writeOut(cfg, &res, doc, dest, len(doc.Sections), stream.FromSections(doc.Sections))
}

// writeOut runs one streaming write and folds the outcome into res.
func writeOut(cfg Config, res *Result, doc *model.Document, dest string, count int, seq *stream.Sequence) error {
	w := &stream.Writer{
		Dest:       dest,
		Meta:       doc.Meta,
		NotesIndex: doc.NotesIndex,
		Count:      count,
		Indent:     cfg.Indent,
	}
	written, err := w.Write(seq)
	if err != nil {
		return err
	}
	res.Outputs = append(res.Outputs, dest)
	res.Sections += written
	return nil
}
