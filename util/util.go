package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

// CeilDiv divides rounding up. Used for split-part sizing.
func CeilDiv[A constraints.Integer](num A, div A) A {
	if div <= 0 {
		return num
	}
	return (num + div - 1) / div
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Sum[A constraints.Integer](nums []A) int64 {
	var total int64
	for _, v := range nums {
		total += int64(v)
	}
	return total
}

// Stem returns the filename without directory or extension, e.g.
// "songs/bopeebo-hard.json" -> "bopeebo-hard".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GatherChartPaths walks a directory collecting .json files, stopping
// at maxNum when maxNum > 0.
func GatherChartPaths(root string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(s, ".json") {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	filepath.WalkDir(root, walk)
	return res
}
