package constants

import (
	"os"
	"strconv"
)

// GetOutputRoot returns the directory that operation folders (Multiply,
// Merged, Split, Append, Compressed) are created under. Empty means
// next to the input file, matching the original tool.
func GetOutputRoot() string {
	return os.Getenv("OUTPUT_PATH")
}

// DefaultMaxSizeMB is the advisory output ceiling: 1.99 GB per file.
const DefaultMaxSizeMB = 1990

// GetMaxSizeMB returns the size-guard ceiling in MB, honoring the
// MAX_SIZE_MB environment variable.
func GetMaxSizeMB() int64 {
	if v := os.Getenv("MAX_SIZE_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return DefaultMaxSizeMB
}

// MaxNotesPerSection caps section size when importing MIDI files.
const MaxNotesPerSection = 16
