package stream

import "os"

// MB is used for size estimates reported to the user.
const MB = 1024 * 1024

// SizeGuard is an advisory pre-flight check for operations whose
// output can dwarf the input (multiply, merge). It never measures the
// real output, only an upper-bound estimate from input file sizes.
type SizeGuard struct {
	// MaxBytes is the advisory ceiling. Zero or negative disables the
	// guard entirely.
	MaxBytes int64

	// Confirm is consulted when the estimate exceeds the ceiling.
	// Returning false cancels the operation cleanly; it is not an
	// error. A nil Confirm declines automatically.
	Confirm func(estimatedMB float64) bool
}

// Allow reports whether an operation with the given estimated output
// size may proceed.
func (g SizeGuard) Allow(estimated int64) bool {
	if g.MaxBytes <= 0 || estimated <= g.MaxBytes {
		return true
	}
	if g.Confirm == nil {
		return false
	}
	return g.Confirm(float64(estimated) / MB)
}

// FileSize returns the size of a file in bytes, or 0 when it cannot be
// measured. Estimates are best-effort; a missing file will fail
// properly at load time.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
