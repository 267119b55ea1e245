// Package ui holds the tool's console output: the same four-color
// palette the original used, routed through go-colorable so Windows
// terminals behave, and disabled entirely when stdout is not a tty.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	green   = "\033[92m"
	red     = "\033[91m"
	yellow  = "\033[93m"
	magenta = "\033[95m"
	reset   = "\033[0m"
)

var (
	// Out is where all user-facing output goes.
	Out io.Writer = colorable.NewColorableStdout()

	colorsEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

func paint(color, text string) string {
	if !colorsEnabled {
		return text
	}
	return color + text + reset
}

// Donef reports a completed step in green.
func Donef(format string, args ...any) {
	fmt.Fprintln(Out, paint(green, fmt.Sprintf(format, args...)))
}

// Errorf reports a problem in red.
func Errorf(format string, args ...any) {
	fmt.Fprintln(Out, paint(red, fmt.Sprintf(format, args...)))
}

// Savedf reports a written output path in yellow.
func Savedf(format string, args ...any) {
	fmt.Fprintln(Out, paint(yellow, fmt.Sprintf(format, args...)))
}

// Infof reports progress detail in magenta.
func Infof(format string, args ...any) {
	fmt.Fprintln(Out, paint(magenta, fmt.Sprintf(format, args...)))
}
