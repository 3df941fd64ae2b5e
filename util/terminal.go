package util

import (
	"io"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal
const DefaultWidth = 80

// Terminal abstracts the terminal queries used for layout
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type fder interface {
	Fd() uintptr
}

type sysTerminal struct{}

func (sysTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (sysTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// SystemTerminal queries the real terminal through golang.org/x/term
var SystemTerminal Terminal = sysTerminal{}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer, t Terminal) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return t.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w, or DefaultWidth
// when w is not a terminal or its size cannot be queried
func TerminalWidth(w io.Writer, t Terminal) int {
	if !IsTerminal(w, t) {
		return DefaultWidth
	}

	width, _, err := t.GetSize(int(w.(fder).Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}
