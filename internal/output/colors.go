// Package output renders timepoint panes for the terminal.
package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the parts of a rendered pane
type ColorScheme struct {
	Title     *color.Color
	Section   *color.Color
	Label     *color.Color
	Value     *color.Color
	Success   *color.Color
	Failure   *color.Color
	Network   *color.Color
	Muted     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:     color.New(color.FgCyan, color.Bold),
		Section:   color.New(color.FgBlue, color.Bold),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Success:   color.New(color.FgGreen, color.Bold),
		Failure:   color.New(color.FgRed, color.Bold),
		Network:   color.New(color.FgYellow, color.Bold),
		Muted:     color.New(color.FgHiBlack),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.DisableColor()
	}
	return scheme
}

// SchemeFor picks the default scheme when w is a terminal and colors are
// not turned off, and the plain scheme otherwise
func SchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !isTerminal(w) {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{s.Title, s.Section, s.Label, s.Value, s.Success, s.Failure, s.Network, s.Muted, s.Highlight}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
