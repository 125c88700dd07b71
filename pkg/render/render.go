// Package render draws a building space and its summary for a text
// console. Nothing here is needed to run the engine; the output format is
// for people, not parsers.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/grid"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

const panelGap = 4

// Options controls rendering.
type Options struct {
	// Color enables coloured building labels.
	Color bool
	// Width is the available terminal width. Zero means detect.
	Width int
}

// TerminalWidth returns the width of the terminal behind f, or
// DefaultWidth when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// cell is one piece of rendered text together with its visible width, so
// that colour escape codes do not throw the layout off.
type cell struct {
	text  string
	width int
}

func plain(s string) cell { return cell{text: s, width: utf8.RuneCountInString(s)} }

func (c cell) padRight(n int) string {
	if c.width >= n {
		return c.text
	}
	return c.text + strings.Repeat(" ", n-c.width)
}

func (c cell) padLeft(n int) string {
	if c.width >= n {
		return c.text
	}
	return strings.Repeat(" ", n-c.width) + c.text
}

var labelColors = map[catalog.BuildingKind]color.Color{
	catalog.Empty:                   color.Gray,
	catalog.SolarPanel:              color.Yellow,
	catalog.WindPowerPlant:          color.Cyan,
	catalog.HydroelectricPowerPlant: color.Blue,
}

func label(bt catalog.BuildingType, colored bool) cell {
	c := plain(bt.Label)
	if colored {
		if col, ok := labelColors[bt.Kind]; ok {
			c.text = col.Sprint(bt.Label)
		}
	}
	return c
}

// View writes the board with the buildings, prices and materials panels.
// Panels sit to the right of the board when the width allows, below it
// otherwise.
func View(w io.Writer, g *grid.Grid, r *cost.Report, opts Options) error {
	board := boardLines(g, opts.Color)
	panels := panelLines(r)

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var out []string
	if maxWidth(board)+panelGap+maxWidth(panels) <= width {
		out = sideBySide(board, panels)
	} else {
		for _, l := range board {
			out = append(out, l.text)
		}
		out = append(out, "")
		for _, l := range panels {
			out = append(out, l.text)
		}
	}

	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Board writes only the board.
func Board(w io.Writer, g *grid.Grid, opts Options) error {
	for _, l := range boardLines(g, opts.Color) {
		if _, err := fmt.Fprintln(w, l.text); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes only the info panels.
func Summary(w io.Writer, r *cost.Report) error {
	for _, l := range panelLines(r) {
		if _, err := fmt.Fprintln(w, l.text); err != nil {
			return err
		}
	}
	return nil
}

func sideBySide(left, right []cell) []string {
	leftWidth := maxWidth(left)
	n := max(len(left), len(right))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		l := plain("")
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			b.WriteString(l.padRight(leftWidth + panelGap))
			b.WriteString(right[i].text)
		} else {
			b.WriteString(l.text)
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}

func maxWidth(lines []cell) int {
	m := 0
	for _, l := range lines {
		m = max(m, l.width)
	}
	return m
}
