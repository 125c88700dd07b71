package render

import (
	"strconv"
	"strings"

	"github.com/Flojomojo/capycity/pkg/grid"
)

// boardLines draws the grid with one-based column numbers on top and row
// numbers on the left:
//
//	     1   2   3
//	   +---+---+---+
//	 1 | S | 0 | 0 |
//	   +---+---+---+
//	 2 | 0 | W | 0 |
//	   +---+---+---+
func boardLines(g *grid.Grid, colored bool) []cell {
	labels := make([][]cell, g.Height())
	colWidth := len(strconv.Itoa(g.Width()))
	for pos, bt := range g.Cells() {
		if labels[pos.X] == nil {
			labels[pos.X] = make([]cell, g.Width())
		}
		c := label(bt, colored)
		labels[pos.X][pos.Y] = c
		colWidth = max(colWidth, c.width)
	}
	rowWidth := len(strconv.Itoa(g.Height()))
	indent := strings.Repeat(" ", rowWidth+2)

	sep := plain(indent + "+" + strings.Repeat(strings.Repeat("-", colWidth+2)+"+", g.Width()))

	var header strings.Builder
	header.WriteString(indent)
	for y := 1; y <= g.Width(); y++ {
		header.WriteString("  ")
		header.WriteString(plain(strconv.Itoa(y)).padRight(colWidth))
		header.WriteString(" ")
	}

	lines := []cell{plain(strings.TrimRight(header.String(), " ")), sep}
	for x, row := range labels {
		var b strings.Builder
		visible := 0
		prefix := " " + plain(strconv.Itoa(x+1)).padLeft(rowWidth) + " |"
		b.WriteString(prefix)
		visible += len(prefix)
		for _, c := range row {
			b.WriteString(" ")
			b.WriteString(c.padRight(colWidth))
			b.WriteString(" |")
			visible += colWidth + 3
		}
		lines = append(lines, cell{text: b.String(), width: visible}, sep)
	}
	return lines
}
