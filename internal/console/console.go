// Package console runs the interactive menu on top of a session. Input is
// line based; coordinates are entered one-based as ROWxCOLUMN, the same
// order as the HEIGHTxWIDTH dimensions.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Flojomojo/capycity/internal/session"
	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/grid"
	"github.com/Flojomojo/capycity/pkg/render"
)

// Menu options.
const (
	MenuExit = iota
	MenuPlace
	MenuDelete
	MenuPrint
	MenuSummary
	MenuBuildings
)

var menuItems = []string{
	MenuExit:      "Exit",
	MenuPlace:     "Place",
	MenuDelete:    "Delete",
	MenuPrint:     "Print",
	MenuSummary:   "Summary",
	MenuBuildings: "Buildings",
}

// Console is one interactive run.
type Console struct {
	in     *bufio.Scanner
	lines  <-chan inputLine
	out    io.Writer
	render render.Options
	logger *zap.Logger
}

type inputLine struct {
	text string
	err  error
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts render.Options, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		render: opts,
		logger: logger,
	}
}

// Run asks for the building space size unless height and width are both
// positive, then shows the menu until the user exits, the input ends or ctx
// is cancelled. End of input is a normal exit. Cancelling ctx interrupts a
// pending prompt; Run returns ctx.Err() without waiting for the line.
func (c *Console) Run(ctx context.Context, height, width int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.lines = c.readLines(ctx)

	if height < 1 || width < 1 {
		var err error
		height, width, err = c.askDimensions(ctx)
		if err != nil {
			return ignoreEOF(err)
		}
	}

	s, err := session.New(height, width, c.logger)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := c.step(ctx, s)
		if err != nil {
			return ignoreEOF(err)
		}
		if done {
			c.printf("[*] Bye!\n")
			return nil
		}
	}
}

// readLines scans the input on its own goroutine so that a prompt can give
// up when ctx is done. A read already blocked on the input stays blocked
// until the input yields or is closed.
func (c *Console) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for c.in.Scan() {
			select {
			case lines <- inputLine{text: c.in.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := c.in.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

func (c *Console) step(ctx context.Context, s *session.Session) (bool, error) {
	c.printf("[*] Menu:\n")
	for i, item := range menuItems {
		c.printf(" %d: %s\n", i, item)
	}
	line, err := c.ask(ctx, "[?] Enter your choice:")
	if err != nil {
		return false, err
	}
	choice, err := ParseChoice(line)
	if err != nil || choice >= len(menuItems) {
		c.printf("[!] Invalid choice\n")
		return false, nil
	}

	switch choice {
	case MenuExit:
		return true, nil
	case MenuPlace:
		return false, c.place(ctx, s)
	case MenuDelete:
		return false, c.remove(ctx, s)
	case MenuPrint:
		c.printf("[*] Current building space\n")
		return false, render.View(c.out, s.Grid(), s.Summary(), c.render)
	case MenuSummary:
		return false, render.Summary(c.out, s.Summary())
	case MenuBuildings:
		c.listBuildings()
	}
	return false, nil
}

func (c *Console) askDimensions(ctx context.Context) (int, int, error) {
	for {
		line, err := c.ask(ctx, "[?] How big should the building space be? (Format HxW)")
		if err != nil {
			return 0, 0, err
		}
		h, w, err := ParsePair(line)
		if err == nil {
			err = grid.CheckDimensions(h, w)
		}
		if err == nil {
			return h, w, nil
		}
		c.printf("[!] %v\n", err)
	}
}

func (c *Console) askCell(ctx context.Context, verb string) (int, int, bool, error) {
	line, err := c.ask(ctx, fmt.Sprintf("[?] Where do you want to %s? (Format ROWxCOLUMN)", verb))
	if err != nil {
		return 0, 0, false, err
	}
	row, col, err := ParsePair(line)
	if err != nil {
		c.printf("[!] %v\n", err)
		return 0, 0, false, nil
	}
	return row - 1, col - 1, true, nil
}

func (c *Console) place(ctx context.Context, s *session.Session) error {
	x, y, ok, err := c.askCell(ctx, "place the building")
	if err != nil || !ok {
		return err
	}

	c.printf("[?] Choose the building you want to place\n")
	c.listBuildings()
	selector, err := c.ask(ctx, "")
	if err != nil {
		return err
	}

	bt, err := s.Place(x, y, selector)
	if err != nil {
		c.printf("[!] %s\n", describe(err, x, y, bt))
		return nil
	}
	if bt.IsEmpty() {
		c.printf("[*] Removed building from %dx%d\n", x+1, y+1)
		return nil
	}
	c.printf("[*] Placed building %s at %dx%d\n", bt.Name, x+1, y+1)
	return nil
}

func (c *Console) remove(ctx context.Context, s *session.Session) error {
	x, y, ok, err := c.askCell(ctx, "remove a building")
	if err != nil || !ok {
		return err
	}
	if err := s.Remove(x, y); err != nil {
		c.printf("[!] %s\n", describe(err, x, y, catalog.EmptyBuilding()))
		return nil
	}
	c.printf("[*] Removed building from %dx%d\n", x+1, y+1)
	return nil
}

func (c *Console) listBuildings() {
	c.printf("[*] Possible Buildings:\n")
	for i, bt := range catalog.BuildingTypes() {
		c.printf(" %d: %s (%s) %.2f$\n", i, bt.Name, bt.Label, cost.Round(bt.TotalPrice()))
	}
}

// describe turns engine errors into one-line messages with one-based
// coordinates.
func describe(err error, x, y int, bt catalog.BuildingType) string {
	at := fmt.Sprintf("%dx%d", x+1, y+1)
	switch {
	case errors.Is(err, catalog.ErrUnknownBuildingType):
		return "Not a valid building type"
	case errors.Is(err, grid.ErrOutOfBounds):
		return fmt.Sprintf("%s is outside the building space", at)
	case errors.Is(err, grid.ErrAlreadyPresent) && bt.IsEmpty():
		return fmt.Sprintf("There is no building at %s", at)
	case errors.Is(err, grid.ErrAlreadyPresent):
		return fmt.Sprintf("The building %s is already at %s", bt.Name, at)
	case errors.Is(err, grid.ErrOccupiedByOther):
		return fmt.Sprintf("There is already a building at %s", at)
	}
	return err.Error()
}

func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s\n", prompt)
	}
	c.printf("> ")
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
