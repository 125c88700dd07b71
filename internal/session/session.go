// Package session owns one building space for the lifetime of a user
// session and exposes the operations front ends invoke on it. Coordinates
// are zero-based (row, column) as in package grid.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/grid"
)

// Session is a single user's building space. It is not safe for concurrent
// use; callers that serve several goroutines must serialize access.
type Session struct {
	id     uuid.UUID
	grid   *grid.Grid
	logger *zap.Logger
}

// New creates a session with an empty height x width building space.
func New(height, width int, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	logger = logger.With(zap.String("session", id.String()))
	logger.Info("building space created", zap.Int("height", height), zap.Int("width", width))
	return &Session{id: id, grid: g, logger: logger}, nil
}

func (s *Session) ID() uuid.UUID    { return s.id }
func (s *Session) Grid() *grid.Grid { return s.grid }

// Place resolves selector against the catalog and puts the building on
// (row, col). Removal goes through Remove; an "empty" selector is accepted
// here as well.
func (s *Session) Place(row, col int, selector string) (catalog.BuildingType, error) {
	bt, err := catalog.Lookup(selector)
	if err != nil {
		s.logger.Warn("unknown building", zap.String("selector", selector), zap.Error(err))
		return bt, err
	}
	return bt, s.PlaceBuilding(row, col, bt)
}

// PlaceBuilding puts bt on (row, col).
func (s *Session) PlaceBuilding(row, col int, bt catalog.BuildingType) error {
	fields := []zap.Field{
		zap.Int("row", row),
		zap.Int("column", col),
		zap.Stringer("building", bt.Kind),
	}
	if err := s.grid.Place(row, col, bt); err != nil {
		s.logger.Warn("placement rejected", append(fields, zap.Error(err))...)
		return err
	}
	if bt.IsEmpty() {
		s.logger.Info("building removed", fields...)
	} else {
		s.logger.Info("building placed", fields...)
	}
	return nil
}

// Remove clears (row, col).
func (s *Session) Remove(row, col int) error {
	return s.PlaceBuilding(row, col, catalog.EmptyBuilding())
}

// Get returns the building on (row, col), or the Error sentinel and an
// error for out-of-range coordinates.
func (s *Session) Get(row, col int) (catalog.BuildingType, error) {
	return s.grid.Get(row, col)
}

// Summary aggregates the current building space.
func (s *Session) Summary() *cost.Report {
	r := cost.Summarize(s.grid)
	s.logger.Debug("summary computed",
		zap.Int("placed", r.Placed),
		zap.Float64("grand_total", r.GrandTotal))
	return r
}

// String describes the session for log lines and prompts.
func (s *Session) String() string {
	return fmt.Sprintf("session %s (%dx%d)", s.id, s.grid.Height(), s.grid.Width())
}
