// Package server exposes one building space session over a local HTTP API.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Flojomojo/capycity/internal/session"
	"github.com/Flojomojo/capycity/pkg/catalog"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/grid"
	"github.com/Flojomojo/capycity/pkg/render"
)

// Server is the local API server for one session. The session itself is
// single-user; mu serializes the handlers net/http runs concurrently.
type Server struct {
	mu      sync.Mutex
	session *session.Session
	logger  *zap.Logger
	engine  *gin.Engine
	srv     *http.Server
}

// New creates a server for s listening on port.
func New(s *session.Session, port int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog(logger))

	srv := &Server{
		session: s,
		logger:  logger,
		engine:  engine,
	}
	srv.routes()
	srv.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.GET("/buildings", s.handleBuildings)
	api.GET("/grid", s.handleGrid)
	api.GET("/board", s.handleBoard)
	api.GET("/summary", s.handleSummary)
	api.POST("/placements", s.handlePlace)
	api.DELETE("/placements/:row/:column", s.handleRemove)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start launches the HTTP server and blocks until it stops. A clean
// Shutdown makes Start return nil.
func (s *Server) Start() error {
	s.logger.Info("capycity server starting",
		zap.String("addr", "http://localhost"+s.srv.Addr),
		zap.Stringer("session", s.session.ID()))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type buildingResponse struct {
	catalog.BuildingType
	Index      int     `json:"index"`
	TotalPrice float64 `json:"total_price"`
}

func (s *Server) handleBuildings(c *gin.Context) {
	bts := catalog.BuildingTypes()
	out := make([]buildingResponse, len(bts))
	for i, bt := range bts {
		out[i] = buildingResponse{BuildingType: bt, Index: i, TotalPrice: bt.TotalPrice()}
	}
	c.JSON(http.StatusOK, gin.H{
		"buildings": out,
		"materials": catalog.Materials(),
	})
}

type gridResponse struct {
	Height int        `json:"height"`
	Width  int        `json:"width"`
	Rows   [][]string `json:"rows"`
}

func (s *Server) handleGrid(c *gin.Context) {
	s.mu.Lock()
	g := s.session.Grid()
	resp := gridResponse{Height: g.Height(), Width: g.Width(), Rows: make([][]string, g.Height())}
	for pos, bt := range g.Cells() {
		if resp.Rows[pos.X] == nil {
			resp.Rows[pos.X] = make([]string, g.Width())
		}
		resp.Rows[pos.X][pos.Y] = bt.Label
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// handleBoard returns the board as the console draws it, without colour.
func (s *Server) handleBoard(c *gin.Context) {
	var buf bytes.Buffer
	s.mu.Lock()
	err := render.Board(&buf, s.session.Grid(), render.Options{})
	s.mu.Unlock()

	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

type summaryResponse struct {
	*cost.Report
	Values map[string]float64 `json:"values"`
}

func (s *Server) handleSummary(c *gin.Context) {
	s.mu.Lock()
	r := s.session.Summary()
	s.mu.Unlock()

	c.JSON(http.StatusOK, summaryResponse{Report: r, Values: r.Values()})
}

// placeRequest uses one-based coordinates, like the console.
type placeRequest struct {
	Row      int    `json:"row" binding:"required"`
	Column   int    `json:"column" binding:"required"`
	Building string `json:"building" binding:"required"`
}

func (s *Server) handlePlace(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	bt, err := s.session.Place(req.Row-1, req.Column-1, req.Building)
	s.mu.Unlock()

	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"row": req.Row, "column": req.Column, "building": bt})
}

func (s *Server) handleRemove(c *gin.Context) {
	row, errRow := strconv.Atoi(c.Param("row"))
	col, errCol := strconv.Atoi(c.Param("column"))
	if errRow != nil || errCol != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row and column must be integers"})
		return
	}

	s.mu.Lock()
	err := s.session.Remove(row-1, col-1)
	s.mu.Unlock()

	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrInvalidBuilding),
		errors.Is(err, catalog.ErrUnknownBuildingType):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrAlreadyPresent),
		errors.Is(err, grid.ErrOccupiedByOther):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
