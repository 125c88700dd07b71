package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Flojomojo/capycity/internal/config"
	"github.com/Flojomojo/capycity/internal/console"
	"github.com/Flojomojo/capycity/internal/logs"
	"github.com/Flojomojo/capycity/internal/server"
	"github.com/Flojomojo/capycity/internal/session"
	"github.com/Flojomojo/capycity/pkg/cost"
	"github.com/Flojomojo/capycity/pkg/plan"
	"github.com/Flojomojo/capycity/pkg/render"
	"github.com/Flojomojo/capycity/pkg/validation"
)

// setup loads configuration and initializes logging.
func setup(configPath string) (*config.Config, *zap.Logger, error) {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logs.Init("capycity", cfg.Logging, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, logger, nil
}

func renderOptions(cfg *config.Config) render.Options {
	width := cfg.Render.Width
	if width <= 0 {
		width = render.TerminalWidth(os.Stdout)
	}
	return render.Options{Color: cfg.Render.Color, Width: width}
}

// gridSize resolves the building space size from a HxW flag, falling back
// to the configured default. Zeros mean "ask".
func gridSize(flag string, cfg *config.Config) (int, int, error) {
	if flag != "" {
		return console.ParsePair(flag)
	}
	return cfg.Grid.Height, cfg.Grid.Width, nil
}

// consoleLevelForPlay keeps info lines off the terminal while the menu is
// shown unless the config says otherwise. The log file is unaffected.
const consoleLevelForPlay = "warn"

func runPlay(ctx context.Context, configPath, size string) error {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Logging.ConsoleLevel == "" {
		cfg.Logging.ConsoleLevel = consoleLevelForPlay
	}
	logger, err := logs.Init("capycity", cfg.Logging, nil)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logs.Sync()

	h, w, err := gridSize(size, cfg)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, renderOptions(cfg), logger)
	return c.Run(ctx, h, w)
}

// loadAndValidate loads the plan and runs schema validation.
func loadAndValidate(planPath string) (*plan.Plan, *validation.Report, error) {
	p, err := plan.LoadPath(planPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	return p, validation.ValidateSchema(p), nil
}

func runValidate(configPath, planPath string) error {
	if _, _, err := setup(configPath); err != nil {
		return err
	}
	defer logs.Sync()

	p, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}
	if schemaReport.Valid {
		schemaReport.Merge(validation.ValidatePlacements(p))
	}

	printValidationReport(os.Stdout, schemaReport)
	return schemaReport.Err()
}

func runApply(configPath, planPath string, asJSON bool) error {
	cfg, logger, err := setup(configPath)
	if err != nil {
		return err
	}
	defer logs.Sync()

	p, schemaReport, err := loadAndValidate(planPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(os.Stdout, schemaReport)
		return fmt.Errorf("fix the plan before applying: %w", schemaReport.Err())
	}

	g, failures, err := plan.Apply(p)
	if err != nil {
		return err
	}
	for _, f := range failures {
		logger.Warn("placement skipped", zap.Int("index", f.Index), zap.Error(f.Err))
	}
	report := cost.Summarize(g)
	logger.Info("plan applied",
		zap.String("plan", p.Name),
		zap.Int("placed", report.Placed),
		zap.Int("skipped", len(failures)))

	if asJSON {
		skipped := make([]string, len(failures))
		for i, f := range failures {
			skipped[i] = f.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"plan":    p,
			"summary": report,
			"values":  report.Values(),
			"skipped": skipped,
		})
	}

	if err := render.View(os.Stdout, g, report, renderOptions(cfg)); err != nil {
		return err
	}
	fmt.Println()
	printCostReport(os.Stdout, report)
	return nil
}

func runServe(ctx context.Context, configPath, size string, port int, portSet bool) error {
	cfg, v, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logs.Init("capycity", cfg.Logging, nil)
	if err != nil {
		return err
	}
	defer logs.Sync()

	if !portSet {
		port = cfg.Server.Port
	}
	h, w, err := gridSize(size, cfg)
	if err != nil {
		return err
	}
	if h < 1 || w < 1 {
		return fmt.Errorf("serve needs a building space size: pass --size HxW or set grid.height and grid.width")
	}

	s, err := session.New(h, w, logger)
	if err != nil {
		return err
	}

	if v.ConfigFileUsed() != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			next, err := config.Reload(v)
			if err != nil {
				logger.Warn("config reload failed", zap.String("file", e.Name), zap.Error(err))
				return
			}
			logs.SetLevel(next.Logging.Level)
			logger.Info("config reloaded", zap.String("file", e.Name), zap.String("level", next.Logging.Level))
		})
		v.WatchConfig()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(s, port, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
