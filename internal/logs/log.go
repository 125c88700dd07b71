// Package logs owns the process-wide zap logger: coloured console output on
// stderr plus an optional rotating JSON file.
package logs

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Flojomojo/capycity/internal/config"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the logger described by cfg and installs it as the package
// logger. Console output goes to console (os.Stderr when nil).
func Init(appName string, cfg config.LoggingConfig, console io.Writer) (*zap.Logger, error) {
	SetLevel(cfg.Level)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if console == nil {
		console = os.Stderr
	}
	var consoleLevel zapcore.LevelEnabler = level
	if cfg.ConsoleLevel != "" {
		floor := parseLevel(cfg.ConsoleLevel)
		consoleLevel = zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= floor && level.Enabled(l)
		})
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), consoleLevel)

	// The file gets its own JSON core so no ANSI colour codes end up on disk.
	if cfg.File != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(fileWriter), level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	l := zap.New(core, opts...).Named(appName)

	mu.Lock()
	_ = logger.Sync()
	logger = l
	mu.Unlock()
	return l, nil
}

// L returns the current package logger. It is a no-op logger until Init.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLevel changes the level of every logger built by Init. Unknown levels
// fall back to info.
func SetLevel(name string) {
	level.SetLevel(parseLevel(name))
}

func parseLevel(name string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Level reports the current level.
func Level() zapcore.Level {
	return level.Level()
}

// Sync flushes buffered log entries.
func Sync() error {
	return L().Sync()
}
