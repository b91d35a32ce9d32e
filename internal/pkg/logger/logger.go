// Package logger adapts zap to the ports.Logger interface.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// Options selects the log sinks.
type Options struct {
	Settings domain.LoggingSettings
	// Verbose lowers the level to debug and enables Console.
	Verbose bool
	// Console receives human-readable output when Verbose is set. Nil disables it.
	Console io.Writer
}

// ZapLogger implements ports.Logger on top of zap.
type ZapLogger struct {
	base    *zap.Logger
	console *mutableWriter
}

// New builds a logger writing JSON lines to a rotating file and, when verbose,
// console lines to opts.Console.
func New(opts Options) (*ZapLogger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(opts.Settings.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}
	if opts.Verbose {
		level.SetLevel(zap.DebugLevel)
	}

	var cores []zapcore.Core
	if path := opts.Settings.File; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.Settings.MaxSizeMB,
			MaxBackups: opts.Settings.MaxBackups,
			MaxAge:     opts.Settings.MaxAgeDays,
			Compress:   opts.Settings.Compress,
		})
		cores = append(cores, zapcore.NewCore(fileEncoder(), fileWriter, level))
	}
	var console *mutableWriter
	if opts.Verbose && opts.Console != nil {
		console = &mutableWriter{w: opts.Console}
		cores = append(cores, zapcore.NewCore(consoleEncoder(), zapcore.Lock(zapcore.AddSync(console)), level))
	}
	if len(cores) == 0 {
		return NewNop(), nil
	}

	l := newWithCore(zapcore.NewTee(cores...))
	l.console = console
	return l, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{base: zap.NewNop()}
}

func newWithCore(core zapcore.Core) *ZapLogger {
	return &ZapLogger{base: zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("autopilot")}
}

func fileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.base.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// MuteConsole stops console output for the rest of the process. Full-screen
// UIs call it before taking over the terminal.
func (l *ZapLogger) MuteConsole() {
	if l.console != nil {
		l.console.muted.Store(true)
	}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

// toFields converts a field map to zap fields in key order so output is stable.
func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, fields[key]))
	}
	return out
}

type mutableWriter struct {
	w     io.Writer
	muted atomic.Bool
}

func (m *mutableWriter) Write(p []byte) (int, error) {
	if m.muted.Load() {
		return len(p), nil
	}
	return m.w.Write(p)
}

var _ ports.Logger = (*ZapLogger)(nil)
