// Package log wraps zap with named loggers, a process-wide default and
// optional namespace filtering via zapfilter rules.
package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Field  = zap.Field
	Level  = zapcore.Level
	Option func(*config)
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var (
	Any        = zap.Any
	Bool       = zap.Bool
	Duration   = zap.Duration
	ErrorField = zap.Error
	Float64    = zap.Float64
	Int        = zap.Int
	Int32      = zap.Int32
	String     = zap.String
	Time       = zap.Time
	Uint32     = zap.Uint32
	Uint64     = zap.Uint64
)

type Logger struct {
	l     *zap.Logger
	level Level
}

type config struct {
	caller     bool
	callerSkip int
	filters    string
	zapOpts    []zap.Option
}

func WithCaller(enabled bool) Option {
	return func(c *config) {
		c.caller = enabled
	}
}

func AddCallerSkip(skip int) Option {
	return func(c *config) {
		c.callerSkip = skip
	}
}

// WithFilters restricts output to entries matching the given zapfilter
// rules, e.g. "debug:session* info:*".
func WithFilters(rules string) Option {
	return func(c *config) {
		c.filters = rules
	}
}

func WithZapOptions(opts ...zap.Option) Option {
	return func(c *config) {
		c.zapOpts = append(c.zapOpts, opts...)
	}
}

// New creates a logger with JSON output.
func New(out io.Writer, level Level, opts ...Option) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return newLogger(out, level, zapcore.NewJSONEncoder(enc), opts...)
}

// DevLogger creates a logger with human readable console output.
func DevLogger(out io.Writer, level Level, opts ...Option) *Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	return newLogger(out, level, zapcore.NewConsoleEncoder(enc), opts...)
}

func newLogger(out io.Writer, level Level, enc zapcore.Encoder, opts ...Option) *Logger {
	if out == nil {
		out = os.Stderr
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	var core zapcore.Core = zapcore.NewCore(enc, zapcore.AddSync(out), level)
	if cfg.filters != "" {
		if f, err := zapfilter.ParseRules(cfg.filters); err == nil {
			core = zapfilter.NewFilteringCore(core, f)
		} else {
			fmt.Fprintf(os.Stderr, "ignoring invalid log filter rules %q: %v\n",
				cfg.filters, err)
		}
	}
	zapOpts := cfg.zapOpts
	if cfg.caller {
		zapOpts = append(zapOpts, zap.WithCaller(true))
	}
	if cfg.callerSkip != 0 {
		zapOpts = append(zapOpts, zap.AddCallerSkip(cfg.callerSkip))
	}
	return &Logger{l: zap.New(core, zapOpts...), level: level}
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Sync() error { return l.l.Sync() }

var (
	std = DevLogger(os.Stderr, InfoLevel)

	Debug = std.Debug
	Info  = std.Info
	Warn  = std.Warn
	Error = std.Error
	Fatal = std.Fatal
)

func Default() *Logger { return std }

// ResetDefault replaces the default logger used by the package level
// functions and by components that do not get an explicit logger.
func ResetDefault(l *Logger) {
	std = l
	Debug = std.Debug
	Info = std.Info
	Warn = std.Warn
	Error = std.Error
	Fatal = std.Fatal
}

type ctxKey struct{}

func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetFromContext returns the logger stored in ctx, falling back to the
// default logger.
func GetFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return std
}
