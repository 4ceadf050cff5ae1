package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

var nop = &Logger{SugaredLogger: zap.NewNop().Sugar()}

// New builds a logger writing to stderr. mode is "prod"/"production" for JSON
// output at info level; anything else gives console output at debug level.
func New(mode string) (*Logger, error) {
	return NewTo(mode, os.Stderr)
}

// NewTo is New with an explicit destination.
func NewTo(mode string, w io.Writer) (*Logger, error) {
	var (
		enc   zapcore.Encoder
		level zapcore.Level
	)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zap.InfoLevel
	case "", "dev", "development":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zap.DebugLevel
	default:
		return nil, UnknownModeError{Mode: mode}
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, nil
}

// Nop returns a shared logger that discards everything.
func Nop() *Logger { return nop }

// UnknownModeError is returned by New for an unsupported mode.
type UnknownModeError struct{ Mode string }

func (e UnknownModeError) Error() string {
	return "logger: unknown mode \"" + e.Mode + "\" (want dev or prod)"
}

// Zap exposes the structured logger, e.g. for zap.ReplaceGlobals.
func (l *Logger) Zap() *zap.Logger { return l.SugaredLogger.Desugar() }

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}
