package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger. It writes structured JSON to stdout,
// optionally to a file, and forwards entries to New Relic when an agent is
// configured.
type ZapLogger struct {
	*zap.Logger
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level       string
	FilePath    string
	ServiceName string
}

// newRelicCore forwards log entries to New Relic
type newRelicCore struct {
	level       zapcore.Level
	nrApp       *newrelic.Application
	serviceName string
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	attrs := encoder.Fields
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["service"] = c.serviceName

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attrs,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// NewZapLogger creates the application logger
func NewZapLogger(config Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	zl := &ZapLogger{
		nrApp:    nrApp,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		zl.file = file
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{
			level:       level,
			nrApp:       nrApp,
			serviceName: config.ServiceName,
		})
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return zl, nil
}

// WithError returns a logger with an error field attached
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
