package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures the adapter at construction time.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	level       zapcore.Level
	development bool
	callerDepth int
	fields      map[string]interface{}
	schema      string
}

// ZapLoggerAdapter implements types.Logger on top of zap, with dynamically
// attachable sinks behind a single atomic level.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := loggerConfig{
		level:       zapcore.InfoLevel,
		callerDepth: 3,
		fields:      map[string]interface{}{},
	}
	for _, option := range options {
		if option != nil {
			option(&cfg)
		}
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(cfg.level)
	baseCore := zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel)

	if cfg.schema != "" {
		cfg.fields[schemaField] = cfg.schema
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: cfg.callerDepth,
		callerOn:    cfg.development,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  fieldsFromMap(cfg.fields),
		sinks:       make(map[string]sinkEntry),
	}
	z.rebuildLoggerLocked()
	return z
}
