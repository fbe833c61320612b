package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every ledger log line as the "service" field.
const ServiceName = "gw-lending-ledger"

// Log is the global SugaredLogger used by the ledger services and handlers.
// It discards everything until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a JSON logger at the given level.
// Log is left untouched when the level cannot be parsed.
func Initialize(level string) error {
	cfg, err := newConfig(level)
	if err != nil {
		return err
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

func newConfig(level string) (zap.Config, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{"service": ServiceName}
	return cfg, nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
