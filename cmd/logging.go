package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/messenger"
)

// newMessenger builds a *messenger.ZapSink at the given minimum level,
// the CLI's sole point of contact between the core's Messenger interface
// and the zap logging stack — core packages never import zap directly.
func newMessenger(level string) (sink core.Messenger, flush func(), err error) {
	zapLevel, err := parseZapLevel(level)
	if err != nil {
		return nil, nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	return messenger.NewZapSink(logger), func() { _ = logger.Sync() }, nil
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "trace", "debug":
		return zapcore.DebugLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, zapUnknownLevelError{level}
	}
}

type zapUnknownLevelError struct{ level string }

func (e zapUnknownLevelError) Error() string {
	return "unknown messenger level: " + e.level
}
