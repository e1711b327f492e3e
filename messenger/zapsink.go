package messenger

import "go.uber.org/zap"

// ZapSink forwards Messenger emissions to a *zap.Logger, mapping Trace to
// Debug (zap has no dedicated trace level), Info/Warning/Error to their
// zap equivalents. It exists at the boundary between the core packages
// (which only ever see the Sink interface) and the structured logging
// stack the host application uses.
type ZapSink struct {
	logger *zap.Logger
	fields []zap.Field
}

// NewZapSink wraps logger. logger must not be nil.
func NewZapSink(logger *zap.Logger, fields ...zap.Field) *ZapSink {
	return &ZapSink{logger: logger, fields: fields}
}

func (z *ZapSink) EmitMessage(level Level, text string) {
	switch level {
	case Trace:
		z.logger.Debug(text, z.fields...)
	case Info:
		z.logger.Info(text, z.fields...)
	case Warning:
		z.logger.Warn(text, z.fields...)
	case Error:
		z.logger.Error(text, z.fields...)
	default:
		z.logger.Info(text, z.fields...)
	}
}
