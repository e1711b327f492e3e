// Package messenger provides the levelled diagnostic sink consumed by
// readers, writers, and the import/export orchestrators: one virtual
// dispatch point (EmitMessage) plus convenience wrappers per level.
package messenger

// Level is the severity of a single diagnostic message.
type Level int

const (
	Trace Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Message is a single emitted diagnostic.
type Message struct {
	Level Level
	Text  string
}

// Sink accepts levelled diagnostic messages. EmitMessage is the single
// virtual dispatch point; EmitTrace/EmitInfo/EmitWarning/EmitError are
// convenience wrappers implemented once, here, for every Sink.
type Sink interface {
	EmitMessage(level Level, text string)
}

// Emit forwards text to sink at the named level. It is nil-safe: a nil
// sink silently discards the message, the same behavior callers would get
// by passing the null sink explicitly.
func Emit(sink Sink, level Level, text string) {
	if sink == nil {
		return
	}
	sink.EmitMessage(level, text)
}

// EmitTrace is a convenience wrapper for Emit(sink, Trace, text).
func EmitTrace(sink Sink, text string) { Emit(sink, Trace, text) }

// EmitInfo is a convenience wrapper for Emit(sink, Info, text).
func EmitInfo(sink Sink, text string) { Emit(sink, Info, text) }

// EmitWarning is a convenience wrapper for Emit(sink, Warning, text).
func EmitWarning(sink Sink, text string) { Emit(sink, Warning, text) }

// EmitError is a convenience wrapper for Emit(sink, Error, text).
func EmitError(sink Sink, text string) { Emit(sink, Error, text) }

// nullSink discards every message. It backs the process-wide Null
// instance below.
type nullSink struct{}

func (nullSink) EmitMessage(Level, string) {}

// Null is the process-wide no-op Sink. Callers that receive no messenger
// should substitute Null rather than special-casing a nil sink
// everywhere.
var Null Sink = nullSink{}

// OrNull returns sink if non-nil, otherwise Null. Orchestrators use this
// once at the top of an operation so the rest of the code never has to
// nil-check the messenger again.
func OrNull(sink Sink) Sink {
	if sink == nil {
		return Null
	}
	return sink
}

// Func adapts a plain callback into a Sink, for callers that would rather
// not define a type.
type Func func(level Level, text string)

func (f Func) EmitMessage(level Level, text string) { f(level, text) }
