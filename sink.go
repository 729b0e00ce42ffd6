// sink.go — the diagnostic sink collaborator.
//
// The sink is the package's only external side effect: ReduceToString
// emits an error's debug rendering to it before the rendering becomes
// unreachable. It is deliberately injectable so tests substitute a
// capturing implementation; processes install one at startup or rely on
// the slog-backed default.
package xgxinternal

import "log/slog"

// Sink receives structured diagnostic text at debug severity.
// ReduceToString is the only caller within this package.
type Sink interface {
	Debug(msg string)
}

// sink is the process-wide diagnostic sink. The zero SlogSink resolves
// slog.Default at call time, so a process that reconfigures slog after
// init is still honored.
var sink Sink = SlogSink{}

// SetSink installs s as the process-wide diagnostic sink. A nil s restores
// the slog-backed default. Intended to be called once at process start;
// not synchronized against in-flight ReduceToString calls.
func SetSink(s Sink) {
	if s == nil {
		s = SlogSink{}
	}
	sink = s
}

func activeSink() Sink { return sink }

// SlogSink adapts a *slog.Logger to the Sink contract. The zero value logs
// through slog.Default.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink returns a sink backed by l, or by slog.Default when l is nil.
func NewSlogSink(l *slog.Logger) SlogSink { return SlogSink{Logger: l} }

func (s SlogSink) Debug(msg string) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Debug(msg)
}

var _ Sink = SlogSink{}
