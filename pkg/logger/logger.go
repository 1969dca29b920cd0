package logger

// Field is a single structured key/value attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging surface every package depends on.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Nop discards everything. Handy in tests that don't assert on logs.
type Nop struct{}

func (Nop) Debug(string, ...Field) {}
func (Nop) Info(string, ...Field)  {}
func (Nop) Warn(string, ...Field)  {}
func (Nop) Error(string, ...Field) {}

// With returns a logger that stamps fields on every event.
func With(l Logger, fields ...Field) Logger {
	if zl, ok := l.(*ZeroLogger); ok {
		return zl.With(fields...)
	}
	return scoped{base: l, fields: fields}
}

type scoped struct {
	base   Logger
	fields []Field
}

func (s scoped) join(fields []Field) []Field {
	return append(append([]Field(nil), s.fields...), fields...)
}

func (s scoped) Debug(msg string, fields ...Field) { s.base.Debug(msg, s.join(fields)...) }
func (s scoped) Info(msg string, fields ...Field)  { s.base.Info(msg, s.join(fields)...) }
func (s scoped) Warn(msg string, fields ...Field)  { s.base.Warn(msg, s.join(fields)...) }
func (s scoped) Error(msg string, fields ...Field) { s.base.Error(msg, s.join(fields)...) }
