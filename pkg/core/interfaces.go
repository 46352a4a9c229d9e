package core

// Logger interface for raytracer progress and diagnostics. Output goes
// to a diagnostic channel, never to the image stream.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DiscardLogger is a Logger that drops everything
type DiscardLogger struct{}

// Printf implements Logger
func (DiscardLogger) Printf(format string, args ...interface{}) {}
