package screech

// Logger is the minimal diagnostic sink the core accepts. It exists so
// that neither [Patchbay] nor [Processor] need import a concrete logging
// package. See the enginelog package for an implementation backed by
// charmbracelet/log.
//
// Both methods are expected to be cheap to call when logging is
// disabled.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}
