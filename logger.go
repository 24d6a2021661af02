package jpeg

// Logger is the diagnostic hook core parsing code calls into. It is always
// injected, never looked up from a package-level singleton, so that two
// Parsers in the same process can log independently (or not at all).
//
// A nil Logger passed to Options is replaced by a no-op implementation;
// core code never needs to nil-check before logging.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

var defaultLogger Logger = nopLogger{}
