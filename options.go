package jpeg

// Options configures Open. The zero value is a valid, conservative
// configuration: no EOI scan, no logging.
type Options struct {
	// EstimateImageSize, when true, makes Open perform a literal (non
	// byte-stuffing-aware) scan for the EOI marker after SOS, so that
	// Parser.ImageDataSize becomes available.
	EstimateImageSize bool

	// Logger receives debug/warning diagnostics during parsing. A nil
	// Logger is replaced with a no-op implementation.
	Logger Logger
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return defaultLogger
	}
	return o.Logger
}
