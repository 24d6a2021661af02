package jpeg

import (
	"io"

	"github.com/pkg/errors"
)

// Error taxonomy for the parser. Structural corruption surfaces as one of
// these sentinels (optionally wrapped with positional context via
// github.com/pkg/errors); absent tags, segments and IFDs are never errors,
// see Parser.TagValue.
var (
	ErrNotAJpeg          = errors.New("jpeg: not a JPEG file (missing SOI)")
	ErrUnexpectedEOI     = errors.New("jpeg: EOI encountered before SOS")
	ErrEOINotFound       = errors.New("jpeg: EOI marker not found in stream")
	ErrInvalidMarker     = errors.New("jpeg: invalid marker (high byte is not 0xFF)")
	ErrInvalidTIFFHeader = errors.New("jpeg: invalid TIFF header")
	ErrMalformedSegment  = errors.New("jpeg: malformed APP segment")
	ErrMalformedIFD      = errors.New("jpeg: IFD size overruns its segment")
	ErrUnknownFieldType  = errors.New("jpeg: field has an unknown TIFF type")
	ErrNotLoaded         = errors.New("jpeg: image data size requires EstimateImageSize")
	ErrUnexpectedEOF     = io.ErrUnexpectedEOF
)

// errorsf wraps a sentinel with positional context while preserving its
// identity for errors.Is / errors.Cause, following the same pattern the
// pack's abrander-imagemeta uses github.com/pkg/errors for.
func errorsf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
