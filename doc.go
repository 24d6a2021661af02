// Package jpeg parses the structural layout of a JPEG file: its marker
// segments, and the TIFF/Exif metadata carried inside APP1 (and other
// APPn) segments. It never decodes pixel data — only the container and
// its tag tables, read lazily through an io.ReaderAt so that callers
// control how much of a (possibly very large) file gets pulled into
// memory.
package jpeg
