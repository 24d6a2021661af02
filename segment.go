package jpeg

import "io"

// Segment is the capability common to every segment variant: its marker,
// its position in the stream, and its size (marker inclusive). Only
// ExifSegment and GenericSegment additionally implement IFDProvider — a
// JFIFSegment or OtherSegment has no IFDs, per spec §9's redesign note
// ("tagged sum... plus a small capability trait/interface").
type Segment interface {
	Marker() Marker
	Offset() int64
	Size() int64
}

// IFDProvider is implemented by segment variants that expose IFDs
// (ExifSegment, GenericSegment).
type IFDProvider interface {
	IFD(index int) (*IFD, error)
}

type segmentBase struct {
	marker Marker
	offset int64
	size   int64
	r      io.ReaderAt
}

func (s segmentBase) Marker() Marker { return s.marker }
func (s segmentBase) Offset() int64  { return s.offset }
func (s segmentBase) Size() int64    { return s.size }

// JFIFSegment is APP0 carrying a JFIF identifier. It never has IFDs.
type JFIFSegment struct {
	segmentBase
	Identifier string
}

func loadJFIFSegment(r io.ReaderAt, offset, size int64, marker Marker) (*JFIFSegment, error) {
	ident, err := readIdentifier(r, offset+4, 5)
	if err != nil {
		return nil, err
	}
	return &JFIFSegment{
		segmentBase: segmentBase{marker: marker, offset: offset, size: size, r: r},
		Identifier:  ident,
	}, nil
}

// exifPrelude is the {identifier, pad, TIFF header} block shared by the
// strict Exif (APP1) and Generic (APPn>1) segment variants — both parse
// it identically, only their IFD enumeration strategy differs, mirroring
// the common ExifSegment base class in the Python original this spec was
// distilled from.
type exifPrelude struct {
	identifier string
	tiffHeader *TIFFHeader // nil when the pad byte was missing (headerless)
}

// parseExifPrelude reads the NUL-terminated identifier starting at
// offset, then one pad byte, then the 8-byte TIFF header. If the pad byte
// is not 0x00, the segment is marked loaded-but-headerless: tiffHeader is
// left nil and IFD requests subsequently return nil, per spec §4.7.
func parseExifPrelude(r io.ReaderAt, offset int64, identLen int) (exifPrelude, error) {
	ident, err := readIdentifier(r, offset, identLen)
	if err != nil {
		return exifPrelude{}, err
	}

	var pad [1]byte
	padOffset := offset + int64(identLen)
	if err := readExact(r, padOffset, pad[:]); err != nil {
		return exifPrelude{}, err
	}
	if pad[0] != 0x00 {
		return exifPrelude{identifier: ident}, nil
	}

	header, err := parseTIFFHeader(r, padOffset+1)
	if err != nil {
		return exifPrelude{}, err
	}
	return exifPrelude{identifier: ident, tiffHeader: &header}, nil
}

// parseVendorPrelude reads a variable-length NUL-terminated vendor
// identifier ("<name>\0"), bounded by limit, then one pad byte, then the
// 8-byte TIFF header — the Generic (APPn>1) form of the identifier-plus-
// pad block, whose name length isn't known up front the way APP1's fixed
// "Exif\0\0" is, per spec §4.7/§9.
func parseVendorPrelude(r io.ReaderAt, offset, limit int64) (exifPrelude, error) {
	name, consumed, err := scanNULTerminated(r, offset, limit)
	if err != nil {
		return exifPrelude{}, err
	}

	var pad [1]byte
	padOffset := offset + consumed
	if err := readExact(r, padOffset, pad[:]); err != nil {
		return exifPrelude{}, err
	}
	if pad[0] != 0x00 {
		return exifPrelude{identifier: name}, nil
	}

	header, err := parseTIFFHeader(r, padOffset+1)
	if err != nil {
		return exifPrelude{}, err
	}
	return exifPrelude{identifier: name, tiffHeader: &header}, nil
}

// scanNULTerminated reads one byte at a time from offset up to limit,
// returning the bytes before the first NUL and the count of bytes
// consumed including that NUL.
func scanNULTerminated(r io.ReaderAt, offset, limit int64) (string, int64, error) {
	var buf []byte
	for pos := offset; pos < limit; pos++ {
		var b [1]byte
		if err := readExact(r, pos, b[:]); err != nil {
			return "", 0, err
		}
		if b[0] == 0 {
			return string(buf), pos - offset + 1, nil
		}
		buf = append(buf, b[0])
	}
	return "", 0, errorsf(ErrMalformedSegment, "vendor identifier has no NUL terminator")
}

// readIdentifier reads n bytes at offset and trims at the first NUL,
// used for both the plain JFIF identifier and the Exif "Exif\0\0" prefix.
func readIdentifier(r io.ReaderAt, offset int64, n int) (string, error) {
	buf := make([]byte, n)
	if err := readExact(r, offset, buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf), nil
}

// ExifSegment is APP1 carrying exactly two linked IFDs: IFD0 and, via its
// next_ifd_offset, IFD1. Any deeper index returns (nil, nil).
type ExifSegment struct {
	segmentBase
	exifPrelude

	ifd0, ifd1 *IFD
	ifd0Tried  bool
	ifd1Tried  bool
}

func loadExifSegment(r io.ReaderAt, offset, size int64, marker Marker) (*ExifSegment, error) {
	prelude, err := parseExifPrelude(r, offset+4, 5) // "Exif\0", one more pad byte brings the prelude to 6
	if err != nil {
		return nil, err
	}
	return &ExifSegment{
		segmentBase: segmentBase{marker: marker, offset: offset, size: size, r: r},
		exifPrelude: prelude,
	}, nil
}

// IFD returns IFD0 (index 0) or IFD1 (index 1, reached via IFD0's
// next_ifd_offset). Any other index, a missing TIFF header, or an absent
// IFD1 link yields (nil, nil) — never an error, per spec §4.7/§7.
func (s *ExifSegment) IFD(index int) (*IFD, error) {
	switch index {
	case 0:
		return s.loadIFD0()
	case 1:
		return s.loadIFD1()
	default:
		return nil, nil
	}
}

func (s *ExifSegment) loadIFD0() (*IFD, error) {
	if s.ifd0Tried {
		return s.ifd0, nil
	}
	s.ifd0Tried = true
	if s.tiffHeader == nil {
		return nil, nil
	}
	offset := s.tiffHeader.AbsoluteOffset + int64(s.tiffHeader.IFD0Offset)
	ifd, err := parseIFD(s.r, *s.tiffHeader, 0, offset, s.offset+s.size)
	if err != nil {
		return nil, err
	}
	s.ifd0 = ifd
	return ifd, nil
}

func (s *ExifSegment) loadIFD1() (*IFD, error) {
	if s.ifd1Tried {
		return s.ifd1, nil
	}
	s.ifd1Tried = true
	ifd0, err := s.loadIFD0()
	if err != nil {
		return nil, err
	}
	if ifd0 == nil || ifd0.NextIFDOffset == 0 {
		return nil, nil
	}
	offset := s.tiffHeader.AbsoluteOffset + int64(ifd0.NextIFDOffset)
	ifd, err := parseIFD(s.r, *s.tiffHeader, 1, offset, s.offset+s.size)
	if err != nil {
		return nil, err
	}
	s.ifd1 = ifd
	return ifd, nil
}

// GenericSegment is any other APPn (n>1) carrying a TIFF/Exif-shaped
// payload. Unlike ExifSegment it enumerates an unbounded number of IFDs
// using a linked-or-sequential heuristic: it follows next_ifd_offset when
// present, and otherwise forces a full size() of the last IFD to compute
// where the next one (if any) must start — required because some vendors
// omit the linkage, per spec §4.7.
type GenericSegment struct {
	segmentBase
	exifPrelude

	ifds         []*IFD
	nextOffset   int64
	started      bool
	endOfSegment bool
}

func loadGenericSegment(r io.ReaderAt, offset, size int64, marker Marker) (*GenericSegment, error) {
	prelude, err := parseVendorPrelude(r, offset+4, offset+size)
	if err != nil {
		return nil, err
	}
	return &GenericSegment{
		segmentBase: segmentBase{marker: marker, offset: offset, size: size, r: r},
		exifPrelude: prelude,
	}, nil
}

// IFD returns the index-th IFD, lazily loading and caching every
// intermediate IFD in the chain. Returns (nil, nil) once the segment's
// IFDs are exhausted (linked chain ended, or the sequential layout's
// bytes are consumed).
func (s *GenericSegment) IFD(index int) (*IFD, error) {
	if index < 0 {
		return nil, nil
	}
	for len(s.ifds) <= index {
		ifd, err := s.loadNextIFD()
		if err != nil {
			return nil, err
		}
		if ifd == nil {
			return nil, nil
		}
	}
	return s.ifds[index], nil
}

func (s *GenericSegment) loadNextIFD() (*IFD, error) {
	if s.endOfSegment || s.tiffHeader == nil {
		return nil, nil
	}

	if !s.started {
		s.nextOffset = s.tiffHeader.AbsoluteOffset + int64(s.tiffHeader.IFD0Offset)
		s.started = true
	}

	segmentEnd := s.offset + s.size
	idx := len(s.ifds)
	ifd, err := parseIFD(s.r, *s.tiffHeader, idx, s.nextOffset, segmentEnd)
	if err != nil {
		return nil, err
	}
	s.ifds = append(s.ifds, ifd)

	if ifd.NextIFDOffset > 0 {
		s.nextOffset = s.tiffHeader.AbsoluteOffset + int64(ifd.NextIFDOffset)
		return ifd, nil
	}

	// Sequential layout: the IFD's true extent is only known once every
	// field in it has been materialized.
	sz, err := ifd.Size()
	if err != nil {
		return nil, err
	}
	end := ifd.AbsoluteOffset + sz

	switch {
	case end > segmentEnd:
		return nil, errorsf(ErrMalformedIFD, "ifd %d: offset+size %d exceeds segment end %d", idx, end, segmentEnd)
	case end == segmentEnd:
		s.endOfSegment = true
	default:
		s.nextOffset = end
	}
	return ifd, nil
}

// OtherSegment is any non-APP marker segment (SOF, DHT, DQT, DRI, COM,
// …). It carries no metadata of its own beyond the descriptor.
type OtherSegment struct {
	segmentBase
}

func loadOtherSegment(r io.ReaderAt, offset, size int64, marker Marker) *OtherSegment {
	return &OtherSegment{segmentBase{marker: marker, offset: offset, size: size, r: r}}
}
