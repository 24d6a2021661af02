package jpeg

import "io"

// TIFFHeader is the 8-byte byte-order/magic/IFD0-offset prelude that
// anchors every offset inside an Exif data block. AbsoluteOffset is the
// file position of the header's first byte; all offsets found while
// walking IFDs in this TIFF block are relative to it.
type TIFFHeader struct {
	ByteOrder      ByteOrder
	IFD0Offset     uint32
	AbsoluteOffset int64
}

// parseTIFFHeader reads the 8-byte TIFF header at the given absolute
// offset: 2 BOM bytes, 2-byte 0x002A magic, 4-byte IFD0 offset.
func parseTIFFHeader(r io.ReaderAt, at int64) (TIFFHeader, error) {
	var buf [8]byte
	if err := readExact(r, at, buf[:]); err != nil {
		return TIFFHeader{}, err
	}

	var order ByteOrder
	switch {
	case buf[0] == 0x49 && buf[1] == 0x49:
		order = LittleEndian
	case buf[0] == 0x4D && buf[1] == 0x4D:
		order = BigEndian
	default:
		return TIFFHeader{}, errorsf(ErrInvalidTIFFHeader, "bad byte-order mark 0x%02X%02X", buf[0], buf[1])
	}

	magic := decodeUint(buf[2:4], order)
	if magic != 0x002A {
		return TIFFHeader{}, errorsf(ErrInvalidTIFFHeader, "bad magic 0x%04X", magic)
	}

	ifd0Offset := decodeUint(buf[4:8], order)

	return TIFFHeader{
		ByteOrder:      order,
		IFD0Offset:     ifd0Offset,
		AbsoluteOffset: at,
	}, nil
}
