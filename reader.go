package jpeg

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ByteOrder selects the endianness used to decode multi-byte TIFF integers.
// It has no bearing on the JPEG marker stream itself, which is always
// big-endian per the ISO/IEC 10918-1 grammar.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// readExact reads exactly len(buf) bytes at the given absolute offset,
// failing with ErrUnexpectedEOF if the reader cannot supply them. It never
// returns a short read: either buf is fully populated or an error is
// returned.
func readExact(r io.ReaderAt, offset int64, buf []byte) error {
	n, err := r.ReadAt(buf, offset)
	if n == len(buf) {
		return nil
	}
	if err == nil {
		err = ErrUnexpectedEOF
	} else if err == io.EOF {
		err = ErrUnexpectedEOF
	}
	return errors.Wrapf(err, "jpeg: short read at offset %d (%d of %d bytes)", offset, n, len(buf))
}

// decodeUint decodes a 1, 2 or 4 byte unsigned integer under order. Any
// other length is a programmer error and panics, matching the spec's
// "other lengths are programmer errors" contract for this primitive.
func decodeUint(bytes []byte, order ByteOrder) uint32 {
	switch len(bytes) {
	case 1:
		return uint32(bytes[0])
	case 2:
		return uint32(order.binary().Uint16(bytes))
	case 4:
		return order.binary().Uint32(bytes)
	default:
		panic("jpeg: decodeUint: unsupported byte width")
	}
}

// align4 rounds x up to the next multiple of 4, per the spec's TIFF
// external-value padding rule.
func align4(x int64) int64 {
	return x + ((4 - (x & 3)) & 3)
}
