package jpeg

// Test-only byte builders for constructing minimal, well-formed (and
// deliberately malformed) JPEG/TIFF fixtures in memory — no on-disk
// fixtures, following the synthetic-builder style
// ostafen-digler/internal/format/reader_test.go uses for its Reader
// tests.

type fieldSpec struct {
	tag     uint16
	typ     FieldType
	count   uint32
	payload []byte
}

func u16Bytes(order ByteOrder, v uint16) []byte {
	b := make([]byte, 2)
	order.binary().PutUint16(b, v)
	return b
}

func u32Bytes(order ByteOrder, v uint32) []byte {
	b := make([]byte, 4)
	order.binary().PutUint32(b, v)
	return b
}

// tiffHeaderBytes builds the 8-byte TIFF header for order, pointing IFD0
// at ifd0Offset (relative to the header's own first byte).
func tiffHeaderBytes(order ByteOrder, ifd0Offset uint32) []byte {
	b := make([]byte, 8)
	if order == LittleEndian {
		b[0], b[1] = 'I', 'I'
	} else {
		b[0], b[1] = 'M', 'M'
	}
	order.binary().PutUint16(b[2:4], 0x002A)
	order.binary().PutUint32(b[4:8], ifd0Offset)
	return b
}

// buildIFDBytes lays out one IFD's on-disk bytes: count prefix, the field
// table (inline payloads copied into the record, oversized payloads
// appended to an external area and back-pointed to), and the next-IFD
// trailer. ifdOffsetInTIFF is this IFD's own position relative to the
// TIFF header anchor, needed to compute the external pointers correctly.
func buildIFDBytes(order ByteOrder, ifdOffsetInTIFF int, specs []fieldSpec, next uint32) []byte {
	nb := order.binary()
	fieldsBase := 2 + len(specs)*12
	extBase := fieldsBase + 4

	records := make([][12]byte, len(specs))
	var ext []byte
	for i, s := range specs {
		var rec [12]byte
		nb.PutUint16(rec[0:2], s.tag)
		nb.PutUint16(rec[2:4], uint16(s.typ))
		nb.PutUint32(rec[4:8], s.count)
		if len(s.payload) <= 4 {
			copy(rec[8:12], s.payload)
		} else {
			off := ifdOffsetInTIFF + extBase + len(ext)
			nb.PutUint32(rec[8:12], uint32(off))
			ext = append(ext, s.payload...)
			for len(ext)%4 != 0 {
				ext = append(ext, 0)
			}
		}
		records[i] = rec
	}

	buf := make([]byte, 0, extBase+len(ext))
	buf = append(buf, u16Bytes(order, uint16(len(specs)))...)
	for _, r := range records {
		buf = append(buf, r[:]...)
	}
	buf = append(buf, u32Bytes(order, next)...)
	buf = append(buf, ext...)
	return buf
}

// buildAPP1 wraps a TIFF block (header + IFDs) in the real 6-byte
// "Exif\0\0" APP1 prelude, marker and length field included.
func buildAPP1(tiffBlock []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffBlock...)
	l := len(payload) + 2
	seg := []byte{0xFF, 0xE1, byte(l >> 8), byte(l)}
	return append(seg, payload...)
}

// buildAPPn wraps a TIFF block in a "<name>\0"+pad generic APPn segment
// (n != 0, n != 1).
func buildAPPn(n byte, name string, tiffBlock []byte) []byte {
	ident := append([]byte(name), 0x00, 0x00)
	payload := append(ident, tiffBlock...)
	l := len(payload) + 2
	seg := []byte{0xFF, 0xE0 | n, byte(l >> 8), byte(l)}
	return append(seg, payload...)
}

func buildJFIFAPP0() []byte {
	payload := []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	l := len(payload) + 2
	seg := []byte{0xFF, 0xE0, byte(l >> 8), byte(l)}
	return append(seg, payload...)
}

// assembleJPEG concatenates SOI, an arbitrary run of pre-built segments, a
// bare SOS (no scan parameters), fake entropy-coded data, and EOI.
func assembleJPEG(segments ...[]byte) []byte {
	buf := []byte{0xFF, 0xD8}
	for _, s := range segments {
		buf = append(buf, s...)
	}
	buf = append(buf, 0xFF, 0xDA, 0x00, 0x02)
	buf = append(buf, 0x12, 0x34, 0x56)
	buf = append(buf, 0xFF, 0xD9)
	return buf
}
