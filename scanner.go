package jpeg

import "io"

// scan walks the marker stream from SOI through SOS, building an ordered
// list of SegmentDescriptor. If includeEOI is true, it additionally
// performs a literal (non byte-stuffing-aware) scan for the first
// 0xFF 0xD9 pair after SOS and appends an EOI descriptor for it.
func scan(r io.ReaderAt, size int64, includeEOI bool) ([]SegmentDescriptor, error) {
	var descriptors []SegmentDescriptor

	var soiBuf [2]byte
	if err := readExact(r, 0, soiBuf[:]); err != nil {
		return nil, ErrNotAJpeg
	}
	soiSig := uint16(decodeUint(soiBuf[:], BigEndian))
	if soiSig != sigSOI {
		return nil, ErrNotAJpeg
	}
	descriptors = append(descriptors, SegmentDescriptor{Marker: markerSOI, Offset: 0, Size: 2})

	cursor := int64(2)
	for {
		var markerBuf [2]byte
		if err := readExact(r, cursor, markerBuf[:]); err != nil {
			return descriptors, nil
		}
		sig := uint16(decodeUint(markerBuf[:], BigEndian))

		if sig == sigEOI {
			if !includeEOI {
				return nil, ErrUnexpectedEOI
			}
			// The caller wants EOI regardless; the forthcoming EOI scan
			// below will pick it up right where the structural walk
			// stopped, so there's nothing left to do here but stop.
			break
		}

		mk, err := detectMarker(sig)
		if err != nil {
			return nil, err
		}

		var lenBuf [2]byte
		if err := readExact(r, cursor+2, lenBuf[:]); err != nil {
			return nil, err
		}
		segLen := int64(decodeUint(lenBuf[:], BigEndian))

		if sig == sigSOS {
			// The scanner does not step past SOS; its descriptor covers
			// only the marker itself, per spec §3.
			descriptors = append(descriptors, SegmentDescriptor{Marker: mk, Offset: cursor, Size: 2})
			break
		}

		descriptors = append(descriptors, SegmentDescriptor{Marker: mk, Offset: cursor, Size: segLen + 2})
		cursor += segLen + 2
	}

	if includeEOI {
		eoiOffset, err := findEOI(r, size, cursor)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, SegmentDescriptor{Marker: markerEOI, Offset: eoiOffset, Size: 2})
	}

	return descriptors, nil
}

// findEOI performs a literal byte-by-byte scan for 0xFF 0xD9 starting at
// from, with no awareness of entropy-coding byte stuffing (0xFF 0x00),
// per spec §4.3/§9 — a caller needing exact image-data size on a
// pathological file must use external means.
func findEOI(r io.ReaderAt, size, from int64) (int64, error) {
	const chunk = 32 * 1024
	buf := make([]byte, chunk+1)

	for pos := from; pos < size; {
		n := chunk + 1
		if pos+int64(n) > size {
			n = int(size - pos)
		}
		if n < 2 {
			break
		}
		read, err := r.ReadAt(buf[:n], pos)
		if read < n {
			if err != nil && err != io.EOF {
				return 0, err
			}
		}
		for i := 0; i+1 < read; i++ {
			if buf[i] == 0xFF && buf[i+1] == 0xD9 {
				return pos + int64(i), nil
			}
		}
		if read <= 1 {
			break
		}
		pos += int64(read) - 1 // overlap by one byte for a split marker
	}
	return 0, ErrEOINotFound
}
