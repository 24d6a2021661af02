package jpeg

import "io"

// IFD is one Image File Directory: a length-prefixed table of typed
// fields, optionally linked to a successor via NextIFDOffset (relative to
// the owning TIFFHeader's anchor; 0 means no linked successor).
//
// Fields are loaded lazily, one 12-byte record at a time, and cached both
// by tag id (for Field lookups, the hot path) and in on-disk insertion
// order (for Size accounting and sequential iteration) — the dual cache
// spec §4.5 calls for.
type IFD struct {
	AbsoluteOffset int64
	Index          int
	FieldCount     int
	NextIFDOffset  uint32

	r          io.ReaderAt
	tiffHeader TIFFHeader

	fieldsBase      int64 // offset of the first 12-byte field record
	nextFieldOffset int64 // offset of the next not-yet-loaded record
	loadedCount     int
	byTag           map[uint16]*Field
	order           []*Field

	sizeLoaded bool
	size       int64
	sizeErr    error
}

// parseIFD reads only the IFD header (field count prefix + the
// next-IFD-offset trailer, skipping over the field table itself) at the
// given absolute offset. segmentEnd bounds the declared field_count
// against a runaway/overflowing value per spec §9 Open Question 3; a
// segmentEnd of -1 disables the check (used only when no enclosing
// segment size is known, which the rest of this package never does).
func parseIFD(r io.ReaderAt, tiffHeader TIFFHeader, index int, offset, segmentEnd int64) (*IFD, error) {
	var countBuf [2]byte
	if err := readExact(r, offset, countBuf[:]); err != nil {
		return nil, err
	}
	fieldCount := int(decodeUint(countBuf[:], tiffHeader.ByteOrder))

	fieldsBase := offset + 2
	trailerOffset := fieldsBase + int64(fieldCount)*12

	if segmentEnd >= 0 && trailerOffset+4 > segmentEnd {
		return nil, errorsf(ErrMalformedIFD, "ifd %d: declared field count %d overruns segment", index, fieldCount)
	}

	var nextBuf [4]byte
	if err := readExact(r, trailerOffset, nextBuf[:]); err != nil {
		return nil, err
	}
	nextIFDOffset := decodeUint(nextBuf[:], tiffHeader.ByteOrder)

	return &IFD{
		AbsoluteOffset:  offset,
		Index:           index,
		FieldCount:      fieldCount,
		NextIFDOffset:   nextIFDOffset,
		r:               r,
		tiffHeader:      tiffHeader,
		fieldsBase:      fieldsBase,
		nextFieldOffset: fieldsBase,
		byTag:           make(map[uint16]*Field),
	}, nil
}

// loadNext loads exactly one field record beyond the highest offset
// loaded so far, advancing nextFieldOffset by exactly 12 bytes. Returns
// false once FieldCount fields have been loaded.
func (ifd *IFD) loadNext() (*Field, bool, error) {
	if ifd.loadedCount >= ifd.FieldCount {
		return nil, false, nil
	}
	f, err := parseField(ifd.r, ifd.tiffHeader, ifd.nextFieldOffset)
	if err != nil {
		return nil, false, err
	}
	ifd.nextFieldOffset += 12
	ifd.loadedCount++
	ifd.order = append(ifd.order, f)
	ifd.byTag[f.TagID] = f
	return f, true, nil
}

// Field returns the field with the given tag id, loading successive field
// records on demand until a match is found or the directory is exhausted.
// Once loaded, a field stays cached; the cache is append-only.
func (ifd *IFD) Field(tagID uint16) (*Field, bool) {
	if f, ok := ifd.byTag[tagID]; ok {
		return f, true
	}
	for {
		f, more, err := ifd.loadNext()
		if err != nil || !more {
			return nil, false
		}
		if f.TagID == tagID {
			return f, true
		}
	}
}

// FieldAt returns the index-th field in on-disk (insertion) order,
// loading intermediates as needed.
func (ifd *IFD) FieldAt(index int) (*Field, bool) {
	if index < 0 || index >= ifd.FieldCount {
		return nil, false
	}
	for len(ifd.order) <= index {
		if _, more, err := ifd.loadNext(); err != nil || !more {
			return nil, false
		}
	}
	return ifd.order[index], true
}

// Len returns the number of fields declared in this directory (not the
// number currently loaded).
func (ifd *IFD) Len() int {
	return ifd.FieldCount
}

// Fields returns all fields in on-disk order, forcing a full load.
func (ifd *IFD) Fields() ([]*Field, error) {
	for len(ifd.order) < ifd.FieldCount {
		if _, more, err := ifd.loadNext(); err != nil {
			return nil, err
		} else if !more {
			break
		}
	}
	return ifd.order, nil
}

// Size forces a full load of the directory and returns
// 2 + 4 + sum(field.Size) — the on-disk byte length of the whole IFD
// (count prefix + field table + next-IFD trailer).
func (ifd *IFD) Size() (int64, error) {
	if ifd.sizeLoaded {
		return ifd.size, ifd.sizeErr
	}
	fields, err := ifd.Fields()
	if err != nil {
		ifd.sizeErr = err
		ifd.sizeLoaded = true
		return 0, err
	}
	total := int64(2 + 4)
	for _, f := range fields {
		total += f.Size
	}
	ifd.size = total
	ifd.sizeLoaded = true
	return total, nil
}
