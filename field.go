package jpeg

import "io"

// Field is one 12-byte IFD field record: {tag, type, count, value-or-
// pointer}. Its value is materialized lazily on first access via Value();
// the header (tag, type, count, offsets, size) is always available as
// soon as the field is parsed.
type Field struct {
	TagID      uint16
	Type       FieldType
	Count      uint32
	// ValueOffset is where the field's payload lives: field_offset+8 when
	// inline, or the external pointer re-anchored against the TIFF header
	// otherwise.
	ValueOffset int64
	// Size is this field's total contribution to its IFD's size: 12 for
	// an inline field, or align4(payload)+12 for an out-of-line one.
	Size int64
	// AbsoluteOffset is the start of this field's 12-byte record.
	AbsoluteOffset int64

	order  ByteOrder
	r      io.ReaderAt
	loaded bool
	value  Value
	err    error
}

// parseField reads one 12-byte field record at offset, re-anchoring an
// out-of-line value offset against tiffHeader. It does not read the
// value's payload.
func parseField(r io.ReaderAt, tiffHeader TIFFHeader, offset int64) (*Field, error) {
	var rec [12]byte
	if err := readExact(r, offset, rec[:]); err != nil {
		return nil, err
	}

	order := tiffHeader.ByteOrder
	tagID := uint16(decodeUint(rec[0:2], order))
	typeID := uint16(decodeUint(rec[2:4], order))
	count := decodeUint(rec[4:8], order)

	ft := resolveFieldType(typeID)
	payloadBytes := int64(count) * ft.byteSize()

	f := &Field{
		TagID:          tagID,
		Type:           ft,
		Count:          count,
		AbsoluteOffset: offset,
		order:          order,
		r:              r,
	}

	if payloadBytes <= 4 {
		f.ValueOffset = offset + 8
		f.Size = 12
	} else {
		external := decodeUint(rec[8:12], order)
		f.ValueOffset = int64(external) + tiffHeader.AbsoluteOffset
		f.Size = align4(payloadBytes) + 12
	}

	return f, nil
}

func (f *Field) payloadBytes() int64 {
	return int64(f.Count) * f.Type.byteSize()
}

// Value materializes (once) and returns this field's decoded value.
// Accessing the value of an Unknown-typed field fails with
// ErrUnknownFieldType; the field's header metadata (Size, ValueOffset,
// etc.) remains valid and queryable regardless.
func (f *Field) Value() (Value, error) {
	if f.loaded {
		return f.value, f.err
	}
	f.value, f.err = f.decode()
	f.loaded = true
	return f.value, f.err
}

func (f *Field) decode() (Value, error) {
	if f.Type == TypeUnknown {
		return Value{}, errorsf(ErrUnknownFieldType, "tag 0x%04X", f.TagID)
	}

	n := f.payloadBytes()
	raw := make([]byte, n)
	if n > 0 {
		if err := readExact(f.r, f.ValueOffset, raw); err != nil {
			return Value{}, err
		}
	}

	switch f.Type {
	case TypeASCII:
		return stringValue(decodeASCII(raw)), nil
	case TypeUndefined:
		return bytesValue(raw), nil
	}

	elemSize := f.Type.byteSize()
	count := int(f.Count)
	values := make([]Value, count)
	for i := 0; i < count; i++ {
		values[i] = decodeScalar(f.Type, f.order, raw[int64(i)*elemSize:int64(i+1)*elemSize])
	}

	if count == 1 {
		return values[0], nil
	}
	return tupleValue(values), nil
}
