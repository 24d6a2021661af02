package jpeg

// FieldType is the TIFF field type tag carried by every IFD field record.
// The twelve standard types plus Unknown are the complete set this parser
// understands; any type id outside 1..12 decodes to TypeUnknown (spec §4.6
// step 2).
type FieldType uint16

const (
	TypeByte      FieldType = 1
	TypeASCII     FieldType = 2
	TypeShort     FieldType = 3
	TypeLong      FieldType = 4
	TypeRational  FieldType = 5
	TypeSByte     FieldType = 6
	TypeUndefined FieldType = 7
	TypeSShort    FieldType = 8
	TypeSLong     FieldType = 9
	TypeSRational FieldType = 10
	TypeFloat     FieldType = 11
	TypeDouble    FieldType = 12
	TypeUnknown   FieldType = 0xFFFF
)

var fieldTypeByteSize = map[FieldType]int64{
	TypeByte:      1,
	TypeASCII:     1,
	TypeShort:     2,
	TypeLong:      4,
	TypeRational:  8,
	TypeSByte:     1,
	TypeUndefined: 1,
	TypeSShort:    2,
	TypeSLong:     4,
	TypeSRational: 8,
	TypeFloat:     4,
	TypeDouble:    8,
	TypeUnknown:   0,
}

// resolveFieldType coerces a raw 16-bit type id into a known FieldType,
// falling back to TypeUnknown for anything outside the 1..12 range.
func resolveFieldType(raw uint16) FieldType {
	ft := FieldType(raw)
	if _, ok := fieldTypeByteSize[ft]; !ok || ft == TypeUnknown {
		return TypeUnknown
	}
	return ft
}

// byteSize returns the on-disk size, in bytes, of a single element of this
// type. TypeUnknown has size 0.
func (t FieldType) byteSize() int64 {
	return fieldTypeByteSize[t]
}

func (t FieldType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeASCII:
		return "ASCII"
	case TypeShort:
		return "Short"
	case TypeLong:
		return "Long"
	case TypeRational:
		return "Rational"
	case TypeSByte:
		return "SByte"
	case TypeUndefined:
		return "Undefined"
	case TypeSShort:
		return "SShort"
	case TypeSLong:
		return "SLong"
	case TypeSRational:
		return "SRational"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	default:
		return "Unknown"
	}
}

func (t FieldType) isRational() bool {
	return t == TypeRational || t == TypeSRational
}

func (t FieldType) isSigned() bool {
	switch t {
	case TypeSByte, TypeSShort, TypeSLong, TypeSRational:
		return true
	}
	return false
}

func (t FieldType) isFloat() bool {
	return t == TypeFloat || t == TypeDouble
}
