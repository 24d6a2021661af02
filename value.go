package jpeg

import (
	"fmt"
	"math"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindFloat
	KindRational
	KindString
	KindBytes
	KindTuple
)

// Rational is a numerator/denominator pair. A denominator of 0 is
// preserved verbatim and never normalized or rejected, per spec §9
// ("rational with den=0... surface to caller verbatim").
type Rational struct {
	Numerator, Denominator int64
}

// Value is the decoded contents of an IFD field. Exactly one of the
// Kind-tagged accessors is meaningful for a given Value; singletons
// (count == 1, non-ASCII, non-Undefined) unwrap to scalars rather than a
// one-element tuple, and ASCII unwraps to a string rather than a byte
// buffer, per spec §3.
type Value struct {
	kind     Kind
	u        uint64
	i        int64
	f        float64
	rational Rational
	str      string
	bytes    []byte
	tuple    []Value
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindUint {
		return 0, false
	}
	return v.u, true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsRational() (Rational, bool) {
	if v.kind != KindRational {
		return Rational{}, false
	}
	return v.rational, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytes, true
}

// AsTuple returns the element values when Kind is KindTuple (count > 1,
// non-ASCII, non-Undefined fields).
func (v Value) AsTuple() ([]Value, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return v.tuple, true
}

func (v Value) String() string {
	switch v.kind {
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindRational:
		return fmt.Sprintf("%d/%d", v.rational.Numerator, v.rational.Denominator)
	case KindString:
		return v.str
	case KindBytes:
		return fmt.Sprintf("% x", v.bytes)
	case KindTuple:
		return fmt.Sprintf("%v", v.tuple)
	default:
		return "<invalid>"
	}
}

func uintValue(u uint64) Value     { return Value{kind: KindUint, u: u} }
func intValue(i int64) Value       { return Value{kind: KindInt, i: i} }
func floatValue(f float64) Value   { return Value{kind: KindFloat, f: f} }
func stringValue(s string) Value   { return Value{kind: KindString, str: s} }
func bytesValue(b []byte) Value    { return Value{kind: KindBytes, bytes: b} }
func tupleValue(vs []Value) Value  { return Value{kind: KindTuple, tuple: vs} }
func rationalValue(r Rational) Value {
	return Value{kind: KindRational, rational: r}
}

// decodeASCII trims a NUL-terminated byte run into a string. The empty
// string is returned if the first byte is NUL; bytes above 0x7F are kept
// verbatim rather than rejected or substituted (spec §9 Open Question 2 —
// decoded byte-preserving, since Go's string conversion has no ASCII
// opinion of its own).
func decodeASCII(raw []byte) string {
	if len(raw) == 0 || raw[0] == 0 {
		return ""
	}
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}

// decodeScalar decodes a single element of byteSize(ft) bytes at the front
// of raw into a Value, per FieldType's numeric/rational/signed kind.
func decodeScalar(ft FieldType, order ByteOrder, raw []byte) Value {
	switch {
	case ft.isRational():
		nb := order.binary()
		half := len(raw) / 2
		if ft.isSigned() {
			return rationalValue(Rational{
				Numerator:   int64(int32(nb.Uint32(raw[:half]))),
				Denominator: int64(int32(nb.Uint32(raw[half:]))),
			})
		}
		return rationalValue(Rational{
			Numerator:   int64(nb.Uint32(raw[:half])),
			Denominator: int64(nb.Uint32(raw[half:])),
		})
	case ft.isFloat():
		return floatValue(decodeFloat(ft, order, raw))
	case ft.isSigned():
		return intValue(decodeSignedInt(ft, order, raw))
	default:
		return uintValue(uint64(decodeUint(raw, order)))
	}
}

func decodeSignedInt(ft FieldType, order ByteOrder, raw []byte) int64 {
	switch ft {
	case TypeSByte:
		return int64(int8(raw[0]))
	case TypeSShort:
		return int64(int16(order.binary().Uint16(raw)))
	case TypeSLong:
		return int64(int32(order.binary().Uint32(raw)))
	default:
		panic("jpeg: decodeSignedInt: not a signed integer type")
	}
}

func decodeFloat(ft FieldType, order ByteOrder, raw []byte) float64 {
	switch ft {
	case TypeFloat:
		return float64(math.Float32frombits(order.binary().Uint32(raw)))
	case TypeDouble:
		return math.Float64frombits(order.binary().Uint64(raw))
	default:
		panic("jpeg: decodeFloat: not a float type")
	}
}
