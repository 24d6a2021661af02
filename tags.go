package jpeg

// Tags is a small generated-shim layer over Parser.TagValue for the
// handful of Exif fields most callers want by name instead of by raw tag
// id — the spec explicitly leaves this open to "any implementation", per
// spec §1/§9; this is not an attempt at the full tag catalog (out of
// scope), only the ones original_source/jparse/ExifInfo.py exposes as
// plain properties over IFD0 of APP1.
type Tags struct {
	p *Parser
}

// TagsFor returns a Tags accessor bound to p.
func TagsFor(p *Parser) Tags {
	return Tags{p: p}
}

const (
	tagImageWidth     = 0x0100
	tagImageLength    = 0x0101
	tagMake           = 0x010F
	tagModel          = 0x0110
	tagOrientation    = 0x0112
	tagXResolution    = 0x011A
	tagYResolution    = 0x011B
	tagResolutionUnit = 0x0128
	tagSoftware       = 0x0131
	tagDateTime       = 0x0132
)

func (t Tags) value(tagID uint16) Value {
	return t.p.TagValue("APP1", 0, tagID, Value{})
}

// Make is the camera/scanner manufacturer (tag 0x010F), or "" if absent.
func (t Tags) Make() string {
	s, _ := t.value(tagMake).AsString()
	return s
}

// Model is the camera/scanner model (tag 0x0110), or "" if absent.
func (t Tags) Model() string {
	s, _ := t.value(tagModel).AsString()
	return s
}

// Software names the firmware/editor that produced the file (tag 0x0131).
func (t Tags) Software() string {
	s, _ := t.value(tagSoftware).AsString()
	return s
}

// DateTime is the file's modification timestamp in "YYYY:MM:DD HH:MM:SS"
// form (tag 0x0132), or "" if absent.
func (t Tags) DateTime() string {
	s, _ := t.value(tagDateTime).AsString()
	return s
}

// Orientation is the tag-0x0112 orientation code (1..8), with 0 meaning
// absent — 0 is not itself a valid Exif orientation value.
func (t Tags) Orientation() uint64 {
	u, _ := t.value(tagOrientation).AsUint()
	return u
}

// ImageWidth is tag 0x0100, 0 if absent.
func (t Tags) ImageWidth() uint64 {
	u, _ := t.value(tagImageWidth).AsUint()
	return u
}

// ImageLength is tag 0x0101, 0 if absent.
func (t Tags) ImageLength() uint64 {
	u, _ := t.value(tagImageLength).AsUint()
	return u
}

// XResolution is tag 0x011A as a Rational; ok is false if absent.
func (t Tags) XResolution() (Rational, bool) {
	return t.value(tagXResolution).AsRational()
}

// YResolution is tag 0x011B as a Rational; ok is false if absent.
func (t Tags) YResolution() (Rational, bool) {
	return t.value(tagYResolution).AsRational()
}

// ResolutionUnit is tag 0x0128 (2 = inches, 3 = centimeters), 0 if absent.
func (t Tags) ResolutionUnit() uint64 {
	u, _ := t.value(tagResolutionUnit).AsUint()
	return u
}
