package jpeg

import "fmt"

// Marker identifies a JPEG marker: a 16-bit big-endian signature whose high
// byte is always 0xFF. IsMask records whether this value describes a
// masked family (APPn, RSTn) rather than a single concrete marker.
type Marker struct {
	Signature uint16
	Name      string
	Info      string
	IsMask    bool
}

func (m Marker) String() string {
	return fmt.Sprintf("%s[0x%04X]", m.Name, m.Signature)
}

const (
	sigSOI  uint16 = 0xFFD8
	sigEOI  uint16 = 0xFFD9
	sigSOF0 uint16 = 0xFFC0
	sigSOF2 uint16 = 0xFFC2
	sigDHT  uint16 = 0xFFC4
	sigDQT  uint16 = 0xFFDB
	sigDRI  uint16 = 0xFFDD
	sigSOS  uint16 = 0xFFDA
	sigCOM  uint16 = 0xFFFE
	sigAPP0 uint16 = 0xFFE0
	sigAPP1 uint16 = 0xFFE1
	sigAPP2 uint16 = 0xFFE2

	sigAPPnMask uint16 = 0xFFEF // APP0..APP15, low nibble is the index
	sigRSTnMask uint16 = 0xFFD7 // RST0..RST7,  low nibble is the index
)

var (
	markerSOI  = Marker{sigSOI, "SOI", "Start of Image", false}
	markerEOI  = Marker{sigEOI, "EOI", "End of Image", false}
	markerSOF0 = Marker{sigSOF0, "SOF0", "Start of Frame (Baseline)", false}
	markerSOF2 = Marker{sigSOF2, "SOF2", "Start of Frame (Progressive)", false}
	markerDHT  = Marker{sigDHT, "DHT", "Define Huffman Table(s)", false}
	markerDQT  = Marker{sigDQT, "DQT", "Define Quantization Table(s)", false}
	markerDRI  = Marker{sigDRI, "DRI", "Define Restart Interval", false}
	markerSOS  = Marker{sigSOS, "SOS", "Start of Scan", false}
	markerCOM  = Marker{sigCOM, "COM", "Comment", false}
	markerAPP0 = Marker{sigAPP0, "APP0", "JFIF Segment", false}
	markerAPP1 = Marker{sigAPP1, "APP1", "Exif Attribute Information", false}
	markerAPP2 = Marker{sigAPP2, "APP2", "Exif extended data", false}

	maskAPPn = Marker{sigAPPnMask, "APP", "Application-specific", true}
	maskRSTn = Marker{sigRSTnMask, "RST", "Restart", true}
)

// knownMarkers is the fixed table of concrete (non-masked) markers,
// looked up before falling back to the masked families.
var knownMarkers = buildKnownMarkers()

func buildKnownMarkers() map[uint16]Marker {
	table := []Marker{
		markerSOI, markerEOI, markerSOF0, markerSOF2, markerDHT, markerDQT,
		markerDRI, markerSOS, markerCOM, markerAPP0, markerAPP1, markerAPP2,
	}
	m := make(map[uint16]Marker, len(table))
	for _, mk := range table {
		m[mk.Signature] = mk
	}
	return m
}

// checkMask reports whether signature belongs to the masked family family
// describes (i.e. every bit outside the family's index bits matches; the
// index bits are the set bits of the family signature's low nibble: 0xF for
// APPn, 0x7 for RSTn).
func checkMask(family Marker, signature uint16) bool {
	indexMask := family.Signature & 0xF
	segmentMask := ^indexMask
	return signature&segmentMask == family.Signature&segmentMask
}

// detectMarker decodes a raw 16-bit big-endian signature into a Marker. It
// never fails to produce a value for a syntactically valid (0xFFxx)
// signature: unrecognized ones become an Unknown marker, per spec §4.2.
func detectMarker(signature uint16) (Marker, error) {
	if signature>>8 != 0xFF {
		return Marker{}, errorsf(ErrInvalidMarker, "signature 0x%04X", signature)
	}

	if mk, ok := knownMarkers[signature]; ok {
		return mk, nil
	}

	if checkMask(maskAPPn, signature) {
		index := signature & 0xF
		return Marker{
			Signature: (maskAPPn.Signature &^ 0xF) + index,
			Name:      fmt.Sprintf("APP%d", index),
			Info:      maskAPPn.Info,
			IsMask:    false,
		}, nil
	}
	if checkMask(maskRSTn, signature) {
		index := signature & 0xF
		return Marker{
			Signature: (maskRSTn.Signature &^ 0xF) + index,
			Name:      fmt.Sprintf("RST%d", index),
			Info:      maskRSTn.Info,
			IsMask:    false,
		}, nil
	}

	return Marker{
		Signature: signature,
		Name:      fmt.Sprintf("UNK[0x%04X]", signature),
		Info:      "Unknown",
		IsMask:    false,
	}, nil
}
