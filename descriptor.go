package jpeg

// SegmentDescriptor is the scanner's raw output for one segment: its
// marker, its absolute offset in the stream, and its size (marker
// inclusive). For the terminal SOS, Size covers only the 2-byte marker
// itself — the scanner does not step past SOS. SOI and EOI both have
// Size 2.
type SegmentDescriptor struct {
	Marker Marker
	Offset int64
	Size   int64
}
