package jpeg

import "io"

// NamedSegment pairs a segment with the name it was indexed under
// ("SOF0", "APP1", "APP2", …) — the uppercased marker name, per spec §4.8.
type NamedSegment struct {
	Name    string
	Segment Segment
}

// Parser is the top-level entry point: an ordered name→segment index built
// from one structural scan, plus the stashed SOS and (if requested) EOI
// descriptors needed for the image-data accessors. Grounded on the
// teacher's Desc type (jpeg.go), which likewise holds a single segment
// slice built by one parse pass and exposes lookup/accessor methods over
// it; the map-by-name indexing follows original_source/jparse/parser.py's
// JpegMetaParser.
type Parser struct {
	r    io.ReaderAt
	size int64
	opts Options

	order  []NamedSegment
	byName map[string]Segment

	sos SegmentDescriptor
	eoi *SegmentDescriptor
}

// Open scans r (size bytes long) and classifies every segment up to and
// including SOS. If opts.EstimateImageSize is set, it additionally scans
// for EOI so ImageDataSize can be answered; otherwise ImageDataSize fails
// with ErrNotLoaded.
func Open(r io.ReaderAt, size int64, opts Options) (*Parser, error) {
	log := opts.logger()

	descriptors, err := scan(r, size, opts.EstimateImageSize)
	if err != nil {
		log.Warnf("jpeg: scan failed: %v", err)
		return nil, err
	}
	log.Debugf("jpeg: scanned %d segments", len(descriptors))

	p := &Parser{
		r:      r,
		size:   size,
		opts:   opts,
		byName: make(map[string]Segment),
	}

	var sawSOS bool
	for _, d := range descriptors {
		switch d.Marker.Signature {
		case sigSOI:
			continue
		case sigEOI:
			eoi := d
			p.eoi = &eoi
			continue
		case sigSOS:
			p.sos = d
			sawSOS = true
			continue
		}

		seg, err := p.loadSegment(d)
		if err != nil {
			log.Warnf("jpeg: segment %s at offset %d: %v", d.Marker, d.Offset, err)
			return nil, err
		}

		name := d.Marker.Name
		if _, dup := p.byName[name]; dup {
			log.Debugf("jpeg: duplicate segment %s at offset %d shadows the earlier one in Segment() lookups", name, d.Offset)
		}
		p.byName[name] = seg
		p.order = append(p.order, NamedSegment{Name: name, Segment: seg})
	}

	// A file whose structural walk never reached SOS (EOI followed SOI
	// directly) has no entropy-coded scan at all; pin the image-data
	// cursor at EOI itself so ImageDataSize reports zero instead of the
	// meaningless "EOI offset minus zero".
	if !sawSOS && p.eoi != nil {
		p.sos = SegmentDescriptor{Offset: p.eoi.Offset}
	}

	return p, nil
}

// loadSegment classifies one non-SOI/SOS/EOI descriptor into its concrete
// Segment variant: APP0 is JFIF, APP1 is the strict two-linked-IFD Exif
// form, any other APPn is the heuristic Generic form, everything else is
// an opaque OtherSegment, per spec §4.7.
func (p *Parser) loadSegment(d SegmentDescriptor) (Segment, error) {
	switch d.Marker.Signature {
	case sigAPP0:
		return loadJFIFSegment(p.r, d.Offset, d.Size, d.Marker)
	case sigAPP1:
		return loadExifSegment(p.r, d.Offset, d.Size, d.Marker)
	default:
		if checkMask(maskAPPn, d.Marker.Signature) {
			return loadGenericSegment(p.r, d.Offset, d.Size, d.Marker)
		}
		return loadOtherSegment(p.r, d.Offset, d.Size, d.Marker), nil
	}
}

// Segments returns every classified segment in on-disk order (SOI, SOS and
// EOI are tracked separately and excluded from this list).
func (p *Parser) Segments() []NamedSegment {
	return p.order
}

// Segment looks up a classified segment by its uppercased marker name
// ("APP1", "SOF0", "COM", …).
func (p *Parser) Segment(name string) (Segment, bool) {
	seg, ok := p.byName[name]
	return seg, ok
}

// TagValue walks segment→IFD(ifdIndex)→Field(tagID)→Value. Any missing hop
// — no such segment, the segment has no IFDs, no such IFD, no such field,
// or a decode error — yields def. It never returns an error, per spec §7.
func (p *Parser) TagValue(appName string, ifdIndex int, tagID uint16, def Value) Value {
	seg, ok := p.Segment(appName)
	if !ok {
		return def
	}
	provider, ok := seg.(IFDProvider)
	if !ok {
		return def
	}
	ifd, err := provider.IFD(ifdIndex)
	if err != nil || ifd == nil {
		return def
	}
	field, ok := ifd.Field(tagID)
	if !ok {
		return def
	}
	value, err := field.Value()
	if err != nil {
		return def
	}
	return value
}

// ImageDataOffset is the byte position immediately after the SOS marker
// descriptor, where the entropy-coded scan data begins.
func (p *Parser) ImageDataOffset() int64 {
	return p.sos.Offset + p.sos.Size
}

// ImageDataSize is eoi.offset - ImageDataOffset(). It requires that Open
// was called with opts.EstimateImageSize set (so EOI was located);
// otherwise it fails with ErrNotLoaded.
func (p *Parser) ImageDataSize() (int64, error) {
	if p.eoi == nil {
		return 0, ErrNotLoaded
	}
	return p.eoi.Offset - p.ImageDataOffset(), nil
}
