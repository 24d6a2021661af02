package jpeg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_MinimalJPEG(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xD9}

	t.Run("with EOI scan", func(t *testing.T) {
		p, err := Open(bytes.NewReader(data), int64(len(data)), Options{EstimateImageSize: true})
		require.NoError(t, err)
		require.Empty(t, p.Segments())
		size, err := p.ImageDataSize()
		require.NoError(t, err)
		require.Equal(t, int64(0), size)
	})

	t.Run("without EOI scan", func(t *testing.T) {
		_, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
		require.ErrorIs(t, err, ErrUnexpectedEOI)
	})
}

func TestOpen_JFIFOnly(t *testing.T) {
	app0 := buildJFIFAPP0()
	data := assembleJPEG(app0)
	sosOffset := int64(2 + len(app0))

	p, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
	require.NoError(t, err)

	seg, ok := p.Segment("APP0")
	require.True(t, ok)
	jfif, ok := seg.(*JFIFSegment)
	require.True(t, ok)
	require.Equal(t, "JFIF", jfif.Identifier)

	require.Equal(t, sosOffset+4, p.ImageDataOffset())
}

func TestOpen_ExifIFD0Fields(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		order := order
		t.Run(order.String(), func(t *testing.T) {
			ifd0 := buildIFDBytes(order, 8, []fieldSpec{
				{tag: tagImageWidth, typ: TypeShort, count: 1, payload: u16Bytes(order, 100)},
				{tag: tagMake, typ: TypeASCII, count: 5, payload: []byte("Test\x00")},
				{tag: tagOrientation, typ: TypeShort, count: 1, payload: u16Bytes(order, 1)},
			}, 0)
			tiffBlock := append(tiffHeaderBytes(order, 8), ifd0...)
			app1 := buildAPP1(tiffBlock)
			data := assembleJPEG(app1)

			p, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
			require.NoError(t, err)

			tags := TagsFor(p)
			require.Equal(t, "Test", tags.Make())
			require.Equal(t, uint64(100), tags.ImageWidth())
			require.Equal(t, uint64(1), tags.Orientation())

			seg, ok := p.Segment("APP1")
			require.True(t, ok)
			exif, ok := seg.(*ExifSegment)
			require.True(t, ok)

			ifd1, err := exif.IFD(1)
			require.NoError(t, err)
			require.Nil(t, ifd1)

			ifd2, err := exif.IFD(2)
			require.NoError(t, err)
			require.Nil(t, ifd2)
		})
	}
}

func TestParser_TagValueMissingYieldsDefault(t *testing.T) {
	data := assembleJPEG(buildJFIFAPP0())
	p, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
	require.NoError(t, err)

	def := stringValue("fallback")
	got := p.TagValue("APP1", 0, tagMake, def)
	require.Equal(t, def, got)

	got = p.TagValue("APP0", 0, tagMake, def)
	require.Equal(t, def, got)
}

func TestParser_ImageDataSizeRequiresEstimateOption(t *testing.T) {
	data := assembleJPEG(buildJFIFAPP0())
	p, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
	require.NoError(t, err)

	_, err = p.ImageDataSize()
	require.ErrorIs(t, err, ErrNotLoaded)
}

func TestOpen_NotAJpeg(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}
	_, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
	require.ErrorIs(t, err, ErrNotAJpeg)
}

func TestOpen_GenericAPPnSequentialLayout(t *testing.T) {
	order := LittleEndian
	ifd0 := buildIFDBytes(order, 8, []fieldSpec{
		{tag: 0x1, typ: TypeShort, count: 1, payload: u16Bytes(order, 7)},
	}, 0)
	tiffBlock := append(tiffHeaderBytes(order, 8), ifd0...)
	app2 := buildAPPn(2, "MyVendor", tiffBlock)
	data := assembleJPEG(app2)

	p, err := Open(bytes.NewReader(data), int64(len(data)), Options{})
	require.NoError(t, err)

	seg, ok := p.Segment("APP2")
	require.True(t, ok)
	generic, ok := seg.(*GenericSegment)
	require.True(t, ok)

	ifd0Got, err := generic.IFD(0)
	require.NoError(t, err)
	require.NotNil(t, ifd0Got)

	// No linkage and the single IFD exactly fills the segment: no IFD(1).
	ifd1, err := generic.IFD(1)
	require.NoError(t, err)
	require.Nil(t, ifd1)
}
