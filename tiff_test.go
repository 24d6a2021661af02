package jpeg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTIFFHeader_BothByteOrders(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		buf := tiffHeaderBytes(order, 42)
		h, err := parseTIFFHeader(bytes.NewReader(buf), 0)
		require.NoError(t, err)
		require.Equal(t, order, h.ByteOrder)
		require.Equal(t, uint32(42), h.IFD0Offset)
	}
}

func TestParseTIFFHeader_BadBOM(t *testing.T) {
	buf := tiffHeaderBytes(LittleEndian, 8)
	buf[0], buf[1] = 'X', 'X'
	_, err := parseTIFFHeader(bytes.NewReader(buf), 0)
	require.ErrorIs(t, err, ErrInvalidTIFFHeader)
}

func TestParseTIFFHeader_BadMagic(t *testing.T) {
	buf := tiffHeaderBytes(LittleEndian, 8)
	buf[2], buf[3] = 0x00, 0x00
	_, err := parseTIFFHeader(bytes.NewReader(buf), 0)
	require.ErrorIs(t, err, ErrInvalidTIFFHeader)
}

func TestParseTIFFHeader_Anchored(t *testing.T) {
	prefix := []byte{0xAA, 0xBB, 0xCC}
	buf := append(append([]byte{}, prefix...), tiffHeaderBytes(BigEndian, 8)...)
	h, err := parseTIFFHeader(bytes.NewReader(buf), int64(len(prefix)))
	require.NoError(t, err)
	require.Equal(t, int64(len(prefix)), h.AbsoluteOffset)
}
