package jpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectMarker_KnownTable(t *testing.T) {
	mk, err := detectMarker(sigSOS)
	require.NoError(t, err)
	require.Equal(t, "SOS", mk.Name)
	require.False(t, mk.IsMask)
}

func TestDetectMarker_MaskedFamilies(t *testing.T) {
	mk, err := detectMarker(0xFFE3)
	require.NoError(t, err)
	require.Equal(t, "APP3", mk.Name)
	require.False(t, mk.IsMask)

	mk, err = detectMarker(0xFFD2)
	require.NoError(t, err)
	require.Equal(t, "RST2", mk.Name)
}

func TestDetectMarker_Unknown(t *testing.T) {
	mk, err := detectMarker(0xFFBB)
	require.NoError(t, err)
	require.Contains(t, mk.Name, "UNK")
}

func TestDetectMarker_InvalidHighByte(t *testing.T) {
	_, err := detectMarker(0x1234)
	require.ErrorIs(t, err, ErrInvalidMarker)
}
