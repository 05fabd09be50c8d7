package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentStagesRGBA(t *testing.T) {
	w := New("test", 2, 1)
	require.False(t, w.presented)

	require.NoError(t, w.Present([]uint32{0xFF112233, 0x80A0B0C0}, 2, 1))
	assert.True(t, w.presented)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0xFF, 0xA0, 0xB0, 0xC0, 0x80}, w.rgba)
}
