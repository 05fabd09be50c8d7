// Package raster draws into a fixed-size buffer of packed 0xAARRGGBB pixels.
//
// All writes are clipped against the buffer bounds. Coordinates outside the
// buffer are dropped without error, so callers may pass off-screen points.
package raster

// Buffer is a frame of Width*Height packed pixels in row-major order.
type Buffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewBuffer allocates a cleared buffer. The length of Pix never changes.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Buffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c uint32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Plot sets the pixel at (x, y) if it is inside the buffer.
func (b *Buffer) Plot(x, y int, c uint32) {
	if !b.In(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if !b.In(x, y) {
		return 0
	}
	return b.Pix[y*b.Width+x]
}
