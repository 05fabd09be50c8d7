package raster

// PackRGBA converts packed 0xAARRGGBB pixels into 8-bit R, G, B, A bytes,
// the layout expected by ebiten's WritePixels. dst must hold 4*len(pix)
// bytes.
func PackRGBA(dst []byte, pix []uint32) {
	if len(pix) == 0 {
		return
	}
	_ = dst[4*len(pix)-1]
	for i, p := range pix {
		j := i * 4
		dst[j] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = byte(p >> 24)
	}
}
