package raster

// Line draws a one pixel wide line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm. Both endpoints are plotted, so a zero-length line
// sets exactly one pixel.
func (b *Buffer) Line(x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for x != x1 || y != y1 {
		b.Plot(x, y, c)
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	b.Plot(x1, y1, c)
}

// FillCircle fills every pixel whose offset (ox, oy) from the center
// satisfies ox*ox+oy*oy <= r*r. Each quadrant is clipped on its own, so a
// circle hanging off an edge still draws its visible part.
func (b *Buffer) FillCircle(cx, cy, r int, c uint32) {
	if r < 0 {
		return
	}
	r2 := r * r
	for oy := 0; oy <= r; oy++ {
		for ox := 0; ox <= r; ox++ {
			if ox*ox+oy*oy > r2 {
				// ox only grows along the row
				break
			}
			b.Plot(cx+ox, cy+oy, c)
			b.Plot(cx-ox, cy+oy, c)
			b.Plot(cx+ox, cy-oy, c)
			b.Plot(cx-ox, cy-oy, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
