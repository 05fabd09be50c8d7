package game

import (
	"math"

	"github.com/iburimskiy/gfx-demo/internal/config"
	"github.com/iburimskiy/gfx-demo/internal/raster"
	"seehuhn.de/go/geom/vec"
)

// LogoDots returns the centers of the overlay dots for the given rotation.
// The dots sit evenly spaced on a circle anchored LogoInset pixels in from
// the bottom-right corner, dot i at angle + i*2π/LogoDots.
func LogoDots(width, height int, angle float64) [config.LogoDots]vec.Vec2 {
	center := vec.Vec2{
		X: float64(width) - config.LogoInset,
		Y: float64(height) - config.LogoInset,
	}

	var dots [config.LogoDots]vec.Vec2
	for i := range dots {
		theta := angle + float64(i)*(2*math.Pi/config.LogoDots)
		dir := vec.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
		dots[i] = center.Add(dir.Mul(config.LogoRadius))
	}
	return dots
}

// LogoColor alternates the two palette colors by dot index.
func LogoColor(i int) uint32 {
	if i%2 == 0 {
		return config.LogoColorA
	}
	return config.LogoColorB
}

func drawLogo(buf *raster.Buffer, angle float64) {
	for i, dot := range LogoDots(buf.Width, buf.Height, angle) {
		x := int(math.Floor(dot.X))
		y := int(math.Floor(dot.Y))
		buf.FillCircle(x, y, config.LogoDotRadius, LogoColor(i))
	}
}
