package game

import (
	"github.com/iburimskiy/gfx-demo/internal/config"
	"seehuhn.de/go/geom/vec"
)

// Bounce records which velocity components were reflected in one update.
type Bounce uint8

const (
	BounceX Bounce = 1 << iota
	BounceY
)

// Has reports whether all bits of axis are set.
func (b Bounce) Has(axis Bounce) bool { return b&axis == axis }

// Ball is a single moving point with its own color.
type Ball struct {
	Pos   vec.Vec2
	Vel   vec.Vec2
	Color uint32
}

// NewBall places a ball uniformly inside a width x height area with a
// velocity in [-MaxSpeed, MaxSpeed) on each axis.
func NewBall(r Rand, width, height int) Ball {
	return Ball{
		Pos: vec.Vec2{
			X: Uniform(r, 0, float64(width)),
			Y: Uniform(r, 0, float64(height)),
		},
		Vel: vec.Vec2{
			X: Uniform(r, -config.MaxSpeed, config.MaxSpeed),
			Y: Uniform(r, -config.MaxSpeed, config.MaxSpeed),
		},
		Color: OpaqueColor(r),
	}
}

// Update moves the ball by one velocity step, then reverses each velocity
// component whose new coordinate lies outside [0, dimension).
//
// The check happens after the move, so a ball may sit up to one step past a
// wall for a frame before heading back.
func (b *Ball) Update(width, height int) Bounce {
	b.Pos = b.Pos.Add(b.Vel)

	var bounced Bounce
	if b.Pos.X < 0 || b.Pos.X >= float64(width) {
		b.Vel.X = -b.Vel.X
		bounced |= BounceX
	}
	if b.Pos.Y < 0 || b.Pos.Y >= float64(height) {
		b.Vel.Y = -b.Vel.Y
		bounced |= BounceY
	}
	return bounced
}

// Pixel returns the screen coordinate of the ball, truncated toward zero.
// A ball less than one pixel past the top or left wall still lands on row or
// column 0; further out it goes negative and is clipped.
func (b Ball) Pixel() (int, int) {
	return int(b.Pos.X), int(b.Pos.Y)
}
