package game

import (
	"github.com/iburimskiy/gfx-demo/internal/config"
	"github.com/iburimskiy/gfx-demo/internal/raster"
)

// Scene owns the balls, the logo rotation and the frame buffer they are
// drawn into. It is not safe for concurrent use.
type Scene struct {
	buf   *raster.Buffer
	balls []Ball
	angle float64
	rng   Rand

	onBounce func(Bounce)
}

// Option configures a Scene.
type Option func(*Scene)

// WithBalls replaces the randomly placed balls with a copy of balls.
func WithBalls(balls []Ball) Option {
	return func(s *Scene) {
		s.balls = append([]Ball(nil), balls...)
	}
}

// WithBounceHandler registers fn to be called once per frame in which at
// least one ball hit a wall, with the union of the axes that bounced.
func WithBounceHandler(fn func(Bounce)) Option {
	return func(s *Scene) {
		s.onBounce = fn
	}
}

// NewScene creates a width x height scene with count randomly placed balls.
func NewScene(width, height, count int, rng Rand, opts ...Option) *Scene {
	s := &Scene{
		buf: raster.NewBuffer(width, height),
		rng: rng,
	}
	s.balls = make([]Ball, count)
	for i := range s.balls {
		s.balls[i] = NewBall(rng, width, height)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick advances the scene by one frame and redraws the buffer.
func (s *Scene) Tick() {
	w, h := s.buf.Width, s.buf.Height

	// Clear
	s.buf.Clear(config.Background)

	// Move and draw the balls
	var bounced Bounce
	for i := range s.balls {
		b := &s.balls[i]
		bounced |= b.Update(w, h)
		x, y := b.Pixel()
		s.buf.Plot(x, y, b.Color)
	}

	// Connect every pair, each line in a fresh color
	for i := 0; i < len(s.balls); i++ {
		x0, y0 := s.balls[i].Pixel()
		for j := i + 1; j < len(s.balls); j++ {
			x1, y1 := s.balls[j].Pixel()
			s.buf.Line(x0, y0, x1, y1, OpaqueColor(s.rng))
		}
	}

	drawLogo(s.buf, s.angle)
	s.angle += config.AngleStep

	if bounced != 0 && s.onBounce != nil {
		s.onBounce(bounced)
	}
}

// Buffer returns the frame drawn by the last Tick.
func (s *Scene) Buffer() *raster.Buffer { return s.buf }

// Balls returns the live ball slice.
func (s *Scene) Balls() []Ball { return s.balls }

// Angle returns the logo rotation that the next Tick will draw.
func (s *Scene) Angle() float64 { return s.angle }

func (s *Scene) Size() (int, int) { return s.buf.Width, s.buf.Height }
