package game

import (
	"context"
	"fmt"
)

// Key identifies a key the driver polls on the surface.
type Key int

const (
	KeyEscape Key = iota
)

// Surface is where finished frames are shown.
type Surface interface {
	IsOpen() bool
	IsKeyPressed(k Key) bool
	// Present shows pix, a width*height frame. The surface must not keep pix
	// past the call.
	Present(pix []uint32, width, height int) error
}

// Driver ticks a scene and hands each frame to a surface.
type Driver struct {
	scene   *Scene
	surface Surface
	frames  uint64
}

func NewDriver(scene *Scene, surface Surface) *Driver {
	return &Driver{scene: scene, surface: surface}
}

// Step runs one frame. It reports false without drawing once the surface is
// closed or Escape is held.
func (d *Driver) Step() (bool, error) {
	if !d.surface.IsOpen() || d.surface.IsKeyPressed(KeyEscape) {
		return false, nil
	}

	d.scene.Tick()
	buf := d.scene.Buffer()
	if err := d.surface.Present(buf.Pix, buf.Width, buf.Height); err != nil {
		return false, fmt.Errorf("present frame %d: %w", d.frames, err)
	}
	d.frames++
	return true, nil
}

// Run is the frame loop for surfaces that do not drive their own loop, such
// as an offscreen target. It calls Step until it stops, fails, or ctx is
// done; ctx is only checked between frames. Surfaces with their own loop,
// like the ebiten window, call Step from it instead.
func (d *Driver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ok, err := d.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Frames returns the number of frames presented so far.
func (d *Driver) Frames() uint64 { return d.frames }
