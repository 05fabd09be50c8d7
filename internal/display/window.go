// Package display shows frames in an ebiten window.
package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/gfx-demo/internal/game"
	"github.com/iburimskiy/gfx-demo/internal/raster"
)

// SurfaceCreationError reports that the window could not be brought up.
type SurfaceCreationError struct {
	Err error
}

func (e *SurfaceCreationError) Error() string {
	return fmt.Sprintf("display: create window: %v", e.Err)
}

func (e *SurfaceCreationError) Unwrap() error { return e.Err }

// PresentError reports a frame whose size does not match the window.
type PresentError struct {
	Width, Height int // window
	GotWidth      int
	GotHeight     int
	GotLen        int
}

func (e *PresentError) Error() string {
	return fmt.Sprintf("display: frame %dx%d with %d pixels does not fit %dx%d window",
		e.GotWidth, e.GotHeight, e.GotLen, e.Width, e.Height)
}

// Window is a fixed-size ebiten window implementing game.Surface.
type Window struct {
	title         string
	width, height int

	step func() (bool, error)

	rgba      []byte
	presented bool
	started   bool
}

var _ game.Surface = (*Window)(nil)

func New(title string, width, height int) *Window {
	return &Window{
		title:  title,
		width:  width,
		height: height,
		rgba:   make([]byte, 4*width*height),
	}
}

func (w *Window) IsOpen() bool {
	return !ebiten.IsWindowBeingClosed()
}

func (w *Window) IsKeyPressed(k game.Key) bool {
	switch k {
	case game.KeyEscape:
		return ebiten.IsKeyPressed(ebiten.KeyEscape)
	}
	return false
}

// Present copies pix into the staging image shown by the next Draw.
func (w *Window) Present(pix []uint32, width, height int) error {
	if width != w.width || height != w.height || len(pix) != width*height {
		return &PresentError{
			Width:     w.width,
			Height:    w.height,
			GotWidth:  width,
			GotHeight: height,
			GotLen:    len(pix),
		}
	}
	raster.PackRGBA(w.rgba, pix)
	w.presented = true
	return nil
}

// Run opens the window and calls step once per ebiten tick until step
// reports false or fails. It blocks until the window is gone.
func (w *Window) Run(step func() (bool, error)) error {
	w.step = step

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(w)
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	if !w.started {
		return &SurfaceCreationError{Err: err}
	}
	return err
}

func (w *Window) Update() error {
	w.started = true
	ok, err := w.step()
	if err != nil {
		return err
	}
	if !ok {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if !w.presented {
		return
	}
	screen.WritePixels(w.rgba)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
