package game_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iburimskiy/gfx-demo/internal/config"
	"github.com/iburimskiy/gfx-demo/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	closed   bool
	escAfter int // Escape reads as held once this many frames were presented
	err      error

	presents int
	width    int
	height   int
	length   int
}

func (s *fakeSurface) IsOpen() bool { return !s.closed }

func (s *fakeSurface) IsKeyPressed(k game.Key) bool {
	return k == game.KeyEscape && s.escAfter >= 0 && s.presents >= s.escAfter
}

func (s *fakeSurface) Present(pix []uint32, width, height int) error {
	if s.err != nil {
		return s.err
	}
	s.presents++
	s.width, s.height, s.length = width, height, len(pix)
	return nil
}

func TestDriverRunUntilEscape(t *testing.T) {
	scene := game.NewScene(width, height, config.BallCount, newRand())
	surface := &fakeSurface{escAfter: 3}
	d := game.NewDriver(scene, surface)

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, uint64(3), d.Frames())
	assert.Equal(t, 3, surface.presents)
	assert.Equal(t, width, surface.width)
	assert.Equal(t, height, surface.height)
	assert.Equal(t, width*height, surface.length)
	assert.InDelta(t, 3*config.AngleStep, scene.Angle(), 1e-12)
}

func TestDriverClosedSurface(t *testing.T) {
	scene := game.NewScene(width, height, config.BallCount, newRand())
	surface := &fakeSurface{closed: true, escAfter: -1}
	d := game.NewDriver(scene, surface)

	ok, err := d.Step()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, d.Frames())
	assert.Zero(t, scene.Angle(), "scene must not tick once the surface is closed")
}

func TestDriverPresentError(t *testing.T) {
	boom := errors.New("boom")
	scene := game.NewScene(width, height, config.BallCount, newRand())
	d := game.NewDriver(scene, &fakeSurface{escAfter: -1, err: boom})

	err := d.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "present frame 0")
	assert.Zero(t, d.Frames())
}

func TestDriverContextCancel(t *testing.T) {
	scene := game.NewScene(width, height, config.BallCount, newRand())
	d := game.NewDriver(scene, &fakeSurface{escAfter: -1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
	assert.Zero(t, d.Frames())
}
