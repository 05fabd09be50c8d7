package sound_test

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/iburimskiy/gfx-demo/internal/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := sound.Tone(rate, 440, 40*time.Millisecond, 0.2)
	require.NoError(t, err)
	samples := drain(tone)

	require.Len(t, samples, rate.N(40*time.Millisecond))

	peak := 0.0
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s[0]), 0.2+1e-9)
		assert.LessOrEqual(t, math.Abs(s[1]), 0.2+1e-9)
		peak = math.Max(peak, math.Abs(s[0]))
	}
	assert.Greater(t, peak, 0.1)

	// The envelope has decayed by the end.
	last := samples[len(samples)-1]
	assert.Less(t, math.Abs(last[0]), 0.01)
}

func TestToneZeroDuration(t *testing.T) {
	tone, err := sound.Tone(beep.SampleRate(44100), 440, 0, 0.2)
	require.NoError(t, err)
	assert.Empty(t, drain(tone))
}

func TestToneAboveNyquist(t *testing.T) {
	_, err := sound.Tone(beep.SampleRate(44100), 44100, 40*time.Millisecond, 0.2)
	assert.Error(t, err)
}

func TestClickWithoutInit(t *testing.T) {
	c := sound.New(beep.SampleRate(44100), 40*time.Millisecond, 0.2)
	assert.NotPanics(t, func() {
		c.Click(660)
		c.Close()
	})
}
