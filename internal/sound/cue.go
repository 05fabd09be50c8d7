// Package sound plays short synthesized clicks through the beep speaker.
package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

// Cue plays fixed-length tones. Until Init succeeds every Click is a no-op,
// so a machine without audio runs silent.
type Cue struct {
	rate     beep.SampleRate
	duration time.Duration
	volume   float64
	ready    bool
}

func New(rate beep.SampleRate, duration time.Duration, volume float64) *Cue {
	return &Cue{
		rate:     rate,
		duration: duration,
		volume:   volume,
	}
}

// Init opens the speaker with a 50ms buffer.
func (c *Cue) Init() error {
	if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return nil
}

// Click plays one tone at freq Hz. It returns immediately; mixing happens on
// the speaker goroutine.
func (c *Cue) Click(freq int) {
	if !c.ready {
		return
	}
	tone, err := Tone(c.rate, freq, c.duration, c.volume)
	if err != nil {
		log.Printf("Bounce tone: %v", err)
		return
	}
	speaker.Play(tone)
}

func (c *Cue) Close() {
	if !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}

// Tone is a sine at freq Hz scaled to volume and fading linearly to silence
// over d. It fails if freq is too high for rate.
func Tone(rate beep.SampleRate, freq int, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SinTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %d Hz: %w", freq, err)
	}
	n := rate.N(d)
	gain := &effects.Gain{Streamer: sine, Gain: volume - 1}
	return beep.Take(n, fade(gain, n)), nil
}

// fade scales s by a ramp from 1 down to 0 over n samples.
func fade(s beep.Streamer, n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		k, ok := s.Stream(samples)
		for i := range samples[:k] {
			env := clamp01(1 - float64(pos)/float64(n))
			samples[i][0] *= env
			samples[i][1] *= env
			pos++
		}
		return k, ok
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
