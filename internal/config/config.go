package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Go GFX Demo - Moving Shapes"

	// Balls
	BallCount = 10
	MaxSpeed  = 2.0

	// Colors are packed 0xAARRGGBB
	Background  = 0x00000000
	OpaqueAlpha = 0xFF000000

	// Logo parameters
	LogoColorA    = 0xFF358997
	LogoColorB    = 0xFF8ED3D4
	LogoRadius    = 20.0
	LogoDotRadius = 5
	LogoInset     = 50.0
	LogoDots      = 8
	AngleStep     = 0.05

	// Bounce cue
	SampleRate   = 44100
	ToneDuration = 40 * time.Millisecond
	ToneVolume   = 0.2
	ToneX        = 660
	ToneY        = 440
)
