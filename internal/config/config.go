package config

import "time"

const (
	// Fallback canvas size when the monitor size is unavailable
	DefaultWidth  = 1280
	DefaultHeight = 720

	TPS = 60

	// Fade pass
	FadeAlpha   = 0.5
	StrokeWidth = 1

	// Projectile
	ProjectileTrailLength  = 3
	ProjectileInitialSpeed = 2
	ProjectileAcceleration = 1.05
	ProjectileBrightnessLo = 50
	ProjectileBrightnessHi = 70

	// Spark
	SparkTrailLength  = 5
	SparkSpeedLo      = 1
	SparkSpeedHi      = 10
	SparkFriction     = 0.95
	SparkGravity      = 1
	SparkBrightnessLo = 50
	SparkBrightnessHi = 80
	SparkDecayLo      = 0.015
	SparkDecayHi      = 0.03
	BurstCount        = 30

	// Spawning
	AmbientSpawnChance  = 0.05
	MessageSpawnCount   = 5
	MessageSpawnStagger = 200 * time.Millisecond
	MessageMarginX      = 200
	MessageMinTargetY   = 100

	// Overlay message
	OverlayHold     = 4 * time.Second
	OverlayFadeIn   = 500 * time.Millisecond
	OverlayFadeOut  = 500 * time.Millisecond
	MaxMessageRunes = 64

	// Sound
	SoundAsset        = "assets/firework.wav"
	ExplodeSoundAsset = "assets/explode.wav"
	SoundVolume       = 0.5

	// Button dimensions
	ButtonWidth  = 96
	ButtonHeight = 28
	ButtonGap    = 8
	ButtonY      = 12

	// Text field
	FieldWidth  = 320
	FieldHeight = 28
)
