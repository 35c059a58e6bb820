package fireworks

import "github.com/iburimskiy/fireworks/internal/audio"

// HSLA is a stroke color. Hue is in degrees, Saturation and Lightness are
// percentages and Alpha is in [0,1].
type HSLA struct {
	Hue, Saturation, Lightness, Alpha float64
}

// Surface is the raster the simulation draws on. Content persists between
// frames; only Fade removes it.
type Surface interface {
	// Fade paints a translucent black rectangle over the whole surface in
	// erase mode, pulling existing pixels toward transparency.
	Fade(alpha float64)
	// Additive switches subsequent strokes to lighter compositing.
	Additive()
	// Stroke draws a line segment.
	Stroke(from, to Point, c HSLA)
}

// Cues receives the sound cues fired by projectiles.
type Cues interface {
	Play(cue audio.Cue)
}

// Bounds is the size of the drawing surface.
type Bounds struct {
	Width, Height float64
}
