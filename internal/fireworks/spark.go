package fireworks

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/physics"
)

// Spark is one fragment of an explosion. It slows down, falls and fades
// until it is removed.
type Spark struct {
	x, y       float64
	trail      *trail
	angle      float64
	speed      float64
	friction   float64
	gravity    float64
	hue        float64
	brightness float64
	alpha      float64
	decay      float64
}

// NewSpark creates a spark at (x, y) with a random heading and decay rate.
func NewSpark(x, y float64, rng *rand.Rand) *Spark {
	return &Spark{
		x:          x,
		y:          y,
		trail:      newTrail(config.SparkTrailLength, Point{x, y}),
		angle:      random(rng, 0, 2*math.Pi),
		speed:      random(rng, config.SparkSpeedLo, config.SparkSpeedHi),
		friction:   config.SparkFriction,
		gravity:    config.SparkGravity,
		hue:        random(rng, 0, 360),
		brightness: random(rng, config.SparkBrightnessLo, config.SparkBrightnessHi),
		alpha:      1,
		decay:      random(rng, config.SparkDecayLo, config.SparkDecayHi),
	}
}

// Advance moves the spark one frame and reports whether it has faded out.
// The move is applied even on the frame the spark expires.
func (s *Spark) Advance() (expired bool) {
	s.trail.push(Point{s.x, s.y})

	s.speed *= s.friction
	dx, dy := physics.Step(s.angle, s.speed)
	s.x += dx
	s.y += dy + s.gravity

	s.alpha -= s.decay
	return s.alpha <= s.decay
}

func (s *Spark) Draw(dst Surface) {
	dst.Stroke(s.trail.oldest(), Point{s.x, s.y}, HSLA{
		Hue:        s.hue,
		Saturation: 100,
		Lightness:  s.brightness,
		Alpha:      s.alpha,
	})
}

func (s *Spark) Position() Point  { return Point{s.x, s.y} }
func (s *Spark) Opacity() float64 { return s.alpha }
func (s *Spark) Decay() float64   { return s.decay }
func (s *Spark) Trail() []Point   { return s.trail.snapshot() }
