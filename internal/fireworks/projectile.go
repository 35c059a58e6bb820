package fireworks

import (
	"math/rand/v2"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/physics"
)

// Projectile is a launched firework travelling from its origin toward a
// target, where it bursts into sparks.
type Projectile struct {
	x, y             float64
	originX, originY float64
	targetX, targetY float64
	distanceToTarget float64
	distanceTraveled float64
	trail            *trail
	angle            float64
	speed            float64
	acceleration     float64
	brightness       float64
}

// NewProjectile creates a projectile at (sx, sy) aimed at (tx, ty).
func NewProjectile(sx, sy, tx, ty float64, rng *rand.Rand) *Projectile {
	return &Projectile{
		x:                sx,
		y:                sy,
		originX:          sx,
		originY:          sy,
		targetX:          tx,
		targetY:          ty,
		distanceToTarget: physics.Distance(sx, sy, tx, ty),
		trail:            newTrail(config.ProjectileTrailLength, Point{sx, sy}),
		angle:            physics.AngleTo(sx, sy, tx, ty),
		speed:            config.ProjectileInitialSpeed,
		acceleration:     config.ProjectileAcceleration,
		brightness:       random(rng, config.ProjectileBrightnessLo, config.ProjectileBrightnessHi),
	}
}

// Advance moves the projectile one frame and reports whether it reached its
// target. On arrival the position is left where it was.
func (p *Projectile) Advance() (arrived bool) {
	p.trail.push(Point{p.x, p.y})

	p.speed *= p.acceleration
	dx, dy := physics.Step(p.angle, p.speed)

	p.distanceTraveled = physics.Distance(p.originX, p.originY, p.x, p.y)
	if p.distanceTraveled >= p.distanceToTarget {
		return true
	}
	p.x += dx
	p.y += dy
	return false
}

// Draw strokes from the oldest trail point to the current position. The hue
// is picked fresh on every call so the streak flickers.
func (p *Projectile) Draw(s Surface, rng *rand.Rand) {
	s.Stroke(p.trail.oldest(), Point{p.x, p.y}, HSLA{
		Hue:        random(rng, 0, 360),
		Saturation: 100,
		Lightness:  p.brightness,
		Alpha:      1,
	})
}

func (p *Projectile) Position() Point           { return Point{p.x, p.y} }
func (p *Projectile) Target() Point             { return Point{p.targetX, p.targetY} }
func (p *Projectile) DistanceTraveled() float64 { return p.distanceTraveled }
func (p *Projectile) DistanceToTarget() float64 { return p.distanceToTarget }

// Trail returns the retained positions, newest first.
func (p *Projectile) Trail() []Point { return p.trail.snapshot() }
