package fireworks

import (
	"math/rand/v2"
	"slices"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
)

// Population owns every live projectile and spark. It is not safe for
// concurrent use; all calls are expected from the frame loop.
type Population struct {
	bounds      Bounds
	rng         *rand.Rand
	cues        Cues
	projectiles []*Projectile
	sparks      []*Spark
}

func NewPopulation(bounds Bounds, rng *rand.Rand, cues Cues) *Population {
	return &Population{
		bounds: bounds,
		rng:    rng,
		cues:   cues,
	}
}

// Launch adds a projectile flying from (sx, sy) to (tx, ty).
func (p *Population) Launch(sx, sy, tx, ty float64) *Projectile {
	fw := NewProjectile(sx, sy, tx, ty, p.rng)
	p.projectiles = append(p.projectiles, fw)
	p.cues.Play(audio.CueLaunch)
	return fw
}

// SpawnBurst adds count sparks at (x, y).
func (p *Population) SpawnBurst(x, y float64, count int) {
	for range count {
		p.sparks = append(p.sparks, NewSpark(x, y, p.rng))
	}
}

// Frame runs one scheduler tick: the fade pass, every entity's draw and
// advance, then the ambient launch roll.
func (p *Population) Frame(s Surface) {
	BeginFrame(s)
	p.Tick(s)
	if p.rng.Float64() < config.AmbientSpawnChance {
		p.LaunchAmbient()
	}
}

// BeginFrame fades the previous frame and switches to additive drawing.
// The fade must come first.
func BeginFrame(s Surface) {
	s.Fade(config.FadeAlpha)
	s.Additive()
}

// Tick draws then advances every projectile, then every spark. Iteration
// runs by descending index so removals never skip an entity. Sparks born
// from an arrival in this tick are drawn and advanced in the same tick.
func (p *Population) Tick(s Surface) {
	for i := len(p.projectiles) - 1; i >= 0; i-- {
		fw := p.projectiles[i]
		fw.Draw(s, p.rng)
		if fw.Advance() {
			p.SpawnBurst(fw.targetX, fw.targetY, config.BurstCount)
			p.cues.Play(audio.CueExplode)
			p.projectiles = slices.Delete(p.projectiles, i, i+1)
		}
	}

	for i := len(p.sparks) - 1; i >= 0; i-- {
		sp := p.sparks[i]
		sp.Draw(s)
		if sp.Advance() {
			p.sparks = slices.Delete(p.sparks, i, i+1)
		}
	}
}

// LaunchAmbient fires from bottom-center to a random point in the upper half.
func (p *Population) LaunchAmbient() *Projectile {
	return p.Launch(
		p.bounds.Width/2,
		p.bounds.Height,
		random(p.rng, 0, p.bounds.Width),
		random(p.rng, 0, p.bounds.Height/2),
	)
}

// MessageTarget picks a target inside the central band used by message
// launches.
func (p *Population) MessageTarget() Point {
	return Point{
		X: random(p.rng, config.MessageMarginX, p.bounds.Width-config.MessageMarginX),
		Y: random(p.rng, config.MessageMinTargetY, p.bounds.Height/2),
	}
}

// LaunchTo fires from bottom-center to the given target.
func (p *Population) LaunchTo(target Point) *Projectile {
	return p.Launch(p.bounds.Width/2, p.bounds.Height, target.X, target.Y)
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (p *Population) Projectiles() []*Projectile { return p.projectiles }

// Sparks returns the live sparks. The slice must not be modified.
func (p *Population) Sparks() []*Spark { return p.sparks }

func random(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
