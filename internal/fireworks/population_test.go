package fireworks

import (
	"testing"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
)

func newTestPopulation() (*Population, *cueCounter) {
	cues := &cueCounter{}
	return NewPopulation(Bounds{Width: 1000, Height: 600}, newTestRand(), cues), cues
}

func TestTickEmptyPopulation(t *testing.T) {
	p, _ := newTestPopulation()
	s := &recordingSurface{}
	p.Tick(s)
	p.Tick(s)
	if len(s.ops) != 0 {
		t.Errorf("empty tick drew %d ops", len(s.ops))
	}
}

func TestSpawnBurst(t *testing.T) {
	p, _ := newTestPopulation()
	p.SpawnBurst(120, 340, config.BurstCount)

	if len(p.Sparks()) != 30 {
		t.Fatalf("sparks = %d, want 30", len(p.Sparks()))
	}
	for i, sp := range p.Sparks() {
		if sp.Position() != (Point{120, 340}) {
			t.Errorf("spark %d at %v, want {120 340}", i, sp.Position())
		}
	}
}

func TestLaunchPlaysLaunchCue(t *testing.T) {
	p, cues := newTestPopulation()
	p.Launch(0, 0, 10, 10)
	p.Launch(0, 0, 20, 20)
	if cues.counts[audio.CueLaunch] != 2 {
		t.Errorf("launch cues = %d, want 2", cues.counts[audio.CueLaunch])
	}
}

func TestZeroDistanceProjectileBursts(t *testing.T) {
	p, cues := newTestPopulation()
	p.Launch(500, 600, 500, 600)

	p.Tick(&recordingSurface{})

	if len(p.Projectiles()) != 0 {
		t.Errorf("projectiles = %d, want 0 after one update", len(p.Projectiles()))
	}
	if len(p.Sparks()) != config.BurstCount {
		t.Fatalf("sparks = %d, want %d", len(p.Sparks()), config.BurstCount)
	}
	for i, sp := range p.Sparks() {
		if sp.Trail()[len(sp.Trail())-1] != (Point{500, 600}) {
			t.Errorf("spark %d not born at {500 600}: trail %v", i, sp.Trail())
		}
	}
	if cues.counts[audio.CueExplode] != 1 {
		t.Errorf("explode cues = %d, want 1", cues.counts[audio.CueExplode])
	}

	p.Tick(&recordingSurface{})
	if len(p.Sparks()) != config.BurstCount {
		t.Errorf("a second tick should not burst again, sparks = %d", len(p.Sparks()))
	}
	if cues.counts[audio.CueExplode] != 1 {
		t.Errorf("explode cues = %d after second tick, want 1", cues.counts[audio.CueExplode])
	}
}

func TestTickDrawsBeforeAdvance(t *testing.T) {
	p, _ := newTestPopulation()
	fw := p.Launch(500, 600, 500, 0)
	start := fw.Position()

	s := &recordingSurface{}
	p.Tick(s)

	strokes := s.strokes()
	if len(strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(strokes))
	}
	if strokes[0].to != start {
		t.Errorf("drawn at %v, want pre-advance position %v", strokes[0].to, start)
	}
	if fw.Position() == start {
		t.Error("projectile did not advance")
	}
}

func TestTickProjectilesBeforeSparks(t *testing.T) {
	p, _ := newTestPopulation()
	p.SpawnBurst(10, 10, 2)
	p.Launch(500, 600, 500, 0)
	p.Launch(500, 600, 100, 0)

	s := &recordingSurface{}
	p.Tick(s)

	strokes := s.strokes()
	if len(strokes) != 4 {
		t.Fatalf("strokes = %d, want 4", len(strokes))
	}
	// Projectiles are drawn from their launch point, sparks from the burst.
	for i, op := range strokes[:2] {
		if op.to != (Point{500, 600}) {
			t.Errorf("stroke %d = %v, want a projectile first", i, op.to)
		}
	}
	for i, op := range strokes[2:] {
		if op.to != (Point{10, 10}) {
			t.Errorf("stroke %d = %v, want a spark", i+2, op.to)
		}
	}
}

func TestTickRemovesWithoutSkipping(t *testing.T) {
	p, _ := newTestPopulation()
	p.Launch(0, 0, 0, 0)
	p.Launch(0, 0, 1000, 0)
	p.Launch(0, 0, 0, 0)
	p.Launch(0, 0, 900, 0)

	s := &recordingSurface{}
	p.Tick(s)

	if len(p.Projectiles()) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(p.Projectiles()))
	}
	if len(p.Sparks()) != 2*config.BurstCount {
		t.Errorf("sparks = %d, want %d", len(p.Sparks()), 2*config.BurstCount)
	}
	// Every projectile drawn once plus every spark born this tick.
	if got := len(s.strokes()); got != 4+2*config.BurstCount {
		t.Errorf("strokes = %d, want %d", got, 4+2*config.BurstCount)
	}
	for _, fw := range p.Projectiles() {
		if fw.Position().X == 0 {
			t.Errorf("surviving projectile at %v was not advanced", fw.Position())
		}
	}
}

func TestSparksExpireEventually(t *testing.T) {
	p, _ := newTestPopulation()
	p.SpawnBurst(0, 0, config.BurstCount)
	s := &recordingSurface{}
	for range 100 {
		p.Tick(s)
	}
	if len(p.Sparks()) != 0 {
		t.Errorf("sparks = %d after 100 ticks, want 0", len(p.Sparks()))
	}
}

func TestFrameFadesThenDrawsAdditive(t *testing.T) {
	p, _ := newTestPopulation()
	p.Launch(500, 600, 500, 0)
	p.SpawnBurst(5, 5, 3)

	s := &recordingSurface{}
	p.Frame(s)

	if len(s.ops) < 2 || s.ops[0].kind != "fade" || s.ops[1].kind != "additive" {
		t.Fatalf("frame should start with fade then additive, got %v", s.ops)
	}
	if s.ops[0].alpha != config.FadeAlpha {
		t.Errorf("fade alpha = %v, want %v", s.ops[0].alpha, config.FadeAlpha)
	}
	for i, op := range s.strokes() {
		if !op.additive {
			t.Errorf("stroke %d drawn outside additive mode", i)
		}
	}
}

func TestFrameAmbientLaunchRate(t *testing.T) {
	p, cues := newTestPopulation()
	s := &recordingSurface{}
	const frames = 20000
	for range frames {
		p.Frame(s)
	}
	launches := cues.counts[audio.CueLaunch]
	rate := float64(launches) / frames
	if rate < 0.04 || rate > 0.06 {
		t.Errorf("ambient launch rate = %v, want about %v", rate, config.AmbientSpawnChance)
	}
}

func TestLaunchAmbientTarget(t *testing.T) {
	p, _ := newTestPopulation()
	for range 500 {
		fw := p.LaunchAmbient()
		if fw.originX != 500 || fw.originY != 600 {
			t.Fatalf("origin = (%v, %v), want bottom-center", fw.originX, fw.originY)
		}
		tgt := fw.Target()
		if tgt.X < 0 || tgt.X >= 1000 || tgt.Y < 0 || tgt.Y >= 300 {
			t.Fatalf("target %v outside upper half", tgt)
		}
	}
}

func TestMessageTargetBand(t *testing.T) {
	p, _ := newTestPopulation()
	for range 500 {
		tgt := p.MessageTarget()
		if tgt.X < 200 || tgt.X > 800 || tgt.Y < 100 || tgt.Y > 300 {
			t.Fatalf("target %v outside message band", tgt)
		}
	}
}
