package fireworks

import (
	"math/rand/v2"

	"github.com/iburimskiy/fireworks/internal/audio"
)

type surfaceOp struct {
	kind     string
	additive bool
	from, to Point
	color    HSLA
	alpha    float64
}

// recordingSurface logs every call so tests can assert on draw order.
type recordingSurface struct {
	additive bool
	ops      []surfaceOp
}

func (s *recordingSurface) Fade(alpha float64) {
	s.additive = false
	s.ops = append(s.ops, surfaceOp{kind: "fade", alpha: alpha})
}

func (s *recordingSurface) Additive() {
	s.additive = true
	s.ops = append(s.ops, surfaceOp{kind: "additive"})
}

func (s *recordingSurface) Stroke(from, to Point, c HSLA) {
	s.ops = append(s.ops, surfaceOp{kind: "stroke", additive: s.additive, from: from, to: to, color: c})
}

func (s *recordingSurface) strokes() []surfaceOp {
	var out []surfaceOp
	for _, op := range s.ops {
		if op.kind == "stroke" {
			out = append(out, op)
		}
	}
	return out
}

type cueCounter struct {
	counts map[audio.Cue]int
}

func (c *cueCounter) Play(cue audio.Cue) {
	if c.counts == nil {
		c.counts = map[audio.Cue]int{}
	}
	c.counts[cue]++
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
