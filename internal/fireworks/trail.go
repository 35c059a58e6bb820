package fireworks

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

// trail is a fixed-size ring of past positions. Pushing a new position
// evicts the oldest one, so the length never changes after construction.
type trail struct {
	buffer    []Point
	nextIndex int
}

// newTrail returns a ring of n copies of p.
func newTrail(n int, p Point) *trail {
	t := &trail{buffer: make([]Point, n)}
	for i := range t.buffer {
		t.buffer[i] = p
	}
	return t
}

func (t *trail) push(p Point) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
}

// oldest returns the entry that the next push will evict.
func (t *trail) oldest() Point {
	return t.buffer[t.nextIndex]
}

func (t *trail) len() int { return len(t.buffer) }

// snapshot returns the ring contents, newest first.
func (t *trail) snapshot() []Point {
	out := make([]Point, 0, len(t.buffer))
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < len(t.buffer); i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	return out
}
