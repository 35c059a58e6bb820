// Package audio plays the fire-and-forget sound cues of the show.
package audio

import "log"

// Cue names a logical sound event.
type Cue int

const (
	CueLaunch Cue = iota
	CueExplode
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// Backend produces the actual sound for a cue.
type Backend interface {
	Play(cue Cue) error
}

// Cues gates a Backend behind the mute toggle. Playback errors are logged
// and dropped so they never reach the frame loop.
type Cues struct {
	backend Backend
	muted   bool
}

// NewCues returns unmuted cues. A nil backend makes every cue silent.
func NewCues(backend Backend) *Cues {
	return &Cues{backend: backend}
}

func (c *Cues) Play(cue Cue) {
	if c.muted || c.backend == nil {
		return
	}
	if err := c.backend.Play(cue); err != nil {
		log.Printf("audio: play %s: %v", cue, err)
	}
}

// SetBackend swaps the sound source, for example after the user picks a
// new asset.
func (c *Cues) SetBackend(backend Backend) {
	c.backend = backend
}

// ToggleMute flips the mute flag and returns the new state.
func (c *Cues) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

func (c *Cues) Muted() bool { return c.muted }

// Glyph is the label shown on the mute button.
func (c *Cues) Glyph() string {
	if c.muted {
		return "Sound: off"
	}
	return "Sound: on"
}
