// Package launch turns user messages into staggered firework launches and
// the caption that accompanies them.
package launch

import (
	"strings"
	"time"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
	"github.com/iburimskiy/fireworks/internal/schedule"
)

// Trigger schedules message launches on the frame-clock queue. Nothing it
// schedules can be cancelled: a second message submitted within the hold
// window is faded out by the first message's timer.
type Trigger struct {
	pop     *fireworks.Population
	queue   *schedule.Queue
	overlay *Overlay
}

func NewTrigger(pop *fireworks.Population, queue *schedule.Queue, overlay *Overlay) *Trigger {
	return &Trigger{
		pop:     pop,
		queue:   queue,
		overlay: overlay,
	}
}

// Submit shows text and schedules the message launches. Blank text is
// ignored and Submit reports false.
func (t *Trigger) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	t.overlay.Show(text)

	for i := range config.MessageSpawnCount {
		t.queue.After(config.MessageSpawnStagger*time.Duration(i), func() {
			t.pop.LaunchTo(t.pop.MessageTarget())
		})
	}

	t.queue.After(config.OverlayHold, t.overlay.Hide)
	return true
}
