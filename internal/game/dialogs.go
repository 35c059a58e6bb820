package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

type dialogKind int

const (
	dialogMessage dialogKind = iota
	dialogSound
)

type dialogResult struct {
	kind  dialogKind
	value string
	err   error
}

// Native dialogs block, so they run on their own goroutine and hand the
// result back to Update through g.dialogs.

func (g *Game) openMessageDialog() {
	g.dialogOpen = true
	go func() {
		text, err := zenity.Entry(
			"Message to launch:",
			zenity.Title("Launch a Message"),
		)
		g.dialogs <- dialogResult{kind: dialogMessage, value: text, err: err}
	}()
}

func (g *Game) openSoundDialog() {
	g.dialogOpen = true
	go func() {
		filename, err := zenity.SelectFile(
			zenity.Title("Choose Firework Sound"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		g.dialogs <- dialogResult{kind: dialogSound, value: filename, err: err}
	}()
}

// drainDialogs applies at most one finished dialog per frame.
func (g *Game) drainDialogs() {
	select {
	case res := <-g.dialogs:
		g.dialogOpen = false
		g.applyDialog(res)
	default:
	}
}

func (g *Game) applyDialog(res dialogResult) {
	if res.err != nil {
		if !errors.Is(res.err, zenity.ErrCanceled) {
			log.Printf("dialog: %v", res.err)
		}
		return
	}

	switch res.kind {
	case dialogMessage:
		g.trigger.Submit(res.value)
	case dialogSound:
		if err := g.player.Load(res.value); err != nil {
			log.Printf("load sound %s: %v", res.value, err)
			return
		}
		log.Printf("using sound %s", res.value)
		g.cues.SetBackend(g.player)
	}
}
