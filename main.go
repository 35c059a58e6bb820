package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/game"
)

func main() {
	width, height := canvasSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Fireworks - type a message and press Enter, Esc: Quit")
	ebiten.SetTPS(config.TPS)

	player := audio.NewPlayer(config.SoundVolume)
	cues := audio.NewCues(nil)
	if err := player.Load(config.SoundAsset); err != nil {
		log.Printf("sound disabled: %v", err)
	} else {
		cues.SetBackend(player)
		if err := player.SetAsset(audio.CueExplode, config.ExplodeSoundAsset); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("explode sound: %v", err)
		}
	}

	g := game.New(width, height, player, cues)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// canvasSize sizes the window to most of the current monitor. The canvas
// keeps this size for the whole session.
func canvasSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return w * 4 / 5, h * 4 / 5
		}
	}
	return config.DefaultWidth, config.DefaultHeight
}
