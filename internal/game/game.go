// Package game wires the firework show into an ebiten game loop.
package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fireworks/internal/audio"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
	"github.com/iburimskiy/fireworks/internal/launch"
	"github.com/iburimskiy/fireworks/internal/render"
	"github.com/iburimskiy/fireworks/internal/schedule"
)

const captionScale = 3

// Game runs one show. All state is mutated from Update only.
type Game struct {
	width, height int

	// show
	pop     *fireworks.Population
	canvas  *render.Canvas
	queue   *schedule.Queue
	overlay *launch.Overlay
	trigger *launch.Trigger
	caption *ebiten.Image

	// sound
	cues   *audio.Cues
	player *audio.Player

	// controls
	field     *textField
	launchBtn *button
	askBtn    *button
	muteBtn   *button
	soundBtn  *button

	dialogs    chan dialogResult
	dialogOpen bool
	frames     int
}

// New builds a show for a canvas of the given size. player is used when the
// user picks a new sound; cues is what the show plays through.
func New(width, height int, player *audio.Player, cues *audio.Cues) *Game {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	bounds := fireworks.Bounds{Width: float64(width), Height: float64(height)}

	g := &Game{
		width:   width,
		height:  height,
		pop:     fireworks.NewPopulation(bounds, rng, cues),
		canvas:  render.NewCanvas(width, height),
		queue:   schedule.NewQueue(),
		overlay: launch.NewOverlay(),
		caption: ebiten.NewImage(config.MaxMessageRunes*charWidth, 16),
		cues:    cues,
		player:  player,
		dialogs: make(chan dialogResult, 1),
	}
	g.trigger = launch.NewTrigger(g.pop, g.queue, g.overlay)

	x := 12
	g.field = newTextField(x, config.ButtonY)
	x += config.FieldWidth + config.ButtonGap
	g.launchBtn = newButton(x, config.ButtonY, "Launch")
	x += config.ButtonWidth + config.ButtonGap
	g.askBtn = newButton(x, config.ButtonY, "Ask...")
	x += config.ButtonWidth + config.ButtonGap
	g.soundBtn = newButton(x, config.ButtonY, "Sound...")
	g.muteBtn = newButton(width-config.ButtonWidth-12, config.ButtonY, cues.Glyph())
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.drainDialogs()
	g.handleControls()

	dt := time.Second / config.TPS
	g.queue.Advance(dt)
	g.overlay.Update(dt.Seconds())
	g.pop.Frame(g.canvas)

	g.frames++
	return nil
}

func (g *Game) handleControls() {
	if g.muteBtn.update() {
		g.cues.ToggleMute()
		g.muteBtn.label = g.cues.Glyph()
	}

	submit := g.field.update()
	if g.launchBtn.update() {
		submit = true
	}
	if submit && g.trigger.Submit(g.field.text()) {
		g.field.clear()
	}

	// Always poll every button so press state stays in sync.
	ask := g.askBtn.update()
	sound := g.soundBtn.update()
	if g.dialogOpen {
		return
	}
	if ask {
		g.openMessageDialog()
	} else if sound {
		g.openSoundDialog()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(g.canvas.Image(), nil)

	g.drawCaption(screen)

	g.field.draw(screen, (g.frames/30)%2 == 0)
	g.launchBtn.draw(screen)
	g.askBtn.draw(screen)
	g.soundBtn.draw(screen)
	g.muteBtn.draw(screen)

	status := fmt.Sprintf("TPS: %0.1f  Fireworks: %d  Sparks: %d  Time: %s  Esc: Quit",
		ebiten.ActualTPS(), len(g.pop.Projectiles()), len(g.pop.Sparks()), formatDuration(g.queue.Now()))
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-24)
}

// drawCaption renders the overlay message enlarged at the middle of the
// screen with the overlay's current opacity.
func (g *Game) drawCaption(screen *ebiten.Image) {
	if !g.overlay.Visible() {
		return
	}
	text := visibleTail(g.overlay.Text(), config.MaxMessageRunes)
	g.caption.Clear()
	ebitenutil.DebugPrint(g.caption, text)

	w := float64(len([]rune(text))*charWidth) * captionScale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(captionScale, captionScale)
	op.GeoM.Translate((float64(g.width)-w)/2, float64(g.height)/3)
	op.ColorScale.ScaleAlpha(float32(g.overlay.Alpha()))
	screen.DrawImage(g.caption, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
