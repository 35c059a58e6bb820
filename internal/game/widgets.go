package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fireworks/internal/config"
)

// debug font cell width
const charWidth = 6

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// button fires on release when both press and release happen over it.
type button struct {
	rect
	label   string
	hovered bool
	pressed bool
}

func newButton(x, y int, label string) *button {
	return &button{
		rect:  rect{x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight},
		label: label,
	}
}

func (b *button) update() (clicked bool) {
	mouseX, mouseY := ebiten.CursorPosition()
	b.hovered = b.contains(mouseX, mouseY)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 220} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 220} // Hovered
	} else {
		bgColor = color.RGBA{R: 40, G: 50, B: 70, A: 200} // Normal
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, borderColor, false)

	textX := b.x + (b.w-len(b.label)*charWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// textField collects typed characters until Enter.
type textField struct {
	rect
	runes []rune
}

func newTextField(x, y int) *textField {
	return &textField{rect: rect{x: x, y: y, w: config.FieldWidth, h: config.FieldHeight}}
}

// update reads this frame's keyboard input and reports whether Enter was
// pressed.
func (f *textField) update() (submit bool) {
	f.runes = ebiten.AppendInputChars(f.runes)
	if len(f.runes) > config.MaxMessageRunes {
		f.runes = f.runes[:config.MaxMessageRunes]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func (f *textField) text() string { return string(f.runes) }

func (f *textField) clear() { f.runes = f.runes[:0] }

func (f *textField) draw(screen *ebiten.Image, blink bool) {
	vector.DrawFilledRect(screen, float32(f.x), float32(f.y), float32(f.w), float32(f.h), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(f.x), float32(f.y), float32(f.w), float32(f.h), 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	label := visibleTail(f.text(), (f.w-12)/charWidth-1)
	if label == "" && !blink {
		ebitenutil.DebugPrintAt(screen, "Type a message, Enter to launch", f.x+6, f.y+(f.h-16)/2)
		return
	}
	if blink {
		label += "_"
	}
	ebitenutil.DebugPrintAt(screen, label, f.x+6, f.y+(f.h-16)/2)
}
