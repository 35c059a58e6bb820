// Package render draws the simulation onto an ebiten image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas is a persistent offscreen image implementing fireworks.Surface.
// It is never cleared; the fade pass is what removes old strokes.
type Canvas struct {
	img      *ebiten.Image
	blend    ebiten.Blend
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:   ebiten.NewImage(width, height),
		blend: ebiten.BlendSourceOver,
	}
}

// Image returns the backing image for compositing onto the screen.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Fade erases part of every pixel: destination-out with a black rectangle
// of the given alpha keeps (1-alpha) of what was there.
func (c *Canvas) Fade(alpha float64) {
	w, h := c.img.Bounds().Dx(), c.img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationOut}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.Scale(0, 0, 0, float32(alpha))
	c.img.DrawImage(whiteSubImage, op)
	c.blend = ebiten.BlendSourceOver
}

// Additive switches strokes to lighter compositing so overlapping trails
// add up.
func (c *Canvas) Additive() {
	c.blend = ebiten.BlendLighter
}

func (c *Canvas) Stroke(from, to fireworks.Point, clr fireworks.HSLA) {
	if from == to {
		return
	}

	var path vector.Path
	path.MoveTo(float32(from.X), float32(from.Y))
	path.LineTo(float32(to.X), float32(to.Y))

	sop := &vector.StrokeOptions{Width: config.StrokeWidth}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], sop)

	r, g, b := hslToRgb(clr.Hue, clr.Saturation, clr.Lightness)
	a := float32(clamp01(clr.Alpha))
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r)
		v.ColorG = float32(g)
		v.ColorB = float32(b)
		v.ColorA = a
	}

	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		Blend:     c.blend,
		AntiAlias: true,
	})
}
