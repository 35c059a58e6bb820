package launch

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Overlay is the message caption shown over the show. Its opacity is
// tweened toward 1 on Show and toward 0 on Hide; the text is kept after
// it fades out.
type Overlay struct {
	text  string
	alpha float64
	tween *gween.Tween
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Show replaces the text and starts fading in from the current opacity.
func (o *Overlay) Show(text string) {
	o.text = text
	o.tween = gween.New(float32(o.alpha), 1, float32(config.OverlayFadeIn.Seconds()), ease.OutQuad)
}

// Hide starts fading out from the current opacity, whatever text is shown.
func (o *Overlay) Hide() {
	o.tween = gween.New(float32(o.alpha), 0, float32(config.OverlayFadeOut.Seconds()), ease.InQuad)
}

// Update advances the running fade by dt seconds.
func (o *Overlay) Update(dt float64) {
	if o.tween == nil {
		return
	}
	v, done := o.tween.Update(float32(dt))
	o.alpha = clamp01(float64(v))
	if done {
		o.tween = nil
	}
}

func (o *Overlay) Text() string    { return o.text }
func (o *Overlay) Alpha() float64  { return o.alpha }
func (o *Overlay) Visible() bool   { return o.alpha > 0 && o.text != "" }
func (o *Overlay) Animating() bool { return o.tween != nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
