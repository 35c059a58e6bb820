package render

import (
	"math"
	"testing"
)

func TestHslToRgb(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b float64
	}{
		{"red", 0, 100, 50, 1, 0, 0},
		{"green", 120, 100, 50, 0, 1, 0},
		{"blue", 240, 100, 50, 0, 0, 1},
		{"yellow", 60, 100, 50, 1, 1, 0},
		{"white", 200, 100, 100, 1, 1, 1},
		{"black", 200, 100, 0, 0, 0, 0},
		{"grey", 0, 0, 50, 0.5, 0.5, 0.5},
		{"wraps 360", 360, 100, 50, 1, 0, 0},
		{"negative hue", -120, 100, 50, 0, 0, 1},
		{"light red", 0, 100, 75, 1, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hslToRgb(tt.h, tt.s, tt.l)
			if math.Abs(r-tt.r) > 1e-9 || math.Abs(g-tt.g) > 1e-9 || math.Abs(b-tt.b) > 1e-9 {
				t.Errorf("hslToRgb(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.h, tt.s, tt.l, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}
