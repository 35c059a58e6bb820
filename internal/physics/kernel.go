// Package physics holds the stateless motion helpers shared by every
// entity in the simulation.
package physics

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// AngleTo returns the direction from a to b in radians.
func AngleTo(ax, ay, bx, by float64) float64 {
	return math.Atan2(by-ay, bx-ax)
}

// Step returns the position delta for moving speed units along angle.
func Step(angle, speed float64) (dx, dy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
