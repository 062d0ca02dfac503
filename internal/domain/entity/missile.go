package entity

import "math"

// Missile is a homing projectile fired by the boss. The direction to the
// target is re-evaluated every tick, so it tracks a moving player rather
// than flying ballistically.
type Missile struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Target *Player // read-only, for direction computation
	Active bool
}

// NewMissile creates a missile with its top edge centered on (cx, y).
func NewMissile(cx, y, w, h, speed float64, target *Player) *Missile {
	return &Missile{
		X:      cx - w/2,
		Y:      y,
		W:      w,
		H:      h,
		Speed:  speed,
		Target: target,
		Active: true,
	}
}

// Update steers toward the target's current center and deactivates the
// missile once it is fully outside the screen in any direction.
func (m *Missile) Update(dt, screenW, screenH float64) {
	if !m.Active || m.Target == nil {
		return
	}

	tb := m.Target.Bounds()
	dx := tb.CenterX() - m.Bounds().CenterX()
	dy := tb.CenterY() - m.Bounds().CenterY()
	dist := math.Hypot(dx, dy)
	if dist != 0 {
		dx /= dist
		dy /= dist
	}
	m.X += dx * m.Speed * dt
	m.Y += dy * m.Speed * dt

	if m.Y > screenH || m.Y+m.H < 0 || m.X > screenW || m.X+m.W < 0 {
		m.Active = false
	}
}

// Bounds returns the missile's bounding region.
func (m *Missile) Bounds() Rect {
	return Rect{X: m.X, Y: m.Y, W: m.W, H: m.H}
}

// Alive reports whether the missile is still in play.
func (m *Missile) Alive() bool {
	return m.Active
}

// Deactivate removes the missile from play.
func (m *Missile) Deactivate() {
	m.Active = false
}
