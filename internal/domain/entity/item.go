package entity

// Item is a falling item. It is created by the spawner and removed either
// by a player collision or by leaving the bottom of the screen.
type Item struct {
	X, Y   float64
	W, H   float64
	Kind   ItemKind
	Value  int // positive = score, negative = damage magnitude, zero = pure effect
	Effect Effect
	Speed  float64 // vertical fall speed, fixed per instance
	Active bool
}

// NewItem creates an item just above the visible top edge.
func NewItem(kind ItemKind, value int, effect Effect, x, w, h, speed float64) *Item {
	return &Item{
		X:      x,
		Y:      -h,
		W:      w,
		H:      h,
		Kind:   kind,
		Value:  value,
		Effect: effect,
		Speed:  speed,
		Active: true,
	}
}

// Update advances the fall. Once the top edge passes the screen bottom the
// item counts as missed and is deactivated.
func (i *Item) Update(dt, screenH float64) {
	if !i.Active {
		return
	}
	i.Y += i.Speed * dt
	if i.Y > screenH {
		i.Active = false
	}
}

// Bounds returns the item's bounding region.
func (i *Item) Bounds() Rect {
	return Rect{X: i.X, Y: i.Y, W: i.W, H: i.H}
}

// Alive reports whether the item is still in play.
func (i *Item) Alive() bool {
	return i.Active
}

// Deactivate removes the item from play.
func (i *Item) Deactivate() {
	i.Active = false
}
