package entity

// Rect is an axis-aligned bounding region in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rects intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// ItemKind identifies a falling item type.
type ItemKind string

const (
	KindSock   ItemKind = "sock"
	KindCube   ItemKind = "cube"
	KindMug    ItemKind = "mug"
	KindBanana ItemKind = "banana"
	KindTowel  ItemKind = "towel"
)

// DefaultKind is the fallback when a weight table is empty or sums to zero.
const DefaultKind = KindSock

// Effect is an item's special effect on collection.
type Effect int

const (
	EffectNone Effect = iota
	EffectSlip
	EffectBoost
)

// String returns the string representation of the effect.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectSlip:
		return "slip"
	case EffectBoost:
		return "boost"
	default:
		return "unknown"
	}
}
