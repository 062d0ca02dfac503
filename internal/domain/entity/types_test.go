package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"touching edges only", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 60}
	assert.Equal(t, 30.0, r.CenterX())
	assert.Equal(t, 50.0, r.CenterY())
}

func TestEffect_String(t *testing.T) {
	assert.Equal(t, "none", EffectNone.String())
	assert.Equal(t, "slip", EffectSlip.String())
	assert.Equal(t, "boost", EffectBoost.String())
	assert.Equal(t, "unknown", Effect(99).String())
}
