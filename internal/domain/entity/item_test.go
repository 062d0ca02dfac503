package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItem_SpawnsAboveTopEdge(t *testing.T) {
	it := NewItem(KindMug, 5, EffectNone, 200, 68, 68, 180)

	assert.True(t, it.Active)
	assert.Equal(t, -68.0, it.Y)
	assert.Equal(t, KindMug, it.Kind)
}

func TestItem_FallsAtFixedSpeed(t *testing.T) {
	it := NewItem(KindSock, 1, EffectNone, 0, 100, 100, 200)

	it.Update(0.5, 600)

	assert.InDelta(t, -100+100.0, it.Y, 0.001)
	assert.True(t, it.Active)
}

func TestItem_MissedWhenTopEdgePassesBottom(t *testing.T) {
	it := NewItem(KindBanana, -1, EffectSlip, 0, 40, 40, 300)
	it.Y = 599

	it.Update(0.1, 600)
	assert.False(t, it.Active, "top edge past screen bottom counts as a miss")

	// Inactive items do not move.
	y := it.Y
	it.Update(1.0, 600)
	assert.Equal(t, y, it.Y)
}

func TestItem_Bounds(t *testing.T) {
	it := NewItem(KindTowel, 0, EffectBoost, 10, 38, 38, 150)
	it.Y = 20

	assert.Equal(t, Rect{X: 10, Y: 20, W: 38, H: 38}, it.Bounds())
}
