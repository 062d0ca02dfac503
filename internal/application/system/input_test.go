package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePlayer_Movement(t *testing.T) {
	sys := NewInputSystem()

	t.Run("moves left", func(t *testing.T) {
		p := testPlayer()
		x := p.X

		sys.UpdatePlayer(p, InputState{Left: true}, 0.1, 800)

		assert.InDelta(t, x-200*0.1, p.X, 1e-9)
	})

	t.Run("moves right", func(t *testing.T) {
		p := testPlayer()
		x := p.X

		sys.UpdatePlayer(p, InputState{Right: true}, 0.1, 800)

		assert.InDelta(t, x+200*0.1, p.X, 1e-9)
	})

	t.Run("left wins over right", func(t *testing.T) {
		p := testPlayer()
		x := p.X

		sys.UpdatePlayer(p, InputState{Left: true, Right: true}, 0.1, 800)

		assert.Less(t, p.X, x)
	})

	t.Run("no input holds position", func(t *testing.T) {
		p := testPlayer()
		x := p.X

		sys.UpdatePlayer(p, InputState{}, 0.1, 800)

		assert.Equal(t, x, p.X)
	})
}

func TestUpdatePlayer_Shield(t *testing.T) {
	sys := NewInputSystem()

	t.Run("raises on press", func(t *testing.T) {
		p := testPlayer()

		raised := sys.UpdatePlayer(p, InputState{ShieldPressed: true}, 0.016, 800)

		assert.True(t, raised)
		assert.True(t, p.ShieldActive)
	})

	t.Run("press during cooldown is silent", func(t *testing.T) {
		p := testPlayer()
		require.True(t, sys.UpdatePlayer(p, InputState{ShieldPressed: true}, 0.016, 800))

		// Run the shield out; the cooldown picks up right after.
		sys.UpdatePlayer(p, InputState{}, 1.0, 800)
		raised := sys.UpdatePlayer(p, InputState{ShieldPressed: true}, 0.016, 800)

		assert.False(t, raised)
		assert.False(t, p.ShieldActive)
	})
}

func TestUpdatePlayer_SlipLock(t *testing.T) {
	sys := NewInputSystem()
	p := testPlayer()
	p.Slip()
	x := p.X

	raised := sys.UpdatePlayer(p, InputState{Left: true, ShieldPressed: true}, 0.1, 800)

	assert.False(t, raised, "shield cannot be raised while slipping")
	assert.Equal(t, x, p.X, "movement is locked while slipping")
	assert.False(t, p.ShieldActive)

	// Timers still advance, so the lock expires on its own.
	sys.UpdatePlayer(p, InputState{}, 0.5, 800)
	assert.False(t, p.Slipping())
	sys.UpdatePlayer(p, InputState{Left: true}, 0.1, 800)
	assert.Less(t, p.X, x)
}
