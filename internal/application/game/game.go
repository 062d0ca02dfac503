// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hmelo/kitchenrush/internal/infrastructure/config"

	"github.com/hmelo/kitchenrush/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene and display
// settings. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	tps := display.Framerate
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initialScene,
		screenW: display.Width,
		screenH: display.Height,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
