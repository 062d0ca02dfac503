// Package victory provides the end screen shown after the final level is
// cleared.
package victory

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hmelo/kitchenrush/internal/application/scene"
)

var colorOverlay = color.RGBA{20, 80, 30, 200}

// Scene shows the final score after clearing every level.
type Scene struct {
	score   int
	screenW int
	screenH int
	restart func() scene.Scene
}

// New creates the victory screen. restart builds a fresh gameplay scene.
func New(score, screenW, screenH int, restart func() scene.Scene) *Scene {
	return &Scene{score: score, screenW: screenW, screenH: screenH, restart: restart}
}

// Update waits for the restart key (implements scene.Scene).
func (s *Scene) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return s.restart(), nil
	}
	return nil, nil
}

// Draw renders the victory overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(s.screenW), float64(s.screenH), colorOverlay)

	text := fmt.Sprintf("YOU WIN!\n\nFinal score: %d\n\nPress R to play again", s.score)
	ebitenutil.DebugPrintAt(screen, text, s.screenW/2-60, s.screenH/2-30)
}

// OnEnter implements scene.Scene.
func (s *Scene) OnEnter() {}

// OnExit implements scene.Scene.
func (s *Scene) OnExit() {}
