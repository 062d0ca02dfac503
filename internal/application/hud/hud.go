// Package hud renders the in-game overlay: score, remaining lives and
// shield readiness.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/hmelo/kitchenrush/internal/infrastructure/assets"
)

const (
	panelHeight = 40.0
	iconSize    = 24
	iconPad     = 6.0
)

var (
	colorPanel  = color.RGBA{0, 0, 0, 140}
	colorHeart  = color.RGBA{220, 60, 60, 255}
	colorShield = color.RGBA{80, 160, 240, 255}
	colorText   = color.RGBA{255, 255, 255, 255}
)

// HUD owns its icon textures, loaded once at construction.
type HUD struct {
	heart   *ebiten.Image
	shield  *ebiten.Image
	face    font.Face
	screenW float64
}

// New builds the HUD. A nil library yields colored fallback squares.
func New(lib *assets.Library, screenW float64) *HUD {
	return &HUD{
		heart:   lib.Sprite("images/heart.png", iconSize, iconSize),
		shield:  lib.Sprite("images/shield_icon.png", iconSize, iconSize),
		face:    basicfont.Face7x13,
		screenW: screenW,
	}
}

// Draw paints the overlay along the top edge.
func (h *HUD) Draw(screen *ebiten.Image, score, lives int, shieldReady bool) {
	ebitenutil.DrawRect(screen, 0, 0, h.screenW, panelHeight, colorPanel)

	x := iconPad
	y := (panelHeight - iconSize) / 2
	for i := 0; i < lives; i++ {
		h.drawIcon(screen, h.heart, x, y, colorHeart)
		x += iconSize + iconPad
	}

	if shieldReady {
		h.drawIcon(screen, h.shield, h.screenW-iconSize-iconPad, y, colorShield)
	}

	label := fmt.Sprintf("SCORE %d", score)
	text.Draw(screen, label, h.face, int(h.screenW/2)-len(label)*4, int(panelHeight/2)+5, colorText)
}

func (h *HUD) drawIcon(screen, icon *ebiten.Image, x, y float64, fallback color.RGBA) {
	if icon == nil {
		ebitenutil.DrawRect(screen, x, y, iconSize, iconSize, fallback)
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := icon.Bounds()
	op.GeoM.Scale(iconSize/float64(b.Dx()), iconSize/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(icon, op)
}
