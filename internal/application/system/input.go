package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hmelo/kitchenrush/internal/domain/entity"
)

// InputSystem samples player input and applies it to the player.
type InputSystem struct{}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one tick's worth of input.
type InputState struct {
	Left          bool
	Right         bool
	ShieldPressed bool
	AnyPressed    bool // any key went down this tick; used to skip cutscenes
}

// GetInput reads the current input state.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ShieldPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		AnyPressed:    len(inpututil.AppendJustPressedKeys(nil)) > 0,
	}
}

// UpdatePlayer advances the player's timers and applies input. All input
// is ignored while the slip lock is active. Returns true when the shield
// was raised this tick, so the caller can play the activation sound.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt, screenW float64) bool {
	player.UpdateTimers(dt)

	if player.Slipping() {
		return false
	}

	raised := false
	if input.ShieldPressed {
		raised = player.ActivateShield()
	}

	dir := 0.0
	if input.Left {
		dir = -1
	} else if input.Right {
		dir = 1
	}
	player.Move(dir, dt, screenW)

	return raised
}
