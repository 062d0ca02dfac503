package entity

// Tuning bundles the player's numeric tuning, loaded from config.
type Tuning struct {
	Width, Height   float64
	Speed           float64
	Lives           int
	ShieldDuration  float64
	ShieldCooldown  float64
	SlipDuration    float64
	BoostMultiplier float64
	BoostDuration   float64
}

// Player is the player-controlled character. It is created once per game
// session and survives level transitions; only its position is reset.
type Player struct {
	X, Y float64
	W, H float64

	Speed           float64
	BoostMultiplier float64
	BoostTimer      float64

	ShieldActive   bool
	ShieldTimer    float64 // remaining active time
	ShieldDuration float64
	ShieldCooldown float64
	CooldownTimer  float64 // remaining recharge time

	SlipTimer    float64 // while > 0, input is ignored and position is frozen
	SlipDuration float64

	Lives int
	Score int

	boostMultiplier float64
	boostDuration   float64
}

// NewPlayer creates a player at the given top-left position.
func NewPlayer(x, y float64, tun Tuning) *Player {
	return &Player{
		X:               x,
		Y:               y,
		W:               tun.Width,
		H:               tun.Height,
		Speed:           tun.Speed,
		BoostMultiplier: 1.0,
		ShieldDuration:  tun.ShieldDuration,
		ShieldCooldown:  tun.ShieldCooldown,
		SlipDuration:    tun.SlipDuration,
		Lives:           tun.Lives,
		boostMultiplier: tun.BoostMultiplier,
		boostDuration:   tun.BoostDuration,
	}
}

// UpdateTimers advances the slip, shield and boost countdowns.
// All timers are decrement-to-zero counters driven by dt, so pausing the
// driver loop pauses them uniformly.
func (p *Player) UpdateTimers(dt float64) {
	if p.SlipTimer > 0 {
		p.SlipTimer -= dt
		if p.SlipTimer < 0 {
			p.SlipTimer = 0
		}
	}

	if p.ShieldActive {
		p.ShieldTimer -= dt
		if p.ShieldTimer <= 0 {
			p.ShieldTimer = 0
			p.ShieldActive = false
			// Deactivation always starts the recharge.
			p.CooldownTimer = p.ShieldCooldown
		}
	} else if p.CooldownTimer > 0 {
		p.CooldownTimer -= dt
		if p.CooldownTimer < 0 {
			p.CooldownTimer = 0
		}
	}

	if p.BoostTimer > 0 {
		p.BoostTimer -= dt
		if p.BoostTimer <= 0 {
			p.BoostTimer = 0
			p.BoostMultiplier = 1.0
		}
	}
}

// ActivateShield raises the shield if it is not already up, not recharging
// and the player is not slipping. Returns true if the shield was raised.
func (p *Player) ActivateShield() bool {
	if p.ShieldActive || p.CooldownTimer > 0 || p.SlipTimer > 0 {
		return false
	}
	p.ShieldActive = true
	p.ShieldTimer = p.ShieldDuration
	return true
}

// ShieldReady reports whether the shield can currently be raised.
func (p *Player) ShieldReady() bool {
	return !p.ShieldActive && p.CooldownTimer <= 0
}

// Slipping reports whether the slip lock is active.
func (p *Player) Slipping() bool {
	return p.SlipTimer > 0
}

// Slip starts the control-lock countdown.
func (p *Player) Slip() {
	p.SlipTimer = p.SlipDuration
}

// Boost applies the temporary speed multiplier, restarting the timer if a
// boost is already active.
func (p *Player) Boost() {
	p.BoostMultiplier = p.boostMultiplier
	p.BoostTimer = p.boostDuration
}

// Move shifts the player horizontally by dir (-1, 0, +1), clamped to
// [0, maxX - width]. Frozen while slipping.
func (p *Player) Move(dir float64, dt, maxX float64) {
	if p.SlipTimer > 0 {
		return
	}
	p.X += dir * p.Speed * p.BoostMultiplier * dt
	if p.X < 0 {
		p.X = 0
	}
	if p.X > maxX-p.W {
		p.X = maxX - p.W
	}
}

// ResetPosition moves the player to a level re-entry point without touching
// score, lives or timers.
func (p *Player) ResetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// Bounds returns the player's bounding region.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
