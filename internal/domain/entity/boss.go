package entity

// Boss is the scripted level boss. It patrols horizontally until dead,
// reflecting off the screen edges, and fires homing missiles on a timer.
// Dead is a one-way transition; the level-advance side effects on death
// belong to the scene, not the boss.
type Boss struct {
	X, Y      float64
	W, H      float64
	Direction float64 // ±1 patrol direction
	Speed     float64

	FireTimer    float64
	FireInterval float64 // halves once hits pass 50% of max

	Hits    int
	MaxHits int
	Dead    bool

	MissileSpeed float64
	MissileW     float64
	MissileH     float64
}

// NewBoss creates a boss with its top edge centered on (cx, y), patrolling
// to the right.
func NewBoss(cx, y, w, h, speed, fireInterval float64, maxHits int, missileSpeed, missileW, missileH float64) *Boss {
	return &Boss{
		X:            cx - w/2,
		Y:            y,
		W:            w,
		H:            h,
		Direction:    1,
		Speed:        speed,
		FireInterval: fireInterval,
		MaxHits:      maxHits,
		MissileSpeed: missileSpeed,
		MissileW:     missileW,
		MissileH:     missileH,
	}
}

// Update advances the patrol and the fire timer. The direction reflects
// when a bounding edge crosses a screen boundary.
func (b *Boss) Update(dt, screenW float64) {
	if b.Dead {
		return
	}
	b.X += b.Direction * b.Speed * dt
	if b.X+b.W > screenW || b.X < 0 {
		b.Direction *= -1
	}
	b.FireTimer += dt
}

// ReadyToFire reports whether the fire timer has reached the interval.
// Pure predicate; the scene decides when to actually fire.
func (b *Boss) ReadyToFire() bool {
	return !b.Dead && b.FireTimer >= b.FireInterval
}

// Fire resets the fire timer and returns a new homing missile launched
// from the boss's bottom center toward the target.
func (b *Boss) Fire(target *Player) *Missile {
	b.FireTimer = 0
	return NewMissile(b.X+b.W/2, b.Y+b.H, b.MissileW, b.MissileH, b.MissileSpeed, target)
}

// RegisterHit records one confirmed shield-block. Crossing half of MaxHits
// permanently halves the fire interval; reaching MaxHits kills the boss.
func (b *Boss) RegisterHit() {
	if b.Dead {
		return
	}
	b.Hits++
	if b.Hits >= b.MaxHits {
		b.Dead = true
	} else if b.Hits == b.MaxHits/2 {
		b.FireInterval /= 2
	}
}

// HealthRatio returns the remaining health fraction in [0, 1] for the
// boss health bar.
func (b *Boss) HealthRatio() float64 {
	if b.MaxHits == 0 {
		return 0
	}
	r := 1 - float64(b.Hits)/float64(b.MaxHits)
	if r < 0 {
		r = 0
	}
	return r
}

// Bounds returns the boss's bounding region.
func (b *Boss) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}
