package system

import (
	"math/rand"

	"github.com/hmelo/kitchenrush/internal/domain/entity"
	"github.com/hmelo/kitchenrush/internal/infrastructure/config"
)

// Spawner is the time-driven item factory. It accumulates elapsed time and
// drops a new item once the level's spawn interval has elapsed, as long as
// the active pool is below the level's cap.
type Spawner struct {
	rng      *rand.Rand
	screenW  float64
	interval float64
	timer    float64
}

// NewSpawner creates a spawner with a caller-supplied (seedable) RNG.
func NewSpawner(rng *rand.Rand, screenW float64) *Spawner {
	return &Spawner{rng: rng, screenW: screenW}
}

// Reset arms the spawner for a new level.
func (s *Spawner) Reset(interval float64) {
	s.interval = interval
	s.timer = 0
}

// Update accumulates dt and returns a new item when one is due, nil
// otherwise. The timer resets only when an item actually spawns, so a full
// pool spawns immediately after it frees up.
func (s *Spawner) Update(dt float64, population int, lvl config.LevelConfig, items map[string]config.ItemConfig, speed config.SpeedRange) *entity.Item {
	s.timer += dt
	if s.timer < s.interval || population >= lvl.MaxItems {
		return nil
	}
	s.timer = 0

	kind := s.pickKind(lvl.Weights)
	def, ok := items[string(kind)]
	if !ok {
		kind = entity.DefaultKind
		def = items[string(kind)]
	}

	mult := lvl.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	lo, hi := speed.Min*mult, speed.Max*mult
	spd := lo
	if hi > lo {
		spd = lo + s.rng.Float64()*(hi-lo)
	}

	maxX := s.screenW - def.Width
	if maxX < 0 {
		maxX = 0
	}
	x := s.rng.Float64() * maxX

	return entity.NewItem(kind, def.Value, ParseEffect(def.Effect), x, def.Width, def.Height, spd)
}

// pickKind draws one kind via cumulative weighted sampling: a uniform
// integer in [1, total], walked through the table in declaration order.
// An empty or zero-weight table falls back to the baseline kind.
func (s *Spawner) pickKind(weights []config.ItemWeight) entity.ItemKind {
	total := 0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return entity.DefaultKind
	}

	draw := s.rng.Intn(total) + 1
	sum := 0
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		sum += w.Weight
		if draw <= sum {
			return entity.ItemKind(w.Kind)
		}
	}
	return entity.ItemKind(weights[0].Kind)
}

// ParseEffect maps a config effect tag to the entity effect.
func ParseEffect(tag string) entity.Effect {
	switch tag {
	case "slip":
		return entity.EffectSlip
	case "boost":
		return entity.EffectBoost
	default:
		return entity.EffectNone
	}
}
