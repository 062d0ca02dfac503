package system

import (
	"github.com/hmelo/kitchenrush/internal/domain/entity"
)

// Collidable is anything with a bounding region that can be consumed by at
// most one collision.
type Collidable interface {
	Bounds() entity.Rect
	Alive() bool
	Deactivate()
}

// Overlapping finds all live pool entries overlapping region, consumes
// them and returns them in pool order.
func Overlapping[T Collidable](region entity.Rect, pool []T) []T {
	var hits []T
	for _, c := range pool {
		if !c.Alive() {
			continue
		}
		if region.Overlaps(c.Bounds()) {
			c.Deactivate()
			hits = append(hits, c)
		}
	}
	return hits
}

// ItemOutcome tells the scene which side effect a collected item produced,
// so it can play the matching sound.
type ItemOutcome int

const (
	OutcomeScore ItemOutcome = iota
	OutcomeDamage
	OutcomeAbsorbed
	OutcomeSlip
	OutcomeBoost
)

// Collisions resolves player-vs-entity overlaps and dispatches effects.
type Collisions struct{}

// NewCollisions creates a collision resolver.
func NewCollisions() *Collisions {
	return &Collisions{}
}

// CollectItems consumes all items overlapping the player and applies each
// one's effect, returning outcomes in collection order.
func (c *Collisions) CollectItems(player *entity.Player, items []*entity.Item) []ItemOutcome {
	var outcomes []ItemOutcome
	for _, it := range Overlapping(player.Bounds(), items) {
		outcomes = append(outcomes, c.applyItem(player, it))
	}
	return outcomes
}

// applyItem dispatches one collected item. Special effects take precedence
// over the value; the slip lock applies regardless of the shield, while
// damage is fully absorbed by an active shield.
func (c *Collisions) applyItem(player *entity.Player, it *entity.Item) ItemOutcome {
	switch {
	case it.Effect == entity.EffectSlip:
		player.Slip()
		return OutcomeSlip
	case it.Effect == entity.EffectBoost:
		player.Boost()
		return OutcomeBoost
	case it.Value > 0:
		player.Score += it.Value
		return OutcomeScore
	default:
		if player.ShieldActive {
			return OutcomeAbsorbed
		}
		player.Lives += it.Value // value <= 0
		if player.Lives < 0 {
			player.Lives = 0
		}
		return OutcomeDamage
	}
}

// ResolveMissiles consumes all missiles overlapping the player. A block by
// an active shield registers a hit against the boss; an unblocked missile
// costs exactly one life.
func (c *Collisions) ResolveMissiles(player *entity.Player, missiles []*entity.Missile, boss *entity.Boss) (blocked, unblocked int) {
	for range Overlapping(player.Bounds(), missiles) {
		if player.ShieldActive {
			if boss != nil {
				boss.RegisterHit()
			}
			blocked++
		} else {
			player.Lives--
			if player.Lives < 0 {
				player.Lives = 0
			}
			unblocked++
		}
	}
	return blocked, unblocked
}
