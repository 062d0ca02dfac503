package playing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelo/kitchenrush/internal/application/scene/gameover"
	"github.com/hmelo/kitchenrush/internal/application/scene/victory"
	"github.com/hmelo/kitchenrush/internal/application/state"
	"github.com/hmelo/kitchenrush/internal/application/system"
	"github.com/hmelo/kitchenrush/internal/domain/entity"
	"github.com/hmelo/kitchenrush/internal/infrastructure/config"
)

const tick = 1.0 / 60.0

// newScene builds a scene over the default tuning table with no assets
// and a deterministic RNG.
func newScene(t *testing.T, startLevel int) *Playing {
	t.Helper()
	p := New(config.NewStore(config.Default()), nil, startLevel)
	p.spawner = system.NewSpawner(rand.New(rand.NewSource(1)), p.screenW)
	return p
}

// enterLevel runs the intro transition out.
func enterLevel(t *testing.T, p *Playing) {
	t.Helper()
	next, err := p.step(system.InputState{}, transitionDuration)
	require.NoError(t, err)
	require.Nil(t, next)
}

// dropOnPlayer places an item directly on the player.
func dropOnPlayer(p *Playing, kind entity.ItemKind, value int, effect entity.Effect) *entity.Item {
	it := entity.NewItem(kind, value, effect, p.player.X, 40, 40, 200)
	it.Y = p.player.Y
	p.items = append(p.items, it)
	return it
}

func TestPlaying_TransitionFreezesWorld(t *testing.T) {
	p := newScene(t, 1)

	require.Equal(t, state.PhaseTransitioning, p.phase)
	x := p.player.X

	next, err := p.step(system.InputState{Left: true, ShieldPressed: true}, 0.5)

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, x, p.player.X, "input is ignored while transitioning")
	assert.False(t, p.player.ShieldActive)
	assert.Empty(t, p.items, "nothing spawns while transitioning")
	assert.Equal(t, state.PhaseTransitioning, p.phase)

	// The rest of the two seconds runs the transition out.
	p.step(system.InputState{}, 1.5)
	assert.Equal(t, state.PhasePlaying, p.phase)
	assert.Equal(t, 1, p.level.Level)
}

func TestPlaying_SpawnAndCatch(t *testing.T) {
	p := newScene(t, 1)
	enterLevel(t, p)

	// Level 1 spawns every 3 seconds. Quarter-second steps keep the
	// fresh item near the top edge, away from the player.
	for i := 0; i < 11; i++ {
		p.step(system.InputState{}, 0.25)
	}
	assert.Empty(t, p.items)
	p.step(system.InputState{}, 0.25)
	require.Len(t, p.items, 1)

	// Drop a cube on the player and let one tick resolve it.
	dropOnPlayer(p, entity.KindCube, 10, entity.EffectNone)
	p.step(system.InputState{}, tick)

	assert.Equal(t, 10, p.player.Score)
	assert.Equal(t, 3, p.player.Lives)
}

func TestPlaying_MissedItemNotScored(t *testing.T) {
	p := newScene(t, 1)
	enterLevel(t, p)

	it := entity.NewItem(entity.KindCube, 10, entity.EffectNone, 0, 40, 40, 200)
	it.Y = p.screenH + 1
	p.items = append(p.items, it)

	p.step(system.InputState{}, tick)

	assert.Zero(t, p.player.Score)
	assert.Empty(t, p.items, "an item past the bottom edge is dropped")
}

func TestPlaying_ScoreThresholdAdvances(t *testing.T) {
	p := newScene(t, 1)
	enterLevel(t, p)
	require.Equal(t, 10, p.level.AdvanceScore)

	p.player.Score = 9
	p.step(system.InputState{}, tick)
	assert.Equal(t, state.PhasePlaying, p.phase, "below the threshold nothing happens")

	dropOnPlayer(p, entity.KindSock, 1, entity.EffectNone)
	next, err := p.step(system.InputState{}, tick)

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.PhaseTransitioning, p.phase)
	assert.Equal(t, 2, p.level.Level)
	assert.Equal(t, 10, p.player.Score, "score carries across levels")
	assert.Empty(t, p.items, "leftover items are cleared on advance")
}

func TestPlaying_BossLevel(t *testing.T) {
	t.Run("encounter disables the spawner", func(t *testing.T) {
		p := newScene(t, 4)
		enterLevel(t, p)

		require.Equal(t, state.PhaseBossEncounter, p.phase)
		require.NotNil(t, p.boss)

		for i := 0; i < 300; i++ {
			p.step(system.InputState{}, tick)
		}
		assert.Empty(t, p.items)
	})

	t.Run("boss fires after its interval", func(t *testing.T) {
		p := newScene(t, 4)
		enterLevel(t, p)

		fired := false
		for i := 0; i < 125 && !fired; i++ {
			p.step(system.InputState{}, tick)
			fired = len(p.missiles) > 0
		}
		assert.True(t, fired)
	})

	t.Run("blocked missile damages the boss, not the player", func(t *testing.T) {
		p := newScene(t, 4)
		enterLevel(t, p)
		require.True(t, p.player.ActivateShield())

		m := entity.NewMissile(p.player.Bounds().CenterX(), p.player.Y, 40, 40, 300, p.player)
		p.missiles = append(p.missiles, m)
		p.step(system.InputState{}, tick)

		assert.Equal(t, 1, p.boss.Hits)
		assert.Equal(t, 3, p.player.Lives)
	})

	t.Run("boss death pays the bonus and advances", func(t *testing.T) {
		p := newScene(t, 4)
		enterLevel(t, p)

		for i := 0; i < p.boss.MaxHits; i++ {
			p.boss.RegisterHit()
		}
		require.True(t, p.boss.Dead)

		next, err := p.step(system.InputState{}, tick)

		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, 50, p.player.Score)
		assert.Equal(t, state.PhaseTransitioning, p.phase)
		assert.Equal(t, 5, p.level.Level)
		assert.Nil(t, p.boss)
		assert.Empty(t, p.missiles)
	})
}

func TestPlaying_GameOver(t *testing.T) {
	p := newScene(t, 1)
	enterLevel(t, p)

	p.player.Lives = 1
	dropOnPlayer(p, "anvil", -1, entity.EffectNone)

	next, err := p.step(system.InputState{}, tick)

	require.NoError(t, err)
	require.IsType(t, &gameover.Scene{}, next)
}

func TestPlaying_Victory(t *testing.T) {
	p := newScene(t, 8)
	enterLevel(t, p)
	require.Equal(t, 450, p.level.AdvanceScore)

	p.player.Score = 450
	next, err := p.step(system.InputState{}, tick)

	require.NoError(t, err)
	require.IsType(t, &victory.Scene{}, next)
}

func TestPlaying_FallbackLevelNeverAdvancesByScore(t *testing.T) {
	cfg := config.Default()
	cfg.Levels = cfg.Levels[:1]
	cfg.Levels[0].AdvanceScore = 0
	p := New(config.NewStore(cfg), nil, 1)
	p.spawner = system.NewSpawner(rand.New(rand.NewSource(1)), p.screenW)
	enterLevel(t, p)

	p.player.Score = 100000
	p.step(system.InputState{}, tick)

	assert.Equal(t, state.PhasePlaying, p.phase)
	assert.Equal(t, 1, p.level.Level)
}

func TestPlaying_ReloadedConfigAppliesAtNextLevel(t *testing.T) {
	store := config.NewStore(config.Default())
	p := New(store, nil, 1)
	p.spawner = system.NewSpawner(rand.New(rand.NewSource(1)), p.screenW)
	enterLevel(t, p)

	tuned := config.Default()
	for i := range tuned.Levels {
		tuned.Levels[i].MaxItems = 99
	}
	store.Set(tuned)

	assert.NotEqual(t, 99, p.level.MaxItems, "running level keeps the old table")

	p.player.Score = p.level.AdvanceScore
	p.step(system.InputState{}, tick)
	p.step(system.InputState{}, transitionDuration)

	assert.Equal(t, 99, p.level.MaxItems, "next level load picks up the swap")
}
