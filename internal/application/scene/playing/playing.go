// Package playing provides the main gameplay scene: the falling-item
// catch loop, level progression and the boss encounter.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/hmelo/kitchenrush/internal/application/hud"
	"github.com/hmelo/kitchenrush/internal/application/scene"
	"github.com/hmelo/kitchenrush/internal/application/scene/gameover"
	"github.com/hmelo/kitchenrush/internal/application/scene/victory"
	"github.com/hmelo/kitchenrush/internal/application/state"
	"github.com/hmelo/kitchenrush/internal/application/system"
	"github.com/hmelo/kitchenrush/internal/domain/entity"
	"github.com/hmelo/kitchenrush/internal/infrastructure/assets"
	"github.com/hmelo/kitchenrush/internal/infrastructure/config"
)

const (
	transitionDuration = 2.0
	bossY              = 60.0
	playerBottomMargin = 10.0
	musicVolume        = 0.5
)

// Sound effects and their volumes.
const (
	sndCollect  = "audio/collect.wav"
	sndLoseLife = "audio/lose_life.wav"
	sndMissile  = "audio/missile_launch.wav"
	sndShield   = "audio/shield.wav"
	sndHit      = "audio/hit.wav"
	sndLevelUp  = "audio/level_up.wav"
	sndExplode  = "audio/explosion.wav"

	volCollect  = 0.7
	volLoseLife = 0.8
	volMissile  = 0.6
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorShield   = color.RGBA{80, 160, 240, 120}
	colorItem     = color.RGBA{255, 215, 0, 255}
	colorBoss     = color.RGBA{200, 100, 100, 255}
	colorMissile  = color.RGBA{255, 100, 100, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
	colorBanner   = color.RGBA{255, 255, 255, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	store *config.Store
	cfg   *config.Config
	lib   *assets.Library
	hud   *hud.HUD

	phase  state.Phase
	level  config.LevelConfig
	player *entity.Player

	items    []*entity.Item
	missiles []*entity.Missile
	boss     *entity.Boss

	inputSystem *system.InputSystem
	spawner     *system.Spawner
	collisions  *system.Collisions

	screenW float64
	screenH float64

	transitionTimer float64
	cutscene        *assets.Cutscene

	// Deterministic RNG
	rng *rand.Rand
}

// New creates the gameplay scene starting at the given level. The store
// is re-read at every level load, so a live-reloaded tuning file takes
// effect at the next transition.
func New(store *config.Store, lib *assets.Library, startLevel int) *Playing {
	cfg := store.Get()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	screenW := float64(cfg.Display.Width)
	screenH := float64(cfg.Display.Height)

	tun := entity.Tuning{
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		Speed:           cfg.Player.Speed,
		Lives:           cfg.Player.Lives,
		ShieldDuration:  cfg.Player.ShieldDuration,
		ShieldCooldown:  cfg.Player.ShieldCooldown,
		SlipDuration:    cfg.Player.SlipDuration,
		BoostMultiplier: cfg.Player.BoostMultiplier,
		BoostDuration:   cfg.Player.BoostDuration,
	}
	player := entity.NewPlayer(
		(screenW-tun.Width)/2,
		screenH-tun.Height-playerBottomMargin,
		tun,
	)

	p := &Playing{
		store:       store,
		cfg:         cfg,
		lib:         lib,
		hud:         hud.New(lib, screenW),
		player:      player,
		inputSystem: system.NewInputSystem(),
		spawner:     system.NewSpawner(rng, screenW),
		collisions:  system.NewCollisions(),
		screenW:     screenW,
		screenH:     screenH,
		rng:         rng,
	}
	p.beginTransition(startLevel)
	return p
}

// beginTransition freezes the world, loads the level row and queues the
// handoff cutscene when one exists.
func (p *Playing) beginTransition(to int) {
	p.cfg = p.store.Get()
	from := p.level.Level

	p.level = p.cfg.LevelFor(to)
	p.phase = state.PhaseTransitioning
	p.transitionTimer = transitionDuration

	p.items = p.items[:0]
	p.missiles = p.missiles[:0]
	p.boss = nil
	p.player.ResetPosition(
		(p.screenW-p.player.W)/2,
		p.screenH-p.player.H-playerBottomMargin,
	)

	if from > 0 {
		p.cutscene = p.lib.Cutscene(from, to)
	}
}

// enterLevel arms the spawner and music for the loaded level and opens
// the boss encounter when the row carries one.
func (p *Playing) enterLevel() {
	p.spawner.Reset(p.level.SpawnInterval)

	music := p.lib.Music()
	music.SetVolume(musicVolume)
	music.Switch(p.level.Music)

	if b := p.level.Boss; b != nil {
		p.boss = entity.NewBoss(
			p.screenW/2, bossY,
			b.Width, b.Height, b.Speed,
			b.FireInterval, b.MaxHits,
			b.MissileSpeed, b.MissileWidth, b.MissileHeight,
		)
		p.phase = state.PhaseBossEncounter
	} else {
		p.phase = state.PhasePlaying
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.lib.Music().Update(dt)
	return p.step(p.inputSystem.GetInput(), dt)
}

// step advances one tick from an explicit input snapshot. Order within a
// tick: input, entity movement, spawning, boss fire, item collisions,
// missile collisions, then score and level checks.
func (p *Playing) step(input system.InputState, dt float64) (scene.Scene, error) {
	if p.cutscene != nil {
		if input.AnyPressed {
			p.cutscene.Skip()
		}
		p.cutscene.Update(dt)
		if p.cutscene.Done() {
			p.cutscene = nil
		}
		return nil, nil
	}

	if p.phase == state.PhaseTransitioning {
		p.transitionTimer -= dt
		if p.transitionTimer <= 0 {
			p.enterLevel()
		}
		return nil, nil
	}

	if p.inputSystem.UpdatePlayer(p.player, input, dt, p.screenW) {
		p.lib.PlaySound(sndShield, volCollect)
	}

	for _, it := range p.items {
		it.Update(dt, p.screenH)
	}

	// Spawning pauses for the boss encounter; items already in flight
	// keep falling. A fresh item holds its spawn position until the
	// next tick.
	if p.phase == state.PhasePlaying {
		if it := p.spawner.Update(dt, p.population(), p.level, p.cfg.Items, p.cfg.ItemSpeed); it != nil {
			p.items = append(p.items, it)
		}
	}

	if p.boss != nil {
		p.boss.Update(dt, p.screenW)
	}
	for _, m := range p.missiles {
		m.Update(dt, p.screenW, p.screenH)
	}
	// Fire after movement so a fresh missile holds its launch position
	// until the next tick, but before collisions so it can already hit.
	if p.boss != nil && p.boss.ReadyToFire() {
		p.missiles = append(p.missiles, p.boss.Fire(p.player))
		p.lib.PlaySound(sndMissile, volMissile)
	}

	for _, outcome := range p.collisions.CollectItems(p.player, p.items) {
		p.playOutcome(outcome)
	}
	if p.boss != nil {
		blocked, unblocked := p.collisions.ResolveMissiles(p.player, p.missiles, p.boss)
		if blocked > 0 {
			p.lib.PlaySound(sndHit, volCollect)
		}
		if unblocked > 0 {
			p.lib.PlaySound(sndLoseLife, volLoseLife)
		}
	}
	p.compact()

	if p.player.Lives <= 0 {
		return gameover.New(p.player.Score, int(p.screenW), int(p.screenH), p.restart), nil
	}

	if p.boss != nil && p.boss.Dead {
		p.player.Score += p.level.Boss.Bonus
		p.lib.PlaySound(sndExplode, volCollect)
		return p.advance()
	}

	// A zero advance score marks a level that never advances by score
	// alone (the fallback row).
	if p.phase == state.PhasePlaying && p.level.AdvanceScore > 0 && p.player.Score >= p.level.AdvanceScore {
		return p.advance()
	}

	return nil, nil
}

// advance moves past the current level: the next row when one remains,
// the victory screen after the last.
func (p *Playing) advance() (scene.Scene, error) {
	if p.level.Level >= p.cfg.MaxLevel() {
		return victory.New(p.player.Score, int(p.screenW), int(p.screenH), p.restart), nil
	}
	p.lib.PlaySound(sndLevelUp, volCollect)
	p.beginTransition(p.level.Level + 1)
	return nil, nil
}

func (p *Playing) restart() scene.Scene {
	return New(p.store, p.lib, 1)
}

func (p *Playing) playOutcome(o system.ItemOutcome) {
	switch o {
	case system.OutcomeScore, system.OutcomeBoost:
		p.lib.PlaySound(sndCollect, volCollect)
	case system.OutcomeDamage:
		p.lib.PlaySound(sndLoseLife, volLoseLife)
	}
}

func (p *Playing) population() int {
	n := 0
	for _, it := range p.items {
		if it.Active {
			n++
		}
	}
	return n
}

// compact drops deactivated items and missiles, keeping order.
func (p *Playing) compact() {
	live := p.items[:0]
	for _, it := range p.items {
		if it.Active {
			live = append(live, it)
		}
	}
	p.items = live

	flying := p.missiles[:0]
	for _, m := range p.missiles {
		if m.Active {
			flying = append(flying, m)
		}
	}
	p.missiles = flying
}

// OnEnter implements scene.Scene.
func (p *Playing) OnEnter() {}

// OnExit stops the music when leaving gameplay.
func (p *Playing) OnExit() {
	p.lib.Music().Stop()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if p.cutscene != nil {
		p.cutscene.Draw(screen)
		return
	}

	p.drawItems(screen)
	p.drawBoss(screen)
	p.drawMissiles(screen)
	p.drawPlayer(screen)

	p.hud.Draw(screen, p.player.Score, p.player.Lives, p.player.ShieldReady())

	if p.boss != nil && !p.boss.Dead {
		p.drawBossHealth(screen)
	}
	if p.phase == state.PhaseTransitioning {
		p.drawBanner(screen)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	path := p.cfg.Player.Sprite
	if p.player.ShieldActive {
		path = p.cfg.Player.ShieldSprite
	}
	sprite := p.lib.Sprite(path, int(p.player.W), int(p.player.H))
	drawSprite(screen, sprite, p.player.Bounds(), colorPlayer)

	if p.player.ShieldActive && sprite == nil {
		b := p.player.Bounds()
		ebitenutil.DrawRect(screen, b.X-4, b.Y-4, b.W+8, b.H+8, colorShield)
	}
}

func (p *Playing) drawItems(screen *ebiten.Image) {
	for _, it := range p.items {
		if !it.Active {
			continue
		}
		def := p.cfg.Items[string(it.Kind)]
		sprite := p.lib.Sprite(def.Sprite, int(it.W), int(it.H))
		drawSprite(screen, sprite, it.Bounds(), colorItem)
	}
}

func (p *Playing) drawBoss(screen *ebiten.Image) {
	if p.boss == nil || p.boss.Dead {
		return
	}
	sprite := p.lib.Sprite(p.level.Boss.Sprite, int(p.boss.W), int(p.boss.H))
	drawSprite(screen, sprite, p.boss.Bounds(), colorBoss)
}

func (p *Playing) drawMissiles(screen *ebiten.Image) {
	for _, m := range p.missiles {
		if !m.Active {
			continue
		}
		var path string
		if p.level.Boss != nil {
			path = p.level.Boss.MissileSprite
		}
		sprite := p.lib.Sprite(path, int(m.W), int(m.H))
		drawSprite(screen, sprite, m.Bounds(), colorMissile)
	}
}

func (p *Playing) drawBossHealth(screen *ebiten.Image) {
	barW := p.screenW / 2
	barX := (p.screenW - barW) / 2
	barY := 48.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*p.boss.HealthRatio(), barH, colorHealthFG)
}

func (p *Playing) drawBanner(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, p.screenW, p.screenH, colorOverlay)

	label := fmt.Sprintf("LEVEL %d", p.level.Level)
	x := int(p.screenW/2) - len(label)*4
	y := int(p.screenH / 2)
	text.Draw(screen, label, basicfont.Face7x13, x, y, colorBanner)
}

// drawSprite paints img stretched over r, or a solid rect when the
// sprite could not be provided (asset library absent).
func drawSprite(screen, img *ebiten.Image, r entity.Rect, fallback color.RGBA) {
	if img == nil {
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, fallback)
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}
