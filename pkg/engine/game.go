// pkg/engine/game.go
package engine

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/opd-ai/go-hitscan/pkg/config"
	"github.com/opd-ai/go-hitscan/pkg/entity"
	"github.com/opd-ai/go-hitscan/pkg/event"
	"github.com/opd-ai/go-hitscan/pkg/physics"
	"github.com/opd-ai/go-hitscan/pkg/spawn"
)

// Stats counts what has happened since the game was created
type Stats struct {
	Frame      uint64
	ShotsFired uint64
	Hits       uint64
	Kills      uint64
	Spawned    uint64
}

// Game owns the complete simulation state. It is not safe for concurrent use;
// exactly one goroutine (the host loop) may call into it.
type Game struct {
	Config   *config.GameConfig
	Arena    physics.Rect
	Player   *entity.Player
	Enemies  []*entity.Enemy // insertion order
	Weapon   *entity.FireControl
	Spawner  *spawn.Controller
	EventBus *event.Bus
	Running  bool

	EnemySpeed   float64
	MaxDeltaTime float64 // 0 disables the cap

	LastUpdate time.Time
	now        func() time.Time
	rng        spawn.Rand
	stats      Stats
}

// NewGame creates a game from config with the player at the arena center and
// the opening wave already spawned. A nil rng is replaced by a PCG source
// seeded from config (or the clock when the seed is 0). A nil bus gets a
// private one.
func NewGame(cfg *config.GameConfig, rng spawn.Rand, bus *event.Bus) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if rng == nil {
		rng = newRand(cfg.Loop.Seed)
	}
	if bus == nil {
		bus = event.NewEventBus()
	}

	arena := physics.NewArena(cfg.Arena.Width, cfg.Arena.Height)

	player := entity.NewPlayer(arena.Center())
	player.Radius = cfg.Player.Radius
	player.Speed = cfg.Player.Speed

	weapon := entity.NewFireControl()
	weapon.ReloadInterval = cfg.Weapon.ReloadInterval
	weapon.Range = cfg.Weapon.Range

	spawner := spawn.NewController()
	spawner.Target = cfg.Spawn.Target
	spawner.ChancePercent = cfg.Spawn.ChancePercent
	spawner.EnemyRadius = cfg.Enemy.Radius
	spawner.EnemyHealth = cfg.Enemy.Health

	g := &Game{
		Config:       cfg,
		Arena:        arena,
		Player:       player,
		Weapon:       weapon,
		Spawner:      spawner,
		EventBus:     bus,
		EnemySpeed:   cfg.Enemy.Speed,
		MaxDeltaTime: cfg.Loop.MaxDeltaTime,
		now:          time.Now,
		rng:          rng,
	}
	g.LastUpdate = g.now()

	g.spawnOpeningWave(cfg.Spawn.InitialEnemies)
	return g
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SetClock replaces the wall clock used by Update and restarts the frame timer.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.LastUpdate = now()
}

// Start marks the game running and publishes GameStarted
func (g *Game) Start() {
	g.Running = true
	g.LastUpdate = g.now()
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// Stop halts the game and publishes GameEnded
func (g *Game) Stop() {
	g.Running = false
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}

// Update measures the wall-clock time since the previous Update, steps the
// simulation by it and returns the dt used.
func (g *Game) Update(in Input) float64 {
	dt := g.calculateDeltaTime()
	g.Step(dt, in)
	return dt
}

// calculateDeltaTime returns the seconds since the last update, capped at
// MaxDeltaTime when a cap is configured.
func (g *Game) calculateDeltaTime() float64 {
	now := g.now()
	deltaTime := now.Sub(g.LastUpdate).Seconds()
	g.LastUpdate = now

	if deltaTime < 0 {
		deltaTime = 0
	}
	if g.MaxDeltaTime > 0 && deltaTime > g.MaxDeltaTime {
		deltaTime = g.MaxDeltaTime
	}
	return deltaTime
}

// Step advances the simulation by dt seconds. The phases run in a fixed
// order: player movement, enemy steering, fire control, cleanup of dead
// enemies, repopulation.
func (g *Game) Step(dt float64, in Input) {
	g.movePlayer(dt, in)
	g.steerEnemies(dt)
	g.updateWeapon(dt, in)
	g.cleanupDeadEnemies()
	g.repopulate()
	g.stats.Frame++
}

func (g *Game) movePlayer(dt float64, in Input) {
	g.Player.Move(in.Intent(), dt, g.Arena)
}

// steerEnemies moves every enemy straight at the player's new position.
func (g *Game) steerEnemies(dt float64) {
	step := g.EnemySpeed * dt
	for _, enemy := range g.Enemies {
		enemy.MoveToward(g.Player.Position, step)
	}
}

func (g *Game) updateWeapon(dt float64, in Input) {
	g.Weapon.Tick(dt)
	if !g.Weapon.TryFire(in.Fire) {
		return
	}

	origin := g.Player.Position
	aim := in.Aim.Sub(origin).Normalize()
	target, distance := TraceShot(origin, aim, g.Enemies, g.Weapon.Range)

	g.stats.ShotsFired++
	g.EventBus.Publish(event.NewShotEvent(g, origin, aim, target != nil))
	if target == nil {
		return
	}

	g.stats.Hits++
	target.TakeDamage(g.Weapon.Damage)
	hit := event.NewEnemyEvent(event.EnemyHit, g, uint64(target.ID))
	hit.Distance = distance
	g.EventBus.Publish(hit)
}

// cleanupDeadEnemies drops enemies with no health left, keeping the
// survivors in order.
func (g *Game) cleanupDeadEnemies() {
	var dead []entity.ID
	for _, enemy := range g.Enemies {
		if !enemy.Alive() {
			dead = append(dead, enemy.ID)
		}
	}
	if len(dead) == 0 {
		return
	}

	g.Enemies = slices.DeleteFunc(g.Enemies, func(e *entity.Enemy) bool {
		return !e.Alive()
	})

	for _, id := range dead {
		g.stats.Kills++
		g.EventBus.Publish(event.NewEnemyEvent(event.EnemyDestroyed, g, uint64(id)))
	}
}

func (g *Game) repopulate() {
	var spawned *entity.Enemy
	g.Enemies, spawned = g.Spawner.Maintain(g.Enemies, g.spawnWidth(), g.spawnHeight(), g.rng)
	if spawned != nil {
		g.recordSpawn(spawned)
	}
}

func (g *Game) spawnOpeningWave(n int) {
	before := len(g.Enemies)
	g.Enemies = g.Spawner.Fill(g.Enemies, n, g.spawnWidth(), g.spawnHeight(), g.rng)
	for _, enemy := range g.Enemies[before:] {
		g.recordSpawn(enemy)
	}
}

func (g *Game) recordSpawn(enemy *entity.Enemy) {
	g.stats.Spawned++
	g.EventBus.Publish(event.NewEnemyEvent(event.EnemySpawned, g, uint64(enemy.ID)))
}

// Spawn positions are integers in [0, width) x [0, height).
func (g *Game) spawnWidth() int  { return max(1, int(g.Arena.Width())) }
func (g *Game) spawnHeight() int { return max(1, int(g.Arena.Height())) }

// Stats returns the running counters
func (g *Game) Stats() Stats {
	return g.stats
}
