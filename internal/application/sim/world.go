// Package sim holds the canonical mutable world snapshot and the
// fixed-timestep loop that drives the simulation systems over it.
package sim

import (
	"math/rand"

	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// Input is the per-tick input snapshot, captured once before systems run.
type Input struct {
	MoveX float64 // -1..1
	MoveY float64 // -1..1
	Boost bool
	Fire  bool

	// SelectWeapon switches the equipped payload; -1 means no change.
	SelectWeapon int
}

// World is the canonical mutable simulation snapshot. It is passed by
// reference to every system in sequence each tick; ownership during a tick
// belongs exclusively to the currently executing system, so there is no
// locking.
type World struct {
	Config *config.GameConfig

	Player      *entity.Player
	Enemies     []*entity.Entity
	Projectiles []*entity.Projectile

	Score   int
	Elapsed float64
	Delta   float64
	Tick    uint64
	Stage   int

	Input Input

	// RNG is the single seeded source for all simulation randomness,
	// so a recorded seed replays deterministically.
	RNG  *rand.Rand
	Seed int64

	enemyPool *entity.Pool[entity.Entity]
	projPool  *entity.Pool[entity.Projectile]
	nextID    entity.EntityID

	events []Event
	sinks  []EventSink
}

// NewWorld creates a world snapshot with pre-seeded entity pools.
func NewWorld(cfg *config.GameConfig, seed int64) *World {
	prealloc := cfg.Tuning.Sim.PoolPrealloc
	pc := cfg.Tuning.Player

	return &World{
		Config:      cfg,
		Player:      entity.NewPlayer(pc.MaxHealth, pc.MaxShield, pc.MaxEnergy),
		Enemies:     make([]*entity.Entity, 0, prealloc),
		Projectiles: make([]*entity.Projectile, 0, prealloc),
		RNG:         rand.New(rand.NewSource(seed)),
		Seed:        seed,
		enemyPool:   entity.NewPool(prealloc, func() *entity.Entity { return &entity.Entity{} }),
		projPool:    entity.NewPool(prealloc, func() *entity.Projectile { return &entity.Projectile{} }),
		nextID:      1, // 0 is "nil"
		Input:       Input{SelectWeapon: -1},
	}
}

// NextID returns a new unique entity ID.
func (w *World) NextID() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// AcquireEnemy pulls a reset enemy record from the pool, stamps an ID and
// appends it to the live list.
func (w *World) AcquireEnemy() *entity.Entity {
	e := w.enemyPool.Acquire(entity.ResetEntity)
	e.ID = w.NextID()
	e.Active = true
	w.Enemies = append(w.Enemies, e)
	return e
}

// ReleaseEnemy deactivates an enemy and returns it to the pool. The record
// stays in the live list until the next compaction pass. Safe to call
// twice for the same record.
func (w *World) ReleaseEnemy(e *entity.Entity) {
	e.Active = false
	w.enemyPool.Release(e)
}

// CompactEnemies removes inactive records from the live list in place.
func (w *World) CompactEnemies() {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Active {
			live = append(live, e)
		}
	}
	w.Enemies = live
}

// AcquireProjectile pulls a reset projectile record from the pool.
func (w *World) AcquireProjectile() *entity.Projectile {
	p := w.projPool.Acquire(entity.ResetProjectile)
	p.ID = w.NextID()
	p.Active = true
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// ReleaseProjectile deactivates a projectile and returns it to the pool.
func (w *World) ReleaseProjectile(p *entity.Projectile) {
	p.Active = false
	w.projPool.Release(p)
}

// CompactProjectiles removes inactive records from the live list in place.
func (w *World) CompactProjectiles() {
	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			live = append(live, p)
		}
	}
	w.Projectiles = live
}

// CountType re-queries the live count of active enemies of one type.
// Phase-transition checks call this instead of caching counts, so a
// same-tick spawn or death is never missed.
func (w *World) CountType(t entity.EnemyType) int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active && e.Type == t {
			n++
		}
	}
	return n
}

// AddScore adjusts the score and emits a score-changed event.
func (w *World) AddScore(delta int) {
	if delta == 0 {
		return
	}
	w.Score += delta
	w.Emit(Event{Kind: EventScoreChanged, Score: w.Score, ScoreDelta: delta, Stage: w.Stage})
}

// Emit appends an event to the current tick's batch.
func (w *World) Emit(ev Event) {
	w.events = append(w.events, ev)
}

// AddSink registers a consumer for per-tick event batches.
func (w *World) AddSink(sink EventSink) {
	w.sinks = append(w.sinks, sink)
}

// FlushEvents delivers the batched events once at the tick boundary and
// clears the buffer. With no events buffered, sinks are not called.
func (w *World) FlushEvents() {
	if len(w.events) == 0 {
		return
	}
	for _, sink := range w.sinks {
		sink(w.events)
	}
	w.events = w.events[:0]
}

// PendingEvents returns the number of events buffered for this tick.
func (w *World) PendingEvents() int {
	return len(w.events)
}
