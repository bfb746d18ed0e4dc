package entity

import (
	"math"

	"github.com/younwookim/sg/internal/domain/vmath"
)

// Entity represents a pooled enemy record. Records are allocated once and
// recycled through the pool; the Active flag marks participation in the
// simulation.
type Entity struct {
	ID     EntityID
	Active bool
	Type   EnemyType
	Side   Side

	Pos   vmath.Vec3
	Rot   vmath.Vec3
	Scale vmath.Vec3
	Vel   vmath.Vec3

	// Anchor is the spawn position; hover re-centering and orbit
	// patterns move relative to it.
	Anchor vmath.Vec3

	Health    int
	MaxHealth int

	ContactDamage int
	ScoreValue    int
	Speed         float64

	// Collision radii, stamped from the archetype at spawn so the
	// per-tick loops never consult config tables.
	HitRadius  float64
	BodyRadius float64

	// FloorZ is the closest depth this entity's own movement rule will
	// approach. The unconditional wall clamp still applies after it.
	FloorZ float64

	// Enemy fire
	FireCooldown float64
	FireTimer    float64
	ProjDamage   int
	ProjSpeed    float64

	// Contact damage throttle (at most one hit per second per enemy)
	ContactTimer float64

	SpawnedAt float64

	// Seed drives deterministic-looking idle motion as a pure function
	// of (Seed, elapsed time).
	Seed uint64

	Dying      bool
	DeathTimer float64

	// LastHitAt drives hit-flash coloring in the render layer
	LastHitAt float64
}

// TakeDamage applies damage to the entity, clamping health at zero.
// Returns true if the hit reduced health to zero.
func (e *Entity) TakeDamage(damage int, now float64) bool {
	if damage < 0 {
		damage = 0
	}
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	e.LastHitAt = now
	return e.Health == 0
}

// StartDying flags the entity for its disintegration animation. The entity
// stays active (and rendered) until the death timer completes.
func (e *Entity) StartDying() {
	e.Dying = true
	e.DeathTimer = 0
	e.Health = 0
	e.Vel = vmath.Vec3{}
}

// HealthRatio returns current health as a fraction of max, for color-coding.
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// SeedPhase returns the per-entity phase offset in [0, 2π) derived from the
// random seed. Combined with elapsed time it makes motion look organic
// while staying reproducible for replay.
func (e *Entity) SeedPhase() float64 {
	return float64(e.Seed%4096) / 4096.0 * 2 * math.Pi
}

// ResetEntity restores a pooled record to its zero state before reuse.
// Used as the pool's reset function by the spawner.
func ResetEntity(e *Entity) {
	*e = Entity{
		Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
	}
}
