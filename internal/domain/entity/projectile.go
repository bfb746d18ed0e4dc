package entity

import "github.com/younwookim/sg/internal/domain/vmath"

// Projectile represents a pooled projectile record. Payload-specific
// behavior is mutable sub-state advanced by the projectile system; a record
// whose payload sub-state is malformed degrades to Standard behavior.
type Projectile struct {
	ID     EntityID
	Active bool
	Side   Side

	Payload PayloadType

	Pos vmath.Vec3
	Vel vmath.Vec3

	Damage int

	// Lifetime decreases monotonically; at or below zero the projectile
	// is collected before the next tick.
	Lifetime  float64
	SpawnedAt float64

	// Payload sub-state
	PierceLeft int      // Piercing: remaining pass-throughs
	ChainLeft  int      // Chaining: remaining retargets
	StuckTo    EntityID // DelayedBurst: target the projectile is riding
	BurstTimer float64  // DelayedBurst: countdown to detonation
	Phase      float64  // Spiral: accumulated curve phase
	Radius     float64  // Area: current pulse radius
	GrowRate   float64  // Area: pulse expansion speed
}

// lifetimeEpsilon absorbs the float residue of repeated fixed-dt
// subtraction: a lifetime that is an exact multiple of the tick length
// must expire on its final tick, not one tick late.
const lifetimeEpsilon = 1e-9

// Expired reports whether the shared termination rule applies: lifetime
// spent or squared distance from the origin beyond the maximum range.
func (p *Projectile) Expired(maxRangeSq float64) bool {
	return p.Lifetime <= lifetimeEpsilon || p.Pos.MagSq() > maxRangeSq
}

// ResetProjectile restores a pooled record to its zero state before reuse.
func ResetProjectile(p *Projectile) {
	*p = Projectile{}
}
