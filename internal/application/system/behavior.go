package system

import (
	"math"

	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// Movement tuning. All motion is a pure function of (seed, elapsed) so a
// recorded seed replays identically.
const (
	droneSwayAmp   = 6.0  // lateral sway amplitude for the straight approach
	droneSwayFreq  = 1.3
	hoverDepth     = 45.0 // depth band where strafers stop closing
	strafeAmp      = 22.0
	strafeFreq     = 0.8
	recenterRate   = 0.6  // pull toward the anchor when drifting wide
	jinkFreqX      = 7.0
	jinkFreqY      = 9.3
	jinkAmp        = 14.0
	jinkCloseRate  = 0.8  // jinkers close at a fraction of their speed
	orbitRate      = 0.9  // elite orbit angular speed (rad/s)
	orbitCloseRate = 0.25
	tumbleAccel    = 9.0  // death tumble acceleration (rad/s²)
)

// BehaviorSystem advances every active enemy each tick: death animation,
// type-dispatched kinematic movement, the unconditional depth wall clamp
// and out-of-bounds despawn.
type BehaviorSystem struct {
	cfg *config.GameConfig
}

// NewBehaviorSystem creates the enemy behavior system.
func NewBehaviorSystem(cfg *config.GameConfig) *BehaviorSystem {
	return &BehaviorSystem{cfg: cfg}
}

// Tick advances all enemies by dt.
func (s *BehaviorSystem) Tick(w *sim.World, dt float64) {
	bounds := s.cfg.Tuning.Bounds
	lateralMaxSq := bounds.LateralMax * bounds.LateralMax
	despawned := false

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}

		if e.Dying {
			s.advanceDeath(w, e, dt)
			despawned = despawned || !e.Active
			continue
		}

		switch e.Type {
		case entity.EnemyDrone:
			s.moveDrone(e, w.Elapsed, dt)
		case entity.EnemyStrafer:
			s.moveStrafer(e, w.Elapsed, dt)
		case entity.EnemyJinker:
			s.moveJinker(e, w.Elapsed, dt)
		case entity.EnemyElite:
			s.moveOrbit(e, w.Elapsed, dt)
		case entity.EnemyBoss:
			s.moveBoss(e, dt)
		}

		// No enemy type may ever cross the wall, regardless of what its
		// own movement rule just did.
		if e.Pos.Z < bounds.WallZ {
			e.Pos.Z = bounds.WallZ
		}
		if e.Pos.Y < -bounds.LateralMax {
			e.Pos.Y = -bounds.LateralMax
		}

		s.fire(w, e, dt)

		// Dying enemies are exempt so their animation can finish
		if e.Pos.Z > bounds.FarZ || e.Pos.LateralSq() > lateralMaxSq {
			w.ReleaseEnemy(e)
			despawned = true
		}
	}

	if despawned {
		w.CompactEnemies()
	}
}

// advanceDeath runs the disintegration animation: an accelerating tumble
// until the fixed duration elapses, then the record goes back to the pool.
func (s *BehaviorSystem) advanceDeath(w *sim.World, e *entity.Entity, dt float64) {
	e.DeathTimer += dt

	spin := tumbleAccel * e.DeathTimer
	e.Rot.X += spin * dt
	e.Rot.Z += spin * 0.7 * dt

	if e.DeathTimer > s.cfg.Tuning.Combat.DisintegrationDuration {
		w.ReleaseEnemy(e)
	}
}

// moveDrone is the straight approach: closes depth at full speed with a
// slight seeded sway.
func (s *BehaviorSystem) moveDrone(e *entity.Entity, now, dt float64) {
	phase := e.SeedPhase()
	e.Vel = vmath.Vec3{
		X: math.Sin(now*droneSwayFreq+phase) * droneSwayAmp,
		Y: math.Cos(now*droneSwayFreq*0.7+phase) * droneSwayAmp * 0.4,
		Z: -e.Speed,
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// moveStrafer closes to a hover depth, then strafes laterally around its
// anchor, re-centering when it drifts toward the playfield edge.
func (s *BehaviorSystem) moveStrafer(e *entity.Entity, now, dt float64) {
	phase := e.SeedPhase()

	vz := 0.0
	if e.Pos.Z > hoverDepth {
		vz = -e.Speed
	}

	targetX := e.Anchor.X + math.Sin(now*strafeFreq+phase)*strafeAmp
	// Drift wide of the anchor pulls the hover center back toward the axis
	edge := s.cfg.Tuning.Bounds.LateralMax * 0.8
	if math.Abs(targetX) > edge {
		e.Anchor.X -= e.Anchor.X * recenterRate * dt
	}

	e.Vel = vmath.Vec3{
		X: (targetX - e.Pos.X) * 2.0,
		Y: (e.Anchor.Y - e.Pos.Y) * 0.5,
		Z: vz,
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// moveJinker is the erratic high-frequency sinusoidal jitter.
func (s *BehaviorSystem) moveJinker(e *entity.Entity, now, dt float64) {
	phase := e.SeedPhase()
	e.Vel = vmath.Vec3{
		X: math.Sin(now*jinkFreqX+phase) * jinkAmp,
		Y: math.Cos(now*jinkFreqY+phase*1.7) * jinkAmp,
		Z: -e.Speed * jinkCloseRate,
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// moveOrbit circles the player origin in polar coordinates while slowly
// closing depth.
func (s *BehaviorSystem) moveOrbit(e *entity.Entity, now, dt float64) {
	phase := e.SeedPhase()
	radius := math.Sqrt(e.Anchor.LateralSq())
	if radius < 12 {
		radius = 12
	}

	angle := now*orbitRate + phase
	targetX := math.Cos(angle) * radius
	targetY := math.Sin(angle) * radius * 0.5

	vz := 0.0
	if e.Pos.Z > e.FloorZ {
		vz = -e.Speed * orbitCloseRate
	}

	e.Vel = vmath.Vec3{
		X: (targetX - e.Pos.X) * 2.0,
		Y: (targetY - e.Pos.Y) * 2.0,
		Z: vz,
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// moveBoss is the slow imposing approach with a floor on closing distance.
func (s *BehaviorSystem) moveBoss(e *entity.Entity, dt float64) {
	vz := 0.0
	if e.Pos.Z > e.FloorZ {
		vz = -e.Speed
	}
	e.Vel = vmath.Vec3{Z: vz}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	if e.Pos.Z < e.FloorZ {
		e.Pos.Z = e.FloorZ
	}
}

// fire spawns an enemy projectile aimed at the player when the archetype's
// cooldown allows it.
func (s *BehaviorSystem) fire(w *sim.World, e *entity.Entity, dt float64) {
	if e.FireCooldown <= 0 {
		return
	}
	e.FireTimer -= dt
	if e.FireTimer > 0 {
		return
	}
	e.FireTimer = e.FireCooldown

	dir := w.Player.Pos.Sub(e.Pos).Normalized()
	p := w.AcquireProjectile()
	p.Side = entity.SideEnemy
	p.Payload = entity.PayloadStandard
	p.Pos = e.Pos
	p.Vel = dir.Scale(e.ProjSpeed)
	p.Damage = e.ProjDamage
	p.Lifetime = enemyProjectileLifetime
	p.SpawnedAt = w.Elapsed
}

// enemyProjectileLifetime bounds enemy shots that miss everything.
const enemyProjectileLifetime = 6.0
