package system

import (
	"math"

	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

const (
	pushRate      = 4.0  // radial separation speed factor on contact
	chainRadius   = 55.0 // max retarget distance for chain hits
	chainRadiusSq = chainRadius * chainRadius
)

// CollisionSystem resolves all per-tick spatial interactions: player-enemy
// contact, projectile hits, projectile interception. Every test uses
// squared distances.
type CollisionSystem struct {
	cfg *config.GameConfig
}

// NewCollisionSystem creates the collision resolution system.
func NewCollisionSystem(cfg *config.GameConfig) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

// Tick runs all collision passes for this tick, after motion integration.
func (s *CollisionSystem) Tick(w *sim.World, dt float64) {
	s.playerEnemyContact(w, dt)

	stale := s.projectilesVsEnemies(w)
	stale = s.interceptions(w) || stale
	stale = s.enemyProjectilesVsPlayer(w) || stale

	// Kills only flag Dying and the behavior pass retires them, so only
	// the projectile list can need compacting here. The rescan runs only
	// when a pass released or skipped an inactive record.
	if stale {
		w.CompactProjectiles()
	}
}

// playerEnemyContact pushes overlapping enemies radially outward and fires
// a throttled contact-damage event when penetration is deep.
func (s *CollisionSystem) playerEnemyContact(w *sim.World, dt float64) {
	combatCfg := s.cfg.Tuning.Combat
	playerPos := w.Player.Pos

	for _, e := range w.Enemies {
		if !e.Active || e.Dying {
			continue
		}
		if e.ContactTimer > 0 {
			e.ContactTimer -= dt
		}

		combined := e.BodyRadius + combatCfg.PlayerHitRadius
		distSq := e.Pos.DistSq(playerPos)
		if distSq >= combined*combined {
			continue
		}

		dist := math.Sqrt(distSq)
		pen := combined - dist

		dir := e.Pos.Sub(playerPos).Normalized()
		if dir.MagSq() == 0 {
			dir.Z = 1 // dead-center overlap pushes back along depth
		}
		e.Pos = e.Pos.Add(dir.Scale(pen * pushRate * dt))

		if pen > combined/2 && e.ContactTimer <= 0 {
			e.ContactTimer = combatCfg.ContactInterval
			w.Player.TakeDamage(e.ContactDamage)
			w.Emit(sim.Event{Kind: sim.EventPlayerHit, Damage: e.ContactDamage, Pos: e.Pos})
		}
	}
}

// projectilesVsEnemies resolves player-side projectile hits, including the
// payload-specific survival rules.
func (s *CollisionSystem) projectilesVsEnemies(w *sim.World) bool {
	stale := false
	for _, p := range w.Projectiles {
		if !p.Active {
			stale = true
			continue
		}
		if p.Side != entity.SidePlayer {
			continue
		}

		if p.Payload == entity.PayloadArea && p.Radius > 0 {
			s.areaPulse(w, p)
			continue
		}

		for _, e := range w.Enemies {
			if !e.Active || e.Dying {
				continue
			}
			if p.Pos.DistSq(e.Pos) >= e.HitRadius*e.HitRadius {
				continue
			}

			s.damageEnemy(w, e, p.Damage)
			s.resolvePayloadHit(w, p, e)
			if !p.Active {
				stale = true
			}
			break
		}
	}
	return stale
}

// areaPulse damages every enemy the expansion front swept over this tick:
// inside the new radius but outside the previous one, so each enemy is hit
// exactly once as the front passes.
func (s *CollisionSystem) areaPulse(w *sim.World, p *entity.Projectile) {
	newSq := p.Radius * p.Radius
	oldSq := p.Phase * p.Phase

	for _, e := range w.Enemies {
		if !e.Active || e.Dying {
			continue
		}
		distSq := p.Pos.DistSq(e.Pos)
		if distSq <= newSq && distSq > oldSq {
			s.damageEnemy(w, e, p.Damage)
		}
	}
}

// resolvePayloadHit decides whether the projectile survives its hit.
func (s *CollisionSystem) resolvePayloadHit(w *sim.World, p *entity.Projectile, hit *entity.Entity) {
	switch p.Payload {
	case entity.PayloadPiercing:
		if p.PierceLeft > 0 {
			p.PierceLeft--
			return
		}

	case entity.PayloadChaining:
		if p.ChainLeft > 0 {
			if next := nearestOtherEnemy(w, hit, p); next != nil {
				p.ChainLeft--
				p.Vel = next.Pos.Sub(p.Pos).Normalized().Scale(p.Vel.Mag())
				return
			}
		}

	case entity.PayloadDelayedBurst:
		if p.StuckTo == 0 {
			p.StuckTo = hit.ID
			return
		}

	case entity.PayloadArea:
		// First contact arms the pulse; expansion happens in the
		// projectile pass
		if p.Radius == 0 {
			p.Radius = 0.01
			p.Phase = 0
			return
		}
	}

	w.ReleaseProjectile(p)
}

// nearestOtherEnemy finds the closest live enemy to the chain projectile,
// excluding the one just hit.
func nearestOtherEnemy(w *sim.World, exclude *entity.Entity, p *entity.Projectile) *entity.Entity {
	var best *entity.Entity
	bestSq := chainRadiusSq
	for _, e := range w.Enemies {
		if !e.Active || e.Dying || e == exclude {
			continue
		}
		if d := p.Pos.DistSq(e.Pos); d < bestSq {
			bestSq = d
			best = e
		}
	}
	return best
}

// interceptions removes mutually colliding opposing projectiles.
func (s *CollisionSystem) interceptions(w *sim.World) bool {
	radius := s.cfg.Tuning.Combat.InterceptRadius
	radiusSq := radius * radius

	stale := false
	for _, pp := range w.Projectiles {
		if !pp.Active || pp.Side != entity.SidePlayer {
			continue
		}
		for _, ep := range w.Projectiles {
			if !ep.Active || ep.Side != entity.SideEnemy {
				continue
			}
			if pp.Pos.DistSq(ep.Pos) < radiusSq {
				w.ReleaseProjectile(pp)
				w.ReleaseProjectile(ep)
				stale = true
				w.Emit(sim.Event{Kind: sim.EventProjectileBlocked, Pos: pp.Pos})
				break
			}
		}
	}
	return stale
}

// enemyProjectilesVsPlayer applies shield-first damage on enemy shots that
// reach the player.
func (s *CollisionSystem) enemyProjectilesVsPlayer(w *sim.World) bool {
	radius := s.cfg.Tuning.Combat.PlayerHitRadius
	radiusSq := radius * radius

	stale := false
	for _, p := range w.Projectiles {
		if !p.Active || p.Side != entity.SideEnemy {
			continue
		}
		if p.Pos.DistSq(w.Player.Pos) >= radiusSq {
			continue
		}
		w.ReleaseProjectile(p)
		stale = true
		w.Player.TakeDamage(p.Damage)
		w.Emit(sim.Event{Kind: sim.EventPlayerHit, Damage: p.Damage, Pos: p.Pos})
	}
	return stale
}

// damageEnemy applies a hit, and on a kill flags the death animation,
// awards score and rolls the stage-gated item drop.
func (s *CollisionSystem) damageEnemy(w *sim.World, e *entity.Entity, damage int) {
	killed := e.TakeDamage(damage, w.Elapsed)
	if !killed {
		return
	}

	e.StartDying()
	w.AddScore(e.ScoreValue)
	w.Emit(sim.Event{
		Kind:      sim.EventEnemyDestroyed,
		EnemyType: e.Type,
		Stage:     w.Stage,
		Pos:       e.Pos,
	})

	// Drops only appear from the second stage on
	if w.Stage >= 1 && w.RNG.Float64() < s.cfg.Tuning.Combat.DropChance {
		w.Emit(sim.Event{Kind: sim.EventItemPickup, Pos: e.Pos})
	}
}
