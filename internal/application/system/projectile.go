package system

import (
	"math"

	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

const (
	spiralAmp = 26.0 // lateral curve amplitude, pairs with the payload rate
)

// ProjectileSystem integrates projectile motion, advances payload
// sub-state and collects expired records.
type ProjectileSystem struct {
	cfg *config.GameConfig
}

// NewProjectileSystem creates the projectile system.
func NewProjectileSystem(cfg *config.GameConfig) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// Tick advances all projectiles by dt.
func (s *ProjectileSystem) Tick(w *sim.World, dt float64) {
	maxRange := s.cfg.Tuning.Projectile.MaxRange
	maxRangeSq := maxRange * maxRange

	anyExpired := false
	for _, p := range w.Projectiles {
		if !p.Active {
			anyExpired = true
			continue
		}

		s.advancePayload(w, p, dt)

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Lifetime -= dt

		if p.Expired(maxRangeSq) {
			w.ReleaseProjectile(p)
			anyExpired = true
		}
	}

	// Compaction rescans the whole list; skip it when nothing qualified
	if anyExpired {
		w.CompactProjectiles()
	}
}

// advancePayload mutates the payload-specific sub-state. A record with a
// payload this switch does not know degrades to Standard behavior.
func (s *ProjectileSystem) advancePayload(w *sim.World, p *entity.Projectile, dt float64) {
	switch p.Payload {
	case entity.PayloadArea:
		// Phase holds the previous radius; the collision pass damages
		// enemies the expansion front swept over this tick.
		p.Phase = p.Radius
		p.Radius += p.GrowRate * dt

	case entity.PayloadSpiral:
		p.Phase += p.GrowRate * dt
		forward := p.Vel.Z
		p.Vel.X = math.Cos(p.Phase) * spiralAmp
		p.Vel.Y = math.Sin(p.Phase) * spiralAmp
		p.Vel.Z = forward

	case entity.PayloadDelayedBurst:
		if p.StuckTo == 0 {
			return
		}
		// Ride the target; detonate in place if it is gone.
		if target := findEnemy(w, p.StuckTo); target != nil && target.Active {
			p.Pos = target.Pos
		} else {
			p.BurstTimer = 0
		}
		p.Vel = vmath.Vec3{}
		p.BurstTimer -= dt
		if p.BurstTimer <= 0 {
			s.detonate(p)
		}
	}
}

// detonate converts a delayed-burst projectile into an expanding area pulse.
func (s *ProjectileSystem) detonate(p *entity.Projectile) {
	p.Payload = entity.PayloadArea
	p.StuckTo = 0
	p.Radius = 0
	p.Phase = 0
	if p.GrowRate <= 0 {
		p.GrowRate = defaultBurstGrowRate
	}
	p.Lifetime = burstPulseLifetime
}

const (
	defaultBurstGrowRate = 40.0
	burstPulseLifetime   = 0.6
)

func findEnemy(w *sim.World, id entity.EntityID) *entity.Entity {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
