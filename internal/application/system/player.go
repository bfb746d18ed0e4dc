package system

import (
	"math"
	"strings"

	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// PlayerSystem applies the input snapshot to the player: kinematic
// movement within the lateral bounds, energy drain/regen, weapon selection
// and firing.
type PlayerSystem struct {
	cfg *config.GameConfig
}

// NewPlayerSystem creates the player system.
func NewPlayerSystem(cfg *config.GameConfig) *PlayerSystem {
	return &PlayerSystem{cfg: cfg}
}

// Tick advances the player by dt using the world's input snapshot.
func (s *PlayerSystem) Tick(w *sim.World, dt float64) {
	pc := s.cfg.Tuning.Player
	p := w.Player
	in := w.Input

	if in.SelectWeapon >= 0 && in.SelectWeapon <= int(entity.PayloadGrid) {
		p.Weapon = entity.PayloadType(in.SelectWeapon)
	}

	speed := pc.MoveSpeed
	if in.Boost && p.Energy > 0 {
		speed *= pc.BoostMultiplier
		p.Energy -= pc.BoostEnergyDrain * dt
	} else {
		p.Energy += pc.EnergyRegen * dt
	}
	if p.Energy < 0 {
		p.Energy = 0
	}
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}

	p.Vel = vmath.Vec3{X: in.MoveX * speed, Y: in.MoveY * speed}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	// Out-of-range positions are clamped, never rejected
	bound := pc.LateralBound
	p.Pos = p.Pos.Clamp(
		vmath.Vec3{X: -bound, Y: -bound, Z: p.Pos.Z},
		vmath.Vec3{X: bound, Y: bound, Z: p.Pos.Z},
	)

	if p.FireTimer > 0 {
		p.FireTimer -= dt
	}
	if in.Fire && p.FireTimer <= 0 && p.Energy >= pc.FireEnergyCost {
		s.fire(w)
		p.FireTimer = pc.FireCooldown
		p.Energy -= pc.FireEnergyCost
	}
}

// weaponKey maps a payload type to its weapons table key.
func weaponKey(t entity.PayloadType) string {
	return strings.ToLower(t.String())
}

// fire spawns the equipped weapon's projectile pattern. Spread and Grid
// are multi-spawn patterns resolved here; every spawned projectile then
// follows its individual payload rule.
func (s *PlayerSystem) fire(w *sim.World) {
	p := w.Player
	weapon, ok := s.cfg.Tuning.Weapons[weaponKey(p.Weapon)]
	if !ok {
		weapon, ok = s.cfg.Tuning.Weapons["standard"]
		if !ok {
			return
		}
	}

	switch p.Weapon {
	case entity.PayloadSpread:
		n := weapon.SpreadCount
		if n < 1 {
			n = 3
		}
		angleStep := weapon.SpreadAngle * math.Pi / 180
		base := -angleStep * float64(n-1) / 2
		for i := 0; i < n; i++ {
			angle := base + angleStep*float64(i)
			vel := vmath.Vec3{
				X: math.Sin(angle) * weapon.Speed,
				Z: math.Cos(angle) * weapon.Speed,
			}
			s.spawnShot(w, p.Pos, vel, weapon, entity.PayloadSpread)
		}

	case entity.PayloadGrid:
		n := weapon.GridCount
		if n < 1 {
			n = 3
		}
		spacing := weapon.GridSpacing
		base := -spacing * float64(n-1) / 2
		for i := 0; i < n; i++ {
			origin := p.Pos.Add(vmath.Vec3{X: base + spacing*float64(i)})
			s.spawnShot(w, origin, vmath.Vec3{Z: weapon.Speed}, weapon, entity.PayloadGrid)
		}

	default:
		s.spawnShot(w, p.Pos, vmath.Vec3{Z: weapon.Speed}, weapon, p.Weapon)
	}
}

func (s *PlayerSystem) spawnShot(w *sim.World, pos, vel vmath.Vec3, weapon config.WeaponConfig, payload entity.PayloadType) {
	shot := w.AcquireProjectile()
	shot.Side = entity.SidePlayer
	shot.Payload = payload
	shot.Pos = pos
	shot.Vel = vel
	shot.Damage = weapon.Damage
	shot.Lifetime = weapon.Lifetime
	shot.SpawnedAt = w.Elapsed
	shot.PierceLeft = weapon.PierceCount
	shot.ChainLeft = weapon.ChainCount
	shot.BurstTimer = weapon.BurstDelay
	shot.GrowRate = weapon.GrowRate
}
