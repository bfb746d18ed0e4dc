package system

import (
	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// Spawner stamps pooled enemy records from the stage's archetype table.
type Spawner struct {
	cfg *config.GameConfig
}

// NewSpawner creates a spawner backed by the archetype tables.
func NewSpawner(cfg *config.GameConfig) *Spawner {
	return &Spawner{cfg: cfg}
}

// ParseType maps a wave config type string to the closed enum. The string
// comparison happens once at config time, never in the per-tick loop.
func ParseType(s string) (entity.EnemyType, bool) {
	switch s {
	case "drone":
		return entity.EnemyDrone, true
	case "strafer":
		return entity.EnemyStrafer, true
	case "jinker":
		return entity.EnemyJinker, true
	case "elite":
		return entity.EnemyElite, true
	case "boss":
		return entity.EnemyBoss, true
	}
	return 0, false
}

func typeKey(t entity.EnemyType) string {
	switch t {
	case entity.EnemyDrone:
		return "drone"
	case entity.EnemyStrafer:
		return "strafer"
	case entity.EnemyJinker:
		return "jinker"
	case entity.EnemyElite:
		return "elite"
	case entity.EnemyBoss:
		return "boss"
	}
	return ""
}

// Spawn acquires a pooled record, stamps the archetype for the current
// stage and positions it randomly within the archetype's spawn region.
// Returns nil if the stage table has no entry for the type.
func (s *Spawner) Spawn(w *sim.World, typ entity.EnemyType) *entity.Entity {
	arch, ok := s.cfg.Archetypes.ForStage(w.Stage).Types[typeKey(typ)]
	if !ok {
		return nil
	}

	e := w.AcquireEnemy()
	e.Type = typ
	e.Side = entity.SideEnemy
	e.Health = arch.MaxHealth
	e.MaxHealth = arch.MaxHealth
	e.Speed = arch.Speed
	e.ContactDamage = arch.ContactDamage
	e.ScoreValue = arch.Score
	e.HitRadius = arch.HitRadius
	e.BodyRadius = arch.BodyRadius
	e.FireCooldown = arch.FireCooldown
	e.FireTimer = arch.FireCooldown
	e.ProjDamage = arch.ProjectileDamage
	e.ProjSpeed = arch.ProjectileSpeed
	e.FloorZ = arch.Spawn.MinZ
	e.SpawnedAt = w.Elapsed
	e.Seed = w.RNG.Uint64()

	r := arch.Spawn
	e.Pos = vmath.Vec3{
		X: r.MinX + w.RNG.Float64()*(r.MaxX-r.MinX),
		Y: r.MinY + w.RNG.Float64()*(r.MaxY-r.MinY),
		Z: r.MinZ + w.RNG.Float64()*(r.MaxZ-r.MinZ),
	}
	e.Anchor = e.Pos

	return e
}
