package system

import (
	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func testArchetype(hp int, speed float64, score int) config.Archetype {
	return config.Archetype{
		MaxHealth:     hp,
		Speed:         speed,
		ContactDamage: 10,
		Score:         score,
		HitRadius:     4,
		BodyRadius:    5,
		Spawn: config.SpawnRegion{
			MinX: -50, MaxX: 50,
			MinY: -30, MaxY: 30,
			MinZ: 120, MaxZ: 180,
		},
	}
}

func createTestGameConfig() *config.GameConfig {
	strafer := testArchetype(45, 22, 150)
	strafer.FireCooldown = 1.2
	strafer.ProjectileDamage = 8
	strafer.ProjectileSpeed = 60

	elite := testArchetype(300, 12, 1000)
	elite.FireCooldown = 0.8
	elite.ProjectileDamage = 12
	elite.ProjectileSpeed = 70
	elite.Spawn.MinZ = 70
	elite.Spawn.MaxZ = 110

	boss := testArchetype(1200, 6, 2500)
	boss.BodyRadius = 14
	boss.HitRadius = 12
	boss.FireCooldown = 1.5
	boss.ProjectileDamage = 16
	boss.ProjectileSpeed = 80
	boss.Spawn = config.SpawnRegion{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5, MinZ: 60, MaxZ: 90}

	hardDrone := testArchetype(90, 24, 150)

	return &config.GameConfig{
		Tuning: &config.TuningConfig{
			Sim: config.SimConfig{
				TickRate:     60,
				MaxFrameTime: 0.1,
				PoolPrealloc: 16,
			},
			Bounds: config.BoundsConfig{
				WallZ:      8,
				FarZ:       240,
				LateralMax: 90,
			},
			Player: config.PlayerConfig{
				MaxHealth:        100,
				MaxShield:        50,
				MaxEnergy:        80,
				MoveSpeed:        40,
				BoostMultiplier:  2.0,
				LateralBound:     60,
				FireCooldown:     0.2,
				FireEnergyCost:   2,
				BoostEnergyDrain: 20,
				EnergyRegen:      12,
			},
			Combat: config.CombatConfig{
				ContactInterval:        1.0,
				InterceptRadius:        1.5,
				PlayerHitRadius:        3.0,
				DisintegrationDuration: 0.8,
				BossBonus:              5000,
				DropChance:             1.0,
			},
			Projectile: config.ProjectileConfig{MaxRange: 260},
			Weapons: map[string]config.WeaponConfig{
				"standard":     {Damage: 15, Speed: 120, Lifetime: 2.5},
				"piercing":     {Damage: 12, Speed: 110, Lifetime: 2.5, PierceCount: 2},
				"chaining":     {Damage: 10, Speed: 100, Lifetime: 2.5, ChainCount: 2},
				"area":         {Damage: 8, Speed: 90, Lifetime: 2.0, GrowRate: 50},
				"spread":       {Damage: 9, Speed: 100, Lifetime: 2.0, SpreadCount: 3, SpreadAngle: 10},
				"delayedburst": {Damage: 20, Speed: 80, Lifetime: 3.0, BurstDelay: 0.5, GrowRate: 40},
				"spiral":       {Damage: 11, Speed: 95, Lifetime: 2.5, GrowRate: 8},
				"grid":         {Damage: 10, Speed: 100, Lifetime: 2.2, GridCount: 3, GridSpacing: 6},
			},
		},
		Archetypes: &config.ArchetypesConfig{
			Stages: []config.StageArchetypes{
				{
					Name: "stage-one",
					Types: map[string]config.Archetype{
						"drone":   testArchetype(60, 18, 100),
						"strafer": strafer,
						"jinker":  testArchetype(30, 26, 200),
						"elite":   elite,
						"boss":    boss,
					},
				},
				{
					Name: "stage-two",
					Types: map[string]config.Archetype{
						"drone":   hardDrone,
						"strafer": strafer,
						"jinker":  testArchetype(50, 30, 250),
						"elite":   elite,
						"boss":    boss,
					},
				},
			},
		},
		Waves: &config.WavesConfig{
			IntroDuration: 2.0,
			Waves: []config.WaveConfig{
				{Type: "drone", Quota: 8, Spacing: 1.5, MaxAlive: 4},
				{Type: "strafer", Quota: 6, Spacing: 2.0, MaxAlive: 3},
				{Type: "jinker", Quota: 10, Spacing: 1.0, MaxAlive: 5},
			},
			Elite:           config.EliteConfig{SettleDelay: 1.0, MinElapsed: 3.0},
			BossApproach:    4.0,
			VictoryDuration: 5.0,
			MaxStage:        8,
		},
	}
}

func newTestWorld(seed int64) *sim.World {
	return sim.NewWorld(createTestGameConfig(), seed)
}
