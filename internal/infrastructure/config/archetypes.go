package config

// ArchetypesConfig is the root config for archetypes.yaml. Stages are an
// ordered difficulty table; a stage counter past the end reuses the last
// (hardest) entry.
type ArchetypesConfig struct {
	Stages []StageArchetypes `yaml:"stages"`
}

// StageArchetypes holds one archetype definition per enemy type for a stage.
type StageArchetypes struct {
	Name  string               `yaml:"name"`
	Types map[string]Archetype `yaml:"types"`
}

// Archetype defines the stats and spawn-region randomization bounds for one
// enemy type at one stage.
type Archetype struct {
	MaxHealth        int         `yaml:"maxHealth"`
	Speed            float64     `yaml:"speed"`
	ContactDamage    int         `yaml:"contactDamage"`
	Score            int         `yaml:"score"`
	HitRadius        float64     `yaml:"hitRadius"`  // projectile-vs-enemy test radius
	BodyRadius       float64     `yaml:"bodyRadius"` // player proximity push-out radius
	FireCooldown     float64     `yaml:"fireCooldown,omitempty"` // 0 = never fires
	ProjectileDamage int         `yaml:"projectileDamage,omitempty"`
	ProjectileSpeed  float64     `yaml:"projectileSpeed,omitempty"`
	Spawn            SpawnRegion `yaml:"spawn"`
}

// SpawnRegion bounds the randomized spawn position.
type SpawnRegion struct {
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
	MinZ float64 `yaml:"minZ"`
	MaxZ float64 `yaml:"maxZ"`
}

// ForStage returns the archetype table for a zero-based stage index.
// Indexes past the table reuse the final entry.
func (c *ArchetypesConfig) ForStage(stage int) StageArchetypes {
	if len(c.Stages) == 0 {
		return StageArchetypes{}
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(c.Stages) {
		stage = len(c.Stages) - 1
	}
	return c.Stages[stage]
}

// WavesConfig is the root config for waves.yaml
type WavesConfig struct {
	IntroDuration   float64      `yaml:"introDuration"`
	Waves           []WaveConfig `yaml:"waves"`
	Elite           EliteConfig  `yaml:"elite"`
	BossApproach    float64      `yaml:"bossApproach"` // pure timer before boss spawn
	VictoryDuration float64      `yaml:"victoryDuration"`
	MaxStage        int          `yaml:"maxStage"` // stage counter wraps after this
}

// WaveConfig defines one quota-driven enemy wave.
type WaveConfig struct {
	Type     string  `yaml:"type"`
	Quota    int     `yaml:"quota"`
	Spacing  float64 `yaml:"spacing"`  // min seconds between spawns
	MaxAlive int     `yaml:"maxAlive"` // don't-overcrowd cap
}

// EliteConfig gates the single mini-boss encounter.
type EliteConfig struct {
	SettleDelay float64 `yaml:"settleDelay"` // delay before the elite spawns
	MinElapsed  float64 `yaml:"minElapsed"`  // floor before the phase may advance
}
