package config

// TuningConfig is the root config for tuning.yaml
type TuningConfig struct {
	Display    DisplayConfig            `yaml:"display"`
	Sim        SimConfig                `yaml:"sim"`
	Bounds     BoundsConfig             `yaml:"bounds"`
	Player     PlayerConfig             `yaml:"player"`
	Combat     CombatConfig             `yaml:"combat"`
	Projectile ProjectileConfig         `yaml:"projectile"`
	Weapons    map[string]WeaponConfig  `yaml:"weapons"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type SimConfig struct {
	TickRate     int     `yaml:"tickRate"`     // fixed simulation ticks per second
	MaxFrameTime float64 `yaml:"maxFrameTime"` // wall-clock clamp per frame (seconds)
	PoolPrealloc int     `yaml:"poolPrealloc"` // soft cap: records seeded per pool
}

// BoundsConfig defines the playfield limits. WallZ is the hard "do not
// pass" depth; FarZ and LateralMax are the despawn thresholds.
type BoundsConfig struct {
	WallZ      float64 `yaml:"wallZ"`
	FarZ       float64 `yaml:"farZ"`
	LateralMax float64 `yaml:"lateralMax"`
}

type PlayerConfig struct {
	MaxHealth        int     `yaml:"maxHealth"`
	MaxShield        int     `yaml:"maxShield"`
	MaxEnergy        float64 `yaml:"maxEnergy"`
	MoveSpeed        float64 `yaml:"moveSpeed"`
	BoostMultiplier  float64 `yaml:"boostMultiplier"`
	LateralBound     float64 `yaml:"lateralBound"` // |x|,|y| clamp on player position
	FireCooldown     float64 `yaml:"fireCooldown"`
	FireEnergyCost   float64 `yaml:"fireEnergyCost"`
	BoostEnergyDrain float64 `yaml:"boostEnergyDrain"` // per second
	EnergyRegen      float64 `yaml:"energyRegen"`      // per second
}

type CombatConfig struct {
	ContactInterval        float64 `yaml:"contactInterval"` // min seconds between contact hits per enemy
	InterceptRadius        float64 `yaml:"interceptRadius"` // projectile-vs-projectile block radius
	PlayerHitRadius        float64 `yaml:"playerHitRadius"` // enemy-projectile-vs-player radius
	DisintegrationDuration float64 `yaml:"disintegrationDuration"`
	BossBonus              int     `yaml:"bossBonus"`
	DropChance             float64 `yaml:"dropChance"` // item-drop roll, stages beyond the first
}

type ProjectileConfig struct {
	MaxRange float64 `yaml:"maxRange"` // despawn distance from origin
}

// WeaponConfig defines one player weapon payload. Keys of the weapons map
// are payload names ("standard", "piercing", ...).
type WeaponConfig struct {
	Damage      int     `yaml:"damage"`
	Speed       float64 `yaml:"speed"`
	Lifetime    float64 `yaml:"lifetime"`
	PierceCount int     `yaml:"pierceCount,omitempty"`
	ChainCount  int     `yaml:"chainCount,omitempty"`
	BurstDelay  float64 `yaml:"burstDelay,omitempty"`
	GrowRate    float64 `yaml:"growRate,omitempty"`
	SpreadCount int     `yaml:"spreadCount,omitempty"`
	SpreadAngle float64 `yaml:"spreadAngle,omitempty"` // degrees between spread shots
	GridCount   int     `yaml:"gridCount,omitempty"`
	GridSpacing float64 `yaml:"gridSpacing,omitempty"`
}
