package entity

import "github.com/younwookim/sg/internal/domain/vmath"

// Player holds the player's kinematic and resource state. Movement is
// scripted from the input snapshot, not physically simulated.
type Player struct {
	Pos vmath.Vec3
	Rot vmath.Vec3
	Vel vmath.Vec3

	Health    int
	MaxHealth int
	Shield    int
	MaxShield int

	Energy    float64
	MaxEnergy float64

	Weapon    PayloadType
	FireTimer float64
}

// NewPlayer creates a player at the origin with full resource pools.
func NewPlayer(maxHealth, maxShield int, maxEnergy float64) *Player {
	return &Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Shield:    maxShield,
		MaxShield: maxShield,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Weapon:    PayloadStandard,
	}
}

// TakeDamage applies damage to the shield first, then the hull.
// Returns the damage that reached the hull.
func (p *Player) TakeDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	absorbed := damage
	if absorbed > p.Shield {
		absorbed = p.Shield
	}
	p.Shield -= absorbed
	hull := damage - absorbed
	p.Health -= hull
	if p.Health < 0 {
		p.Health = 0
	}
	return hull
}

// IsAlive returns true while the hull holds.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// HealthRatio returns hull integrity as a fraction of max.
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

// ShieldRatio returns shield charge as a fraction of max.
func (p *Player) ShieldRatio() float64 {
	if p.MaxShield <= 0 {
		return 0
	}
	return float64(p.Shield) / float64(p.MaxShield)
}
