package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Side marks which faction owns an entity or projectile
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// EnemyType is a closed enum of enemy archetypes. Behavior dispatch is a
// switch on this tag, never a string comparison in the per-tick loop.
type EnemyType int

const (
	EnemyDrone EnemyType = iota
	EnemyStrafer
	EnemyJinker
	EnemyElite
	EnemyBoss
)

// String returns the string representation of the enemy type
func (t EnemyType) String() string {
	switch t {
	case EnemyDrone:
		return "Drone"
	case EnemyStrafer:
		return "Strafer"
	case EnemyJinker:
		return "Jinker"
	case EnemyElite:
		return "Elite"
	case EnemyBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// PayloadType is a closed enum of projectile payload behaviors
type PayloadType int

const (
	PayloadStandard PayloadType = iota
	PayloadPiercing
	PayloadChaining
	PayloadArea
	PayloadSpread
	PayloadDelayedBurst
	PayloadSpiral
	PayloadGrid
)

// String returns the string representation of the payload type
func (p PayloadType) String() string {
	switch p {
	case PayloadStandard:
		return "Standard"
	case PayloadPiercing:
		return "Piercing"
	case PayloadChaining:
		return "Chaining"
	case PayloadArea:
		return "Area"
	case PayloadSpread:
		return "Spread"
	case PayloadDelayedBurst:
		return "DelayedBurst"
	case PayloadSpiral:
		return "Spiral"
	case PayloadGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}
