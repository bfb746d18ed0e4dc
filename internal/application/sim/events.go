package sim

import (
	"github.com/younwookim/sg/internal/application/state"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
)

// EventKind identifies a discrete simulation event
type EventKind int

const (
	EventEnemyDestroyed EventKind = iota
	EventPlayerHit
	EventScoreChanged
	EventPhaseChanged
	EventItemPickup
	EventProjectileBlocked
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventPlayerHit:
		return "PlayerHit"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventItemPickup:
		return "ItemPickup"
	case EventProjectileBlocked:
		return "ProjectileBlocked"
	default:
		return "Unknown"
	}
}

// Event is a discrete emission consumed by audio/VFX/UI collaborators.
// Events accumulate during a tick and are flushed in one batch at the tick
// boundary; simulation correctness never depends on a sink observing them.
type Event struct {
	Kind EventKind

	EnemyType entity.EnemyType
	Stage     int
	Pos       vmath.Vec3

	Damage     int
	Score      int
	ScoreDelta int

	From state.Phase
	To   state.Phase
}

// EventSink receives the batched events for one tick.
type EventSink func(events []Event)
