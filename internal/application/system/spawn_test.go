package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		typ  entity.EnemyType
		ok   bool
	}{
		{"drone", entity.EnemyDrone, true},
		{"strafer", entity.EnemyStrafer, true},
		{"jinker", entity.EnemyJinker, true},
		{"elite", entity.EnemyElite, true},
		{"boss", entity.EnemyBoss, true},
		{"gopher", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, ok := ParseType(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.typ, typ)
			}
		})
	}
}

func TestSpawner_StampsArchetype(t *testing.T) {
	w := newTestWorld(1)
	s := NewSpawner(w.Config)

	e := s.Spawn(w, entity.EnemyDrone)
	require.NotNil(t, e)

	assert.True(t, e.Active)
	assert.Equal(t, entity.EnemyDrone, e.Type)
	assert.Equal(t, entity.SideEnemy, e.Side)
	assert.Equal(t, 60, e.Health)
	assert.Equal(t, 60, e.MaxHealth)
	assert.Equal(t, 18.0, e.Speed)
	assert.Equal(t, 100, e.ScoreValue)
	assert.Equal(t, 4.0, e.HitRadius)
	assert.Equal(t, 5.0, e.BodyRadius)
	assert.NotZero(t, e.ID)
	assert.Equal(t, e.Pos, e.Anchor)
}

func TestSpawner_PositionWithinRegion(t *testing.T) {
	w := newTestWorld(7)
	s := NewSpawner(w.Config)

	for i := 0; i < 50; i++ {
		e := s.Spawn(w, entity.EnemyDrone)
		require.NotNil(t, e)

		assert.GreaterOrEqual(t, e.Pos.X, -50.0)
		assert.LessOrEqual(t, e.Pos.X, 50.0)
		assert.GreaterOrEqual(t, e.Pos.Y, -30.0)
		assert.LessOrEqual(t, e.Pos.Y, 30.0)
		assert.GreaterOrEqual(t, e.Pos.Z, 120.0)
		assert.LessOrEqual(t, e.Pos.Z, 180.0)
	}
}

func TestSpawner_StageSelectsArchetype(t *testing.T) {
	w := newTestWorld(1)
	s := NewSpawner(w.Config)

	w.Stage = 0
	first := s.Spawn(w, entity.EnemyDrone)
	require.NotNil(t, first)
	assert.Equal(t, 60, first.MaxHealth)

	w.Stage = 1
	second := s.Spawn(w, entity.EnemyDrone)
	require.NotNil(t, second)
	assert.Equal(t, 90, second.MaxHealth)

	// Stages past the table reuse the final, hardest entry
	w.Stage = 99
	far := s.Spawn(w, entity.EnemyDrone)
	require.NotNil(t, far)
	assert.Equal(t, 90, far.MaxHealth)
}

func TestSpawner_SeedsDiffer(t *testing.T) {
	w := newTestWorld(1)
	s := NewSpawner(w.Config)

	a := s.Spawn(w, entity.EnemyDrone)
	b := s.Spawn(w, entity.EnemyDrone)

	assert.NotEqual(t, a.Seed, b.Seed)
}

func TestSpawner_DeterministicGivenSeed(t *testing.T) {
	w1 := newTestWorld(42)
	w2 := newTestWorld(42)
	s1 := NewSpawner(w1.Config)
	s2 := NewSpawner(w2.Config)

	a := s1.Spawn(w1, entity.EnemyJinker)
	b := s2.Spawn(w2, entity.EnemyJinker)

	assert.Equal(t, a.Pos, b.Pos)
	assert.Equal(t, a.Seed, b.Seed)
}

func TestSpawner_UnknownTypeEntry(t *testing.T) {
	w := newTestWorld(1)
	w.Config.Archetypes.Stages[0].Types = map[string]config.Archetype{}

	s := NewSpawner(w.Config)
	assert.Nil(t, s.Spawn(w, entity.EnemyDrone))
	assert.Empty(t, w.Enemies)
}
