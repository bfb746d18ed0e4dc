package system

import (
	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/application/state"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// WaveSystem sequences the spawn state machine:
// intro -> waves -> elite -> boss-approach -> boss-fight -> victory -> loop.
type WaveSystem struct {
	cfg     *config.GameConfig
	spawner *Spawner

	phase     state.Phase
	phaseTime float64

	waveIdx    int
	spawned    int
	spawnTimer float64

	eliteSpawned bool
}

// NewWaveSystem creates the wave manager starting in the intro phase.
func NewWaveSystem(cfg *config.GameConfig, spawner *Spawner) *WaveSystem {
	return &WaveSystem{
		cfg:     cfg,
		spawner: spawner,
		phase:   state.PhaseIntro,
	}
}

// Phase returns the current phase for HUD and presentation.
func (s *WaveSystem) Phase() state.Phase {
	return s.phase
}

// PhaseTime returns seconds elapsed in the current phase.
func (s *WaveSystem) PhaseTime() float64 {
	return s.phaseTime
}

// Tick advances the state machine by dt.
func (s *WaveSystem) Tick(w *sim.World, dt float64) {
	s.phaseTime += dt

	switch {
	case s.phase == state.PhaseIntro:
		if s.phaseTime >= s.cfg.Waves.IntroDuration {
			s.enterWave(w, 0)
		}

	case s.phase.IsWave():
		s.tickWave(w, dt)

	case s.phase == state.PhaseElite:
		s.tickElite(w)

	case s.phase == state.PhaseBossApproach:
		if s.phaseTime >= s.cfg.Waves.BossApproach {
			s.spawner.Spawn(w, entity.EnemyBoss)
			s.transition(w, state.PhaseBossFight)
		}

	case s.phase == state.PhaseBossFight:
		// Re-query live state; a cached count could miss a same-tick kill
		if w.CountType(entity.EnemyBoss) == 0 {
			w.AddScore(s.cfg.Tuning.Combat.BossBonus)
			s.transition(w, state.PhaseVictory)
		}

	case s.phase == state.PhaseVictory:
		if s.phaseTime >= s.cfg.Waves.VictoryDuration {
			s.nextStage(w)
		}
	}
}

func (s *WaveSystem) tickWave(w *sim.World, dt float64) {
	if s.waveIdx >= len(s.cfg.Waves.Waves) {
		s.transition(w, state.PhaseElite)
		return
	}
	wave := s.cfg.Waves.Waves[s.waveIdx]
	typ, ok := ParseType(wave.Type)
	if !ok {
		s.transition(w, state.PhaseElite)
		return
	}

	s.spawnTimer -= dt
	if s.spawned < wave.Quota && s.spawnTimer <= 0 && w.CountType(typ) < wave.MaxAlive {
		if s.spawner.Spawn(w, typ) != nil {
			s.spawned++
			s.spawnTimer = wave.Spacing
		}
	}

	// Both conditions must hold against freshly queried live state: the
	// quota filled AND the field actually clear. A cached "clear" check
	// could pass incorrectly when this same tick spawned an enemy.
	if s.spawned >= wave.Quota && w.CountType(typ) == 0 {
		if s.waveIdx+1 < len(s.cfg.Waves.Waves) {
			s.enterWave(w, s.waveIdx+1)
		} else {
			s.transition(w, state.PhaseElite)
		}
	}
}

func (s *WaveSystem) tickElite(w *sim.World) {
	elite := s.cfg.Waves.Elite

	if !s.eliteSpawned && s.phaseTime >= elite.SettleDelay {
		s.spawner.Spawn(w, entity.EnemyElite)
		s.eliteSpawned = true
	}

	// The elapsed-time floor keeps the phase from advancing on an elite
	// that spawned and died before it ever rendered
	if s.eliteSpawned && s.phaseTime >= elite.MinElapsed && w.CountType(entity.EnemyElite) == 0 {
		s.transition(w, state.PhaseBossApproach)
	}
}

// nextStage increments the stage counter (wrapping at the maximum), clears
// the field and loops back to the first wave.
func (s *WaveSystem) nextStage(w *sim.World) {
	w.Stage++
	if s.cfg.Waves.MaxStage > 0 && w.Stage >= s.cfg.Waves.MaxStage {
		w.Stage = 0
	}

	for _, e := range w.Enemies {
		if e.Active {
			w.ReleaseEnemy(e)
		}
	}
	w.CompactEnemies()
	for _, p := range w.Projectiles {
		if p.Active {
			w.ReleaseProjectile(p)
		}
	}
	w.CompactProjectiles()

	s.enterWave(w, 0)
}

func (s *WaveSystem) enterWave(w *sim.World, idx int) {
	if idx >= len(s.cfg.Waves.Waves) {
		s.transition(w, state.PhaseElite)
		return
	}
	s.waveIdx = idx
	s.transition(w, wavePhase(s.cfg.Waves.Waves[idx].Type))
}

// wavePhase labels a wave by its enemy type rather than its table index,
// so a reordered wave table still reports truthful phases.
func wavePhase(typ string) state.Phase {
	t, _ := ParseType(typ)
	switch t {
	case entity.EnemyStrafer:
		return state.PhaseWaveStrafers
	case entity.EnemyJinker:
		return state.PhaseWaveJinkers
	default:
		return state.PhaseWaveDrones
	}
}

func (s *WaveSystem) transition(w *sim.World, to state.Phase) {
	from := s.phase
	s.phase = to
	s.phaseTime = 0
	s.spawned = 0
	s.spawnTimer = 0
	s.eliteSpawned = false

	w.Emit(sim.Event{Kind: sim.EventPhaseChanged, From: from, To: to, Stage: w.Stage})
}
