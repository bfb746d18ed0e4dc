package state

// Phase represents a state in the wave-sequencing state machine
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseWaveDrones
	PhaseWaveStrafers
	PhaseWaveJinkers
	PhaseElite
	PhaseBossApproach
	PhaseBossFight
	PhaseVictory
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseWaveDrones:
		return "WaveDrones"
	case PhaseWaveStrafers:
		return "WaveStrafers"
	case PhaseWaveJinkers:
		return "WaveJinkers"
	case PhaseElite:
		return "Elite"
	case PhaseBossApproach:
		return "BossApproach"
	case PhaseBossFight:
		return "BossFight"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// IsWave reports whether the phase is one of the quota-driven enemy waves.
func (p Phase) IsWave() bool {
	switch p {
	case PhaseWaveDrones, PhaseWaveStrafers, PhaseWaveJinkers:
		return true
	}
	return false
}

// GameState represents the coarse scene state, above the phase machine
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
