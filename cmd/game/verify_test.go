package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/sg/internal/application/replay"
)

func TestLoadConfigs_Embedded(t *testing.T) {
	cfg, watcher, err := loadConfigs("")
	require.NoError(t, err)
	assert.Nil(t, watcher)

	assert.Equal(t, 60, cfg.Tuning.Sim.TickRate)
	assert.Contains(t, cfg.Tuning.Weapons, "standard")
	assert.Len(t, cfg.Archetypes.Stages, 3)
	assert.NotEmpty(t, cfg.Waves.Waves)

	for i, stage := range cfg.Archetypes.Stages {
		for _, key := range []string{"drone", "strafer", "jinker", "elite", "boss"} {
			assert.Contains(t, stage.Types, key, "stage %d", i)
		}
	}
}

func TestVerifySession_Deterministic(t *testing.T) {
	cfg, _, err := loadConfigs("")
	require.NoError(t, err)

	data := replay.CreateTestSessionData(300)

	first := verifySession(cfg, replay.NewReplayer(data))
	second := verifySession(cfg, replay.NewReplayer(data))

	assert.Equal(t, first, second)
}

func TestVerifySession_RunsAllTicks(t *testing.T) {
	cfg, _, err := loadConfigs("")
	require.NoError(t, err)

	data := replay.CreateTestSessionData(120)
	res := verifySession(cfg, replay.NewReplayer(data))

	// An idle player survives the two-second intro, so the session runs
	// to the end of the recording.
	assert.Equal(t, uint64(120), res.Ticks)
	assert.True(t, res.Alive)
}
