package score

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sg/internal/application/sim"
)

func createTestManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("sg_score_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skip("cannot create storage manager in this environment")
	}

	t.Cleanup(func() {
		if homeDir, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return manager
}

func TestStore_RecordTracksBests(t *testing.T) {
	s := NewStore(nil)

	assert.True(t, s.Record(0, 500), "first score is a best")
	assert.False(t, s.Record(0, 300), "lower score is not")
	assert.True(t, s.Record(1, 800))

	assert.Equal(t, 800, s.Best())
	assert.Equal(t, 500, s.StageBest(0))
	assert.Equal(t, 800, s.StageBest(1))
	assert.Zero(t, s.StageBest(5))
}

func TestStore_NilManagerDegradesGracefully(t *testing.T) {
	s := NewStore(nil)

	s.Record(0, 100)
	assert.NoError(t, s.Save())
	assert.NoError(t, s.Load())
	assert.Equal(t, 100, s.Best(), "memory state survives a no-op load")
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	manager := createTestManager(t, "roundtrip")

	s := NewStore(manager)
	s.Record(0, 1200)
	s.Record(2, 4500)
	require.NoError(t, s.Save())

	reloaded := NewStore(manager)
	assert.Equal(t, 4500, reloaded.Best())
	assert.Equal(t, 1200, reloaded.StageBest(0))
	assert.Equal(t, 4500, reloaded.StageBest(2))
}

func TestStore_SinkShadowsScoreEvents(t *testing.T) {
	s := NewStore(nil)
	sink := s.Sink()

	sink([]sim.Event{
		{Kind: sim.EventScoreChanged, Score: 100, Stage: 0},
		{Kind: sim.EventEnemyDestroyed, Stage: 0},
		{Kind: sim.EventScoreChanged, Score: 250, Stage: 0},
	})

	assert.Equal(t, 250, s.Best())
	assert.Equal(t, 250, s.StageBest(0))
}
