package main

import (
	"github.com/younwookim/sg/internal/application/replay"
	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/application/system"
	"github.com/younwookim/sg/internal/infrastructure/config"
)

// VerifyResult is the outcome of a headless replay run.
type VerifyResult struct {
	Ticks uint64
	Score int
	Stage int
	Alive bool
}

// verifySession replays a recorded session against the simulation with no
// window and no presentation, one recorded input per tick. Because the
// simulation is a pure function of seed and input stream, two runs of the
// same session must print identical outcomes.
func verifySession(cfg *config.GameConfig, r *replay.Replayer) VerifyResult {
	w := sim.NewWorld(cfg, r.Seed())
	w.Stage = r.Stage()

	spawner := system.NewSpawner(cfg)
	waves := system.NewWaveSystem(cfg, spawner)
	player := system.NewPlayerSystem(cfg)
	behavior := system.NewBehaviorSystem(cfg)
	projectile := system.NewProjectileSystem(cfg)
	collision := system.NewCollisionSystem(cfg)

	loop := sim.NewLoop(w, cfg.Tuning.Sim.TickRate, cfg.Tuning.Sim.MaxFrameTime,
		player.Tick,
		waves.Tick,
		behavior.Tick,
		projectile.Tick,
		collision.Tick,
	)

	for {
		in, ok := r.NextInput()
		if !ok {
			break
		}
		w.Input = in
		loop.Step()
		if !w.Player.IsAlive() {
			break
		}
	}

	return VerifyResult{
		Ticks: w.Tick,
		Score: w.Score,
		Stage: w.Stage,
		Alive: w.Player.IsAlive(),
	}
}
