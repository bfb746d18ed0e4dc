package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sg/internal/application/game"
	"github.com/younwookim/sg/internal/application/replay"
	"github.com/younwookim/sg/internal/application/scene/playing"
	"github.com/younwookim/sg/internal/infrastructure/config"
	"github.com/younwookim/sg/internal/infrastructure/score"
)

const appName = "stellargauntlet"

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record session.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session file")
	verifyFlag := flag.Bool("verify", false, "Run the replay headless, print the outcome and exit (requires -replay)")
	configsFlag := flag.String("configs", "", "Load configs from a directory and hot-reload on change")
	flag.Parse()

	cfg, watcher, err := loadConfigs(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if watcher != nil {
		defer watcher.Close()
	}

	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadSession(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load session: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		log.Printf("playback: %s (%d ticks, seed %d)", *replayFlag, replayer.TotalTicks(), replayer.Seed())
	}

	if *verifyFlag {
		if replayer == nil {
			log.Fatal("-verify requires -replay")
		}
		res := verifySession(cfg, replayer)
		fmt.Printf("ticks=%d score=%d stage=%d alive=%v\n", res.Ticks, res.Score, res.Stage, res.Alive)
		return
	}

	store, err := score.Open(appName)
	if err != nil {
		log.Printf("score persistence unavailable: %v", err)
		store = score.NewStore(nil)
	}

	scene := playing.New(cfg, store, *recordFlag, replayer)
	if watcher != nil {
		scene.WatchConfigs(watcher.Configs)
	}

	display := cfg.Tuning.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale,
		display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Stellar Gauntlet")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfigs loads the embedded config set, or a directory copy with a
// hot-reload watcher when dir is given.
func loadConfigs(dir string) (*config.GameConfig, *config.Watcher, error) {
	if dir == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
		return cfg, nil, err
	}

	cfg, err := config.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, nil, err
	}
	watcher, err := config.Watch(dir)
	if err != nil {
		log.Printf("config watch unavailable: %v", err)
		return cfg, nil, nil
	}
	return cfg, watcher, nil
}
