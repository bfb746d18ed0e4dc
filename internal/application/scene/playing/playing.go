// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/sg/internal/application/replay"
	"github.com/younwookim/sg/internal/application/scene"
	"github.com/younwookim/sg/internal/application/sim"
	"github.com/younwookim/sg/internal/application/state"
	"github.com/younwookim/sg/internal/application/system"
	"github.com/younwookim/sg/internal/domain/entity"
	"github.com/younwookim/sg/internal/domain/vmath"
	"github.com/younwookim/sg/internal/infrastructure/config"
	"github.com/younwookim/sg/internal/infrastructure/score"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{10, 12, 28, 255}
	colorPlayer    = color.RGBA{120, 220, 255, 255}
	colorDrone     = color.RGBA{200, 90, 90, 255}
	colorStrafer   = color.RGBA{230, 160, 70, 255}
	colorJinker    = color.RGBA{180, 110, 230, 255}
	colorElite     = color.RGBA{250, 220, 90, 255}
	colorBoss      = color.RGBA{255, 70, 70, 255}
	colorShot      = color.RGBA{170, 240, 255, 255}
	colorEnemyShot = color.RGBA{255, 130, 110, 255}
	colorPulse     = color.RGBA{120, 200, 255, 80}
	colorHitFlash  = color.RGBA{255, 255, 255, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorShieldFG  = color.RGBA{90, 150, 240, 255}
	colorEnergyFG  = color.RGBA{240, 210, 90, 255}
)

// Projection constants: the simulation is viewed from behind the player,
// depth foreshortened toward the screen center.
const (
	focalDepth    = 140.0
	pixelsPerUnit = 4.0
	hitstopTicks  = 4

	// Enemies flash white this long after taking a hit
	hitFlashDuration = 0.08
	shakeOnHit    = 5.0
	shakeOnKill   = 1.5
	shakeDecay    = 0.88
)

// Playing is the main gameplay scene
type Playing struct {
	cfg   *config.GameConfig
	world *sim.World
	loop  *sim.Loop
	waves *system.WaveSystem
	input *system.InputSystem
	store *score.Store

	gameState state.GameState
	screenW   int
	screenH   int

	// Feedback
	hitstop int
	shakeX  float64
	shakeY  float64

	// Deterministic session identity
	seed int64

	// Input recording / playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	playbackDone   bool

	// Live config reloads, applied between frames
	reloads <-chan *config.GameConfig

	face ebtext.Face
}

// New creates a new Playing scene. If recordPath is not empty, the input
// stream is recorded there. A non-nil replayer switches the scene to
// playback: inputs come from the recording and the live devices are
// ignored.
func New(cfg *config.GameConfig, store *score.Store, recordPath string, replayer *replay.Replayer) *Playing {
	seed := time.Now().UnixNano()
	if replayer != nil {
		seed = replayer.Seed()
	}

	p := &Playing{
		cfg:            cfg,
		input:          system.NewInputSystem(),
		store:          store,
		gameState:      state.StatePlaying,
		screenW:        cfg.Tuning.Display.ScreenWidth,
		screenH:        cfg.Tuning.Display.ScreenHeight,
		seed:           seed,
		recordFilename: recordPath,
		replayer:       replayer,
		face:           ebtext.NewGoXFace(basicfont.Face7x13),
	}
	p.buildSimulation()

	if recordPath != "" && replayer == nil {
		p.recorder = NewRecorder(seed, p.world.Stage)
		log.Printf("recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p
}

// buildSimulation wires a fresh world and system chain for the current
// seed. Called at construction and on restart.
func (p *Playing) buildSimulation() {
	w := sim.NewWorld(p.cfg, p.seed)
	if p.replayer != nil {
		w.Stage = p.replayer.Stage()
	}

	spawner := system.NewSpawner(p.cfg)
	p.waves = system.NewWaveSystem(p.cfg, spawner)
	playerSys := system.NewPlayerSystem(p.cfg)
	behavior := system.NewBehaviorSystem(p.cfg)
	projectile := system.NewProjectileSystem(p.cfg)
	collision := system.NewCollisionSystem(p.cfg)

	p.loop = sim.NewLoop(w, p.cfg.Tuning.Sim.TickRate, p.cfg.Tuning.Sim.MaxFrameTime,
		playerSys.Tick,
		p.waves.Tick,
		behavior.Tick,
		projectile.Tick,
		collision.Tick,
	)
	p.world = w

	w.AddSink(p.onEvents)
	if p.store != nil {
		w.AddSink(p.store.Sink())
	}
}

// onEvents drives the presentation feedback from the tick's event batch.
func (p *Playing) onEvents(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventPlayerHit:
			p.hitstop = hitstopTicks
			p.shakeX = shakeOnHit
			p.shakeY = shakeOnHit
		case sim.EventEnemyDestroyed:
			if p.shakeX < shakeOnKill {
				p.shakeX = shakeOnKill
				p.shakeY = shakeOnKill
			}
		}
	}
}

// WatchConfigs applies config reloads delivered on ch. Updates land
// between frames, never mid-tick.
func (p *Playing) WatchConfigs(ch <-chan *config.GameConfig) {
	p.reloads = ch
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.reloads != nil {
		select {
		case cfg, ok := <-p.reloads:
			if ok && cfg != nil {
				*p.cfg = *cfg
				log.Printf("config reloaded")
			}
		default:
		}
	}

	if p.hitstop > 0 {
		p.hitstop--
		return nil, nil
	}

	switch p.gameState {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.gameState = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.gameState = state.StatePaused
		return
	}

	// F5: save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if p.replayer != nil {
		p.advancePlayback()
	} else {
		in := p.input.Snapshot()
		p.world.Input = in

		ticks := p.loop.Advance(dt)
		if p.recorder != nil {
			// The snapshot holds for every tick this frame executed
			for i := 0; i < ticks; i++ {
				p.recorder.RecordTick(in)
			}
		}
	}

	p.shakeX *= shakeDecay
	p.shakeY *= shakeDecay

	if !p.world.Player.IsAlive() {
		p.gameState = state.StateGameOver
		p.finishSession()
	}
}

// advancePlayback steps exactly one recorded tick per frame so the
// playback runs at simulation cadence regardless of display rate.
func (p *Playing) advancePlayback() {
	if p.playbackDone {
		return
	}
	in, ok := p.replayer.NextInput()
	if !ok {
		p.playbackDone = true
		log.Printf("playback finished: %d ticks, score %d", p.replayer.TotalTicks(), p.world.Score)
		return
	}
	p.world.Input = in
	p.loop.Step()
}

// finishSession saves the recording and persists the best-score table.
func (p *Playing) finishSession() {
	if p.recorder != nil {
		p.saveRecording()
	}
	if p.store != nil {
		p.store.Record(p.world.Stage, p.world.Score)
		if err := p.store.Save(); err != nil {
			log.Printf("failed to save scores: %v", err)
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("failed to save recording: %v", err)
	} else {
		log.Printf("recording saved: %s (%d ticks)", filename, p.recorder.TickCount())
	}
}

func (p *Playing) restart() {
	p.seed = time.Now().UnixNano()
	if p.replayer != nil {
		p.replayer.Reset()
		p.seed = p.replayer.Seed()
		p.playbackDone = false
	}

	p.buildSimulation()
	p.gameState = state.StatePlaying
	p.hitstop = 0
	p.shakeX = 0
	p.shakeY = 0

	if p.recordFilename != "" && p.replayer == nil {
		p.recorder = NewRecorder(p.seed, p.world.Stage)
		log.Printf("recording restarted (seed: %d)", p.seed)
	}
}

// World exposes the live snapshot (for testing)
func (p *Playing) World() *sim.World {
	return p.world
}

// GameState returns the coarse scene state (for testing)
func (p *Playing) GameState() state.GameState {
	return p.gameState
}

// project maps a simulation-space position to screen coordinates plus a
// depth scale factor. The player sits low center; depth shrinks toward
// the horizon.
func (p *Playing) project(v vmath.Vec3) (x, y, s float64) {
	depth := v.Z + focalDepth
	if depth < 1 {
		depth = 1
	}
	s = focalDepth / depth

	cx := float64(p.screenW) / 2
	horizonY := float64(p.screenH) * 0.78

	x = cx + v.X*s*pixelsPerUnit
	y = horizonY - v.Z*s*1.6 - v.Y*s*pixelsPerUnit*0.5
	return x, y, s
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	shakeX := p.shakeX * (2*randFloat() - 1)
	shakeY := p.shakeY * (2*randFloat() - 1)

	p.drawProjectiles(screen, shakeX, shakeY)
	p.drawEnemies(screen, shakeX, shakeY)
	p.drawPlayer(screen, shakeX, shakeY)
	p.drawHUD(screen)

	switch p.gameState {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, shakeX, shakeY float64) {
	for _, e := range p.world.Enemies {
		if !e.Active {
			continue
		}

		x, y, s := p.project(e.Pos)
		size := e.BodyRadius * 2 * s * pixelsPerUnit

		c := enemyFillColor(e, p.world.Elapsed)
		if e.Dying {
			// Fade out over the disintegration window
			remain := 1 - e.DeathTimer/p.cfg.Tuning.Combat.DisintegrationDuration
			if remain < 0 {
				remain = 0
			}
			c = color.RGBA{
				uint8(float64(c.R) * remain),
				uint8(float64(c.G) * remain),
				uint8(float64(c.B) * remain),
				uint8(255 * remain),
			}
		}

		ebitenutil.DrawRect(screen, x-size/2+shakeX, y-size/2+shakeY, size, size, c)

		// Boss health bar above the body
		if e.Type == entity.EnemyBoss && !e.Dying {
			barW := size
			ebitenutil.DrawRect(screen, x-barW/2+shakeX, y-size/2-8+shakeY, barW, 3, colorHealthBG)
			ebitenutil.DrawRect(screen, x-barW/2+shakeX, y-size/2-8+shakeY, barW*e.HealthRatio(), 3, colorBoss)
		}
	}
}

// enemyFillColor picks the body color for an enemy, overridden by a brief
// white flash right after a hit. Dying enemies use the fade instead.
func enemyFillColor(e *entity.Entity, elapsed float64) color.RGBA {
	if !e.Dying && e.LastHitAt > 0 && elapsed-e.LastHitAt < hitFlashDuration {
		return colorHitFlash
	}
	return enemyColor(e.Type)
}

func enemyColor(t entity.EnemyType) color.RGBA {
	switch t {
	case entity.EnemyDrone:
		return colorDrone
	case entity.EnemyStrafer:
		return colorStrafer
	case entity.EnemyJinker:
		return colorJinker
	case entity.EnemyElite:
		return colorElite
	case entity.EnemyBoss:
		return colorBoss
	}
	return colorDrone
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, shakeX, shakeY float64) {
	for _, pr := range p.world.Projectiles {
		if !pr.Active {
			continue
		}

		x, y, s := p.project(pr.Pos)

		if pr.Payload == entity.PayloadArea && pr.Radius > 0 {
			// Expanding pulse rendered as a translucent square front
			size := pr.Radius * 2 * s * pixelsPerUnit
			ebitenutil.DrawRect(screen, x-size/2+shakeX, y-size/2+shakeY, size, size, colorPulse)
			continue
		}

		c := colorShot
		if pr.Side == entity.SideEnemy {
			c = colorEnemyShot
		}
		size := 3 + 3*s
		ebitenutil.DrawRect(screen, x-size/2+shakeX, y-size/2+shakeY, size, size, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, shakeX, shakeY float64) {
	pl := p.world.Player
	x, y, s := p.project(pl.Pos)
	size := 10 * s

	ebitenutil.DrawRect(screen, x-size/2+shakeX, y-size/4+shakeY, size, size/2, colorPlayer)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	pl := p.world.Player

	barX := 10.0
	barW := 120.0
	barH := 8.0

	// Hull
	hullY := float64(p.screenH - 46)
	ebitenutil.DrawRect(screen, barX, hullY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, hullY, barW*pl.HealthRatio(), barH, colorHealthFG)

	// Shield
	shieldY := hullY + barH + 3
	ebitenutil.DrawRect(screen, barX, shieldY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, shieldY, barW*pl.ShieldRatio(), barH, colorShieldFG)

	// Energy
	energyY := shieldY + barH + 3
	ebitenutil.DrawRect(screen, barX, energyY, barW, barH, colorHealthBG)
	ratio := 0.0
	if pl.MaxEnergy > 0 {
		ratio = pl.Energy / pl.MaxEnergy
	}
	ebitenutil.DrawRect(screen, barX, energyY, barW*ratio, barH, colorEnergyFG)

	// Score, stage and phase
	p.drawText(screen, fmt.Sprintf("SCORE %d", p.world.Score), 10, 16)
	if p.store != nil {
		p.drawText(screen, fmt.Sprintf("BEST  %d", p.store.Best()), 10, 30)
	}
	p.drawText(screen, fmt.Sprintf("STAGE %d  %s", p.world.Stage+1, p.waves.Phase()), 10, 44)
	p.drawText(screen, fmt.Sprintf("WEAPON %s", pl.Weapon), 10, 58)

	if p.replayer != nil {
		p.drawText(screen, fmt.Sprintf("PLAYBACK %d/%d", p.replayer.CurrentTick(), p.replayer.TotalTicks()), 10, 72)
	}

	controls := "WASD: Move | Shift: Boost | Space: Fire | 1-8: Weapon | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-16)
}

func (p *Playing) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	ebtext.Draw(screen, s, p.face, op)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{60, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("SHIP DESTROYED\n\nScore: %d\n\nPress Z to restart", p.world.Score)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.finishSession()
}

var randState uint32 = 1

func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}
