package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tethered/common"
	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
	"github.com/milk9111/tethered/ecs/entity"
	"github.com/milk9111/tethered/ecs/system"
	"github.com/milk9111/tethered/levels"
)

type Game struct {
	frames int

	levelName string
	level     *levels.Level
	debug     bool

	world     *ecs.World
	physics   *ecs.PhysicsWorld
	scheduler *ecs.Scheduler
	signals   *system.SignalSystem

	paused  bool
	won     bool
	pauseUI *ebitenui.UI

	watcher *levels.Watcher
}

func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{debug: debug}
	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := levels.NewWatcher("levels", "levels/scripts")
		if err != nil {
			log.Printf("game: level watcher unavailable: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadLevel tears down the current world and builds a fresh one from the
// named level file.
func (g *Game) loadLevel(name string) error {
	if !strings.Contains(name, ".") {
		name += ".yaml"
	}

	lvl, err := levels.LoadLevel(name)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(common.Gravity)
	w.SetPhysics(pw)

	if _, err := entity.BuildLevel(w, pw, lvl); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	conn := system.NewConnectionSystem()
	conn.RegisterFromTriggers(w)
	gens := system.NewGeneratorSystem()
	signals := system.NewSignalSystem(conn, gens)

	var scriptSource []byte
	if lvl.Script != "" {
		src, err := levels.LoadScript(lvl.Script)
		if err != nil {
			log.Printf("game: script %s: %v", lvl.Script, err)
		} else {
			scriptSource = src
		}
	}
	scripts, err := system.NewScriptSystem(scriptSource, signals)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewCordSystem(),
		system.NewPushBlockSystem(),
		system.NewTriggerSystem(),
		system.NewTriggerZoneSystem(),
		signals,
		system.NewElevatorSystem(),
		system.NewDoorSystem(),
		system.NewDrawbridgeSystem(),
		system.NewPhysicsSystem(pw),
		system.NewPropSystem(),
		system.NewHazardSystem(),
		system.NewEnemySystem(),
		scripts,
	)

	// the primary generator is live from the first tick
	ecs.ForEach2(w, component.GeneratorComponent.Kind(), component.ElementComponent.Kind(), func(_ ecs.Entity, gen *component.Generator, el *component.Element) {
		if gen.Primary {
			gens.ActivateGenerator(w, el.ID)
		}
	})

	g.levelName = name
	g.level = lvl
	g.world = w
	g.physics = pw
	g.scheduler = scheduler
	g.signals = signals
	g.won = false
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.watcher != nil {
		select {
		case path, ok := <-g.watcher.Events:
			if ok {
				log.Printf("game: %s changed, reloading %s", path, g.levelName)
				if err := g.loadLevel(g.levelName); err != nil {
					log.Printf("game: reload failed: %v", err)
				}
			}
		default:
		}
	}

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.loadLevel(g.levelName); err != nil {
			log.Printf("game: restart failed: %v", err)
		}
		return nil
	}

	if g.won {
		return nil
	}

	g.scheduler.Update(g.world)

	if g.signals.LevelComplete() {
		if g.level.Next == "" {
			g.won = true
			return nil
		}
		next := g.level.Next
		if err := g.loadLevel(next); err != nil {
			log.Printf("game: next level %s: %v", next, err)
			g.won = true
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world)

	if g.won {
		ebitenutil.DebugPrintAt(screen, "LEVEL COMPLETE", common.BaseWidth/2-56, common.BaseHeight/2)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
