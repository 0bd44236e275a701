// cmd/viewer/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/movement"
	"go-hex-tactics/internal/state"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "configs/options.yaml", "options file")
	labels := flag.Bool("labels", false, "draw q,r on every cell")
	flag.Parse()

	logger := log.New(os.Stderr, "[viewer] ", log.LstdFlags)

	opts, err := config.LoadOptions(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatal(err)
		}
		logger.Printf("%s not found, using defaults", *configPath)
		opts = config.DefaultOptions()
	}
	world, err := app.NewWorld(opts, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if len(world.Engine.Units()) == 0 {
		if err := world.PlaceDemoUnits(); err != nil {
			logger.Fatal(err)
		}
	}
	world.Events.Subscribe(event.UnitStepped, event.ListenerFunc(func(e event.Event) {
		if step, ok := e.Data.(movement.StepEvent); ok && step.Last {
			logger.Printf("%s arrived at %s", step.Unit.ID, step.To)
		}
	}))

	layout := hexmap.FitLayout(world.Map, config.HexSize, config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewHexRenderer(world.Map, layout, config.ScreenWidth, config.ScreenHeight)
	if *labels {
		renderer.ShowLabels = true
		renderer.RenderMapImage()
	}

	session := &state.Session{
		Engine:   world.Engine,
		Roads:    world.Roads,
		Renderer: renderer,
		Logger:   logger,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewSelectState(sm, session, ""))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Tactics")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
