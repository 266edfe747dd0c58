// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"go-superpang/internal/config"
	"go-superpang/internal/defs"
	"go-superpang/internal/state"
	"go-superpang/internal/termui"

	"github.com/gdamore/tcell/v2"
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
	if a.stateMachine.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "superpang: %v\n", err)
		os.Exit(2)
	}
	closeLog, err := setupLogging(opts.debug, opts.tui, "logs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "superpang: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tuning, err := config.Load(opts.configPath)
	if err == nil {
		err = defs.LoadBalloonTiers(filepath.Join(opts.assetsDir, "data", "balloons.json"))
	}
	if err == nil {
		opts.apply(&tuning)
		err = tuning.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "superpang: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	if tuning.Seed == 0 {
		tuning.Seed = time.Now().UnixNano()
	}

	if opts.debug {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	if opts.tui {
		err = runTerminal(tuning)
	} else {
		err = runWindow(tuning, opts)
	}
	if err != nil {
		log.Printf("ERROR: %v", err)
		fmt.Fprintf(os.Stderr, "superpang: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func runWindow(tuning config.Tuning, opts options) error {
	res := state.LoadResources(opts.assetsDir, tuning)
	defer res.Sprites.Cleanup()

	sm := state.NewStateMachine()
	if opts.menu {
		sm.SetState(state.NewMenuState(sm, res))
	} else {
		state.StartGame(sm, res)
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Super Pang")
	ebiten.SetTPS(tuning.FPS)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(tuning config.Tuning) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term, err := termui.New(screen, tuning)
	if err != nil {
		return err
	}
	term.EnableSound()
	return term.Run()
}
