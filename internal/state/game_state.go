// internal/state/game_state.go
package state

import (
	"log"

	"go-superpang/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState - идёт партия
type GameState struct {
	sm      *StateMachine
	res     *Resources
	session *app.Session
	last    app.Snapshot
}

func NewGameState(sm *StateMachine, res *Resources, session *app.Session) *GameState {
	return &GameState{sm: sm, res: res, session: session, last: session.Snapshot()}
}

// StartGame создаёт новую сессию и переключается на неё. Ошибка
// конфигурации здесь уже невозможна, main проверил её до запуска.
func StartGame(sm *StateMachine, res *Resources) {
	session, err := app.NewSession(res.Tuning)
	if err != nil {
		log.Printf("ERROR: %v", err)
		sm.Quit()
		return
	}
	sm.SetState(NewGameState(sm, res, session))
}

func (g *GameState) Enter() {
	g.res.Sounds.Attach(g.session.EventDispatcher)
	g.res.Sounds.PlayTheme()
}

func (g *GameState) Update(deltaTime float64) {
	g.session.Update(sampleInput(), deltaTime)
	if g.session.QuitRequested() {
		g.sm.Quit()
		return
	}
	g.last = g.session.Snapshot()
	g.res.HUD.Update(deltaTime, g.last.Mode)
	if g.last.Mode.Terminal() {
		g.sm.SetState(NewEndState(g.sm, g.res, g.last))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.res.Renderer.Draw(screen, g.last)
	g.res.HUD.Draw(screen, g.last)
}

func (g *GameState) Exit() {
	g.res.Sounds.StopTheme()
}
