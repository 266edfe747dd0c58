// internal/state/end_state.go
package state

import (
	"go-superpang/internal/app"
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndState - экран конца игры или победы поверх последнего кадра. Перезапуск
// принимается только после задержки, чтобы случайное нажатие не начало
// новую партию.
type EndState struct {
	sm      *StateMachine
	res     *Resources
	last    app.Snapshot
	elapsed float64
}

func NewEndState(sm *StateMachine, res *Resources, last app.Snapshot) *EndState {
	return &EndState{sm: sm, res: res, last: last}
}

func (e *EndState) Enter() {}

func (e *EndState) Update(deltaTime float64) {
	e.elapsed += deltaTime
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.sm.Quit()
		return
	}
	if e.ready() && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		StartGame(e.sm, e.res)
	}
}

func (e *EndState) ready() bool {
	return e.elapsed >= config.Ms(config.EndScreenDelay).Seconds()
}

func (e *EndState) Draw(screen *ebiten.Image) {
	e.res.Renderer.Draw(screen, e.last)
	e.res.HUD.Draw(screen, e.last)

	label, clr := "GAME OVER", config.GameOverColor
	if e.last.Mode == component.ModeWon {
		label, clr = "YOU WON!", config.WonColor
	}
	render.DrawCenteredText(screen, label, e.res.BigFace, config.ScreenWidth/2, config.StageHeight/2, clr)
	if e.ready() {
		render.DrawCenteredText(screen, "Press SPACE to play again", e.res.Face, config.ScreenWidth/2, config.StageHeight/2+config.BigFontSize, config.TextLightColor)
	}
}

func (e *EndState) Exit() {}
