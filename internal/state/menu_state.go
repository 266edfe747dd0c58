// internal/state/menu_state.go
package state

import (
	"go-superpang/internal/config"
	"go-superpang/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - титульный экран
type MenuState struct {
	sm  *StateMachine
	res *Resources
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		StartGame(m.sm, m.res)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	render.DrawCenteredText(screen, "SUPER PANG", m.res.BigFace, config.ScreenWidth/2, config.ScreenHeight/3, config.WonColor)
	render.DrawCenteredText(screen, "Press SPACE to start", m.res.Face, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	render.DrawCenteredText(screen, "Arrows move, Up or Z fires, Space pauses, Esc quits", m.res.Face, config.ScreenWidth/2, config.ScreenHeight*2/3, config.TextLightColor)
}

func (m *MenuState) Exit() {}
