// internal/state/input.go
package state

import (
	"go-superpang/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sampleInput читает клавиатуру и мышь за текущий тик.
func sampleInput() input.Frame {
	return input.Frame{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire: inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PauseToggled: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
