// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator рисует оставшиеся жизни иконками в ряд.
type LivesIndicator struct {
	X, Y    float32
	Spacing float32
	Icon    *ebiten.Image // nil - рисуем прямоугольники
	Color   color.RGBA
}

func NewLivesIndicator(x, y, spacing float32, icon *ebiten.Image, clr color.RGBA) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Spacing: spacing, Icon: icon, Color: clr}
}

func (l *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	for i := 0; i < lives; i++ {
		x := l.X + float32(i)*l.Spacing
		if l.Icon != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(l.Y))
			screen.DrawImage(l.Icon, op)
			continue
		}
		vector.DrawFilledRect(screen, x, l.Y, l.Spacing*0.6, l.Spacing*0.8, l.Color, false)
	}
}
