// pkg/render/color.go
package render

import "image/color"

// StageColors - цвета для отрисовки сцены, когда картинок нет.
type StageColors struct {
	LevelColors     []color.RGBA // Фон по уровню, индекс - уровень-1
	GroundColor     color.RGBA
	BalloonColors   []color.RGBA // Индекс - размер шара
	FreezerColor    color.RGBA
	FreezerFlash    color.RGBA
	StarColor       color.RGBA
	ClockColor      color.RGBA
	PlayerColor     color.RGBA
	ProjectileColor color.RGBA
	StrokeWidth     float32
}

// Background возвращает фон уровня. Уровни за пределами таблицы берут
// последний цвет.
func (c *StageColors) Background(level int) color.RGBA {
	if len(c.LevelColors) == 0 {
		return color.RGBA{A: 255}
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.LevelColors) {
		i = len(c.LevelColors) - 1
	}
	return c.LevelColors[i]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с другой прозрачностью.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	// RGBA хранит premultiplied-значения
	k := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: a,
	}
}
