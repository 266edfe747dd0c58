// pkg/render/stage_renderer.go
package render

import (
	"image/color"

	"go-superpang/internal/app"
	"go-superpang/internal/assets"
	"go-superpang/internal/component"
	"go-superpang/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StageRenderer рисует сцену по снимку сессии: фон уровня, шары, стрелы,
// игрока и полосу земли. Картинки берутся из кэша, вместо недостающих
// рисуются фигуры.
type StageRenderer struct {
	sprites      *assets.SpriteCache
	colors       *StageColors
	screenWidth  int
	screenHeight int
	stageHeight  int
}

func NewStageRenderer(sprites *assets.SpriteCache, colors *StageColors, screenWidth, screenHeight, stageHeight int) *StageRenderer {
	return &StageRenderer{
		sprites:      sprites,
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		stageHeight:  stageHeight,
	}
}

// Images - все картинки, которые может запросить рендер.
func Images(maxLevel int) []string {
	names := []string{
		defs.ImagePlayerStanding, defs.ImagePlayerFiring, defs.ImagePlayerLeft,
		defs.ImagePlayerLife, defs.ImageArrow,
		defs.ImageBalloonFreeze, defs.ImageBalloonStar, defs.ImageBalloonClock,
	}
	for size := 1; size <= len(defs.BalloonTiers); size++ {
		names = append(names, defs.Tier(size).Image)
	}
	for level := 1; level <= maxLevel; level++ {
		names = append(names, defs.LevelBackground(level))
	}
	return names
}

func (r *StageRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	r.drawBackground(screen, snap.Level)
	for _, b := range snap.Balloons {
		r.drawBalloon(screen, b)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
	r.drawPlayer(screen, snap.Player)
	vector.DrawFilledRect(screen, 0, float32(r.stageHeight), float32(r.screenWidth), float32(r.screenHeight-r.stageHeight), r.colors.GroundColor, false)
}

func (r *StageRenderer) drawBackground(screen *ebiten.Image, level int) {
	if img := r.sprites.Image(defs.LevelBackground(level)); img != nil {
		drawInRect(screen, img, app.Rect{W: float64(r.screenWidth), H: float64(r.stageHeight)}, false)
		return
	}
	screen.Fill(r.colors.Background(level))
}

func (r *StageRenderer) drawBalloon(screen *ebiten.Image, b app.BalloonView) {
	if img := r.sprites.Image(balloonImage(b)); img != nil {
		drawInRect(screen, img, b.Rect, false)
		return
	}
	fill := r.balloonColor(b)
	cx := float32(b.Rect.X + b.Rect.W/2)
	cy := float32(b.Rect.Y + b.Rect.H/2)
	radius := float32(b.Rect.W / 2)
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	vector.StrokeCircle(screen, cx, cy, radius, r.colors.StrokeWidth, DarkenColor(fill), true)
}

func balloonImage(b app.BalloonView) string {
	switch b.Kind {
	case component.KindLevelStar:
		return defs.ImageBalloonStar
	case component.KindLevelClock:
		return defs.ImageBalloonClock
	case component.KindFreezer:
		if !b.FlashOn {
			return defs.ImageBalloonFreeze
		}
	}
	return defs.Tier(b.Size).Image
}

func (r *StageRenderer) balloonColor(b app.BalloonView) color.RGBA {
	switch b.Kind {
	case component.KindLevelStar:
		return r.colors.StarColor
	case component.KindLevelClock:
		return r.colors.ClockColor
	case component.KindFreezer:
		if b.FlashOn {
			return r.colors.FreezerFlash
		}
		return r.colors.FreezerColor
	}
	if b.Size > 0 && b.Size < len(r.colors.BalloonColors) {
		return r.colors.BalloonColors[b.Size]
	}
	return r.colors.FreezerFlash
}

func (r *StageRenderer) drawProjectile(screen *ebiten.Image, p app.Rect) {
	if img := r.sprites.Image(defs.ImageArrow); img != nil {
		drawInRect(screen, img, p, false)
		return
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), r.colors.ProjectileColor, false)
}

func (r *StageRenderer) drawPlayer(screen *ebiten.Image, p app.PlayerView) {
	if !p.Visible {
		return
	}
	name, mirror := defs.ImagePlayerStanding, false
	switch {
	case p.Firing:
		name = defs.ImagePlayerFiring
	case p.Facing < 0:
		name = defs.ImagePlayerLeft
	case p.Facing > 0:
		// Картинки «вправо» нет, отражаем левую
		name, mirror = defs.ImagePlayerLeft, true
	}
	if img := r.sprites.Image(name); img != nil {
		drawInRect(screen, img, p.Rect, mirror)
		return
	}
	vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), r.colors.PlayerColor, false)
}

// drawInRect растягивает картинку на прямоугольник.
func drawInRect(dst, img *ebiten.Image, rect app.Rect, mirror bool) {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	op := &ebiten.DrawImageOptions{}
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Scale(rect.W/w, rect.H/h)
	op.GeoM.Translate(rect.X, rect.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawCenteredText рисует строку по центру относительно точки (x, y).
func DrawCenteredText(dst *ebiten.Image, label string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, label)
	w, h := bounds.Dx(), bounds.Dy()
	text.Draw(dst, label, face, x-w/2, y+h/2, clr)
}
