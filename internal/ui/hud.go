// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-superpang/internal/app"
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD - полоса под сценой: уровень, жизни и мигающая надпись паузы.
type HUD struct {
	face      font.Face
	bigFace   font.Face
	lives     *LivesIndicator
	textColor color.Color

	flash      *FlashClock
	pauseShown bool
}

func NewHUD(face, bigFace font.Face, lifeIcon *ebiten.Image) *HUD {
	lives := NewLivesIndicator(
		float32(config.ScreenWidth-config.HUDLivesOffset),
		float32(config.StageHeight+8),
		float32(config.HUDLifeSpacing),
		lifeIcon,
		config.PlayerColor,
	)
	return &HUD{
		face:      face,
		bigFace:   bigFace,
		lives:     lives,
		textColor: config.TextDarkColor,
		flash:     NewFlashClock(config.Ms(config.IntervalPauseLabelFlash).Seconds()),
	}
}

// Update двигает часы надписи паузы. Часы идут только на паузе, после
// выхода из неё надпись снова начинается с видимой фазы.
func (h *HUD) Update(deltaTime float64, mode component.Mode) {
	if mode != component.ModePaused {
		h.flash.Reset()
		h.pauseShown = false
		return
	}
	h.pauseShown = h.flash.Update(deltaTime)
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	baseline := config.StageHeight + (config.ScreenHeight-config.StageHeight)/2 + config.HUDFontSize/3
	text.Draw(screen, fmt.Sprintf("Level: %d", snap.Level), h.face, config.HUDLabelX, baseline, h.textColor)
	h.lives.Draw(screen, snap.Lives)

	if snap.Mode == component.ModePaused && h.pauseShown {
		render.DrawCenteredText(screen, "PAUSED", h.bigFace, config.ScreenWidth/2, config.StageHeight/2, config.TextLightColor)
	}
}

// FlashClock переключает видимость с заданным периодом.
type FlashClock struct {
	period  float64
	elapsed float64
	visible bool
}

func NewFlashClock(period float64) *FlashClock {
	return &FlashClock{period: period, visible: true}
}

// Update возвращает видимость после прошедшего времени.
func (c *FlashClock) Update(deltaTime float64) bool {
	c.elapsed += deltaTime
	for c.elapsed >= c.period {
		c.elapsed -= c.period
		c.visible = !c.visible
	}
	return c.visible
}

func (c *FlashClock) Reset() {
	c.elapsed = 0
	c.visible = true
}
