// internal/state/resources.go
package state

import (
	"go-superpang/internal/assets"
	"go-superpang/internal/config"
	"go-superpang/internal/defs"
	"go-superpang/internal/ui"
	"go-superpang/pkg/render"

	"golang.org/x/image/font"
)

// Resources - всё, что переживает перезапуск партии: настройки, картинки,
// звук, шрифты. Создаётся один раз в main.
type Resources struct {
	Tuning   config.Tuning
	Sprites  *assets.SpriteCache
	Sounds   *assets.SoundBank
	Renderer *render.StageRenderer
	HUD      *ui.HUD
	Face     font.Face
	BigFace  font.Face
}

// LoadResources загружает ресурсы из каталога root.
func LoadResources(root string, tuning config.Tuning) *Resources {
	sprites := assets.NewSpriteCache(root)
	sprites.Preload(render.Images(tuning.MaxLevel)...)

	colors := &render.StageColors{
		LevelColors:     config.LevelColors,
		GroundColor:     config.GroundColor,
		BalloonColors:   config.BalloonColors,
		FreezerColor:    config.FreezerColor,
		FreezerFlash:    config.FreezerFlash,
		StarColor:       config.StarColor,
		ClockColor:      config.ClockColor,
		PlayerColor:     config.PlayerColor,
		ProjectileColor: config.ProjectileColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	face := assets.LoadFace(root, assets.DefaultFont, config.HUDFontSize)
	bigFace := assets.LoadFace(root, assets.DefaultFont, config.BigFontSize)

	return &Resources{
		Tuning:   tuning,
		Sprites:  sprites,
		Sounds:   assets.NewSoundBank(root),
		Renderer: render.NewStageRenderer(sprites, colors, config.ScreenWidth, config.ScreenHeight, config.StageHeight),
		HUD:      ui.NewHUD(face, bigFace, sprites.Image(defs.ImagePlayerLife)),
		Face:     face,
		BigFace:  bigFace,
	}
}
