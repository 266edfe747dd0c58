// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	StageHeight  = 560 // Нижняя граница сцены, ниже - полоса HUD
	FPS          = 30
	MaxDeltaTime = 0.1

	// Физика шаров
	Gravity       = 0.5 // Ускорение вниз за тик
	InitialSpeedX = 3.0 // Горизонтальная скорость (постоянная по модулю)
	InitialSpeedY = 20.0
	DampingFactor = 1.0 // 1.0 - упругий отскок без потерь

	MaxBalloonSize  = 5
	FreshSpawnInset = 40  // Отступ правого угла появления (центр шара)
	TopSplitMargin  = 20  // Шар у самого верха делится без подброса
	PlayerSpeed     = 8.0 // Пикселей за тик
	ProjectileSpeed = 15.0

	PlayerWidth      = 40
	PlayerHeight     = 64
	PlayerOffsetY    = 40 // Центр игрока над полом сцены
	ProjectileWidth  = 8
	ProjectileHeight = 40
	ProjectileInset  = 20 // Стрела появляется над полом сцены

	NumLives         = 3
	TotalBalloons    = 100
	MaxLevel         = 10
	BalloonsPerLevel = 10

	// Интервалы, мс
	IntervalFreshBalloon     = 20000
	IntervalFreshBalloonWait = 2000
	IntervalFreezeClock      = 4000
	IntervalFreezeBalloon    = 2000
	IntervalFreezeLostLife   = 1500
	IntervalExplode          = 500
	IntervalPauseLabelFlash  = 800
	IntervalInvincibility    = 5000
	IntervalBlinkPlayer      = 300
	IntervalFreezerFlash     = 250
	IntervalLevelStep        = 100 // На сколько сокращается интервал за уровень
	MinSpawnInterval         = 800
	EndScreenDelay           = 2000

	HUDLabelX      = 10
	HUDLivesOffset = 200
	HUDLifeSpacing = 40
	HUDFontSize    = 24
	BigFontSize    = 48
)

var (
	BackgroundColor = color.RGBA{30, 40, 70, 255}
	GroundColor     = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	WonColor        = color.RGBA{255, 215, 0, 255}
	PlayerColor     = color.RGBA{60, 120, 220, 255}
	ProjectileColor = color.RGBA{230, 230, 230, 255}
	FreezerColor    = color.RGBA{120, 220, 255, 255}
	FreezerFlash    = color.RGBA{255, 255, 255, 255}
	StarColor       = color.RGBA{255, 215, 0, 255}
	ClockColor      = color.RGBA{180, 120, 255, 255}
	StrokeWidth     = 2.0

	// Цвет шара по размеру, индекс - размер
	BalloonColors = []color.RGBA{
		{},                  // 0 не используется
		{255, 140, 0, 255},  // 1
		{50, 205, 50, 255},  // 2
		{30, 144, 255, 255}, // 3
		{220, 20, 60, 255},  // 4
		{255, 50, 50, 255},  // 5
	}

	// Фоны уровней, если картинка не загрузилась
	LevelColors = []color.RGBA{
		{30, 40, 70, 255},
		{40, 70, 50, 255},
		{70, 50, 40, 255},
		{50, 40, 80, 255},
		{30, 70, 80, 255},
		{80, 70, 30, 255},
		{60, 30, 60, 255},
		{30, 60, 40, 255},
		{70, 30, 30, 255},
		{20, 20, 30, 255},
	}
)

// Bounds - прямоугольник отражения для шаров.
type Bounds struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`
}

// StageBounds возвращает границы игрового поля по умолчанию.
func StageBounds() Bounds {
	return Bounds{MinX: 0, MaxX: ScreenWidth, MinY: 0, MaxY: StageHeight}
}
