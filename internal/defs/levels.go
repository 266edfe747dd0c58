// internal/defs/levels.go
package defs

import "fmt"

// LevelBackground возвращает имя фоновой картинки уровня (1..10).
func LevelBackground(level int) string {
	return fmt.Sprintf("background_%d.jpg", level)
}

// Картинки игрока и стрелы.
const (
	ImagePlayerStanding = "player_standing.png"
	ImagePlayerFiring   = "player_firing.png"
	ImagePlayerLeft     = "player_left_0.png"
	ImagePlayerLife     = "player_life.png"
	ImageArrow          = "arrow.png"
)

// Звуки.
const (
	SoundTheme    = "theme.ogg"
	SoundPop      = "pop.ogg"
	SoundFire     = "fire.ogg"
	SoundOw       = "ow.ogg"
	SoundLevel    = "level.ogg"
	SoundApplause = "applause.ogg"
)
