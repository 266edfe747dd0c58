// internal/defs/balloons.go
package defs

import "fmt"

// BalloonTier описывает размерный класс шара.
type BalloonTier struct {
	Size   int     `json:"size"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Image  string  `json:"image"` // Имя картинки в assets/images
}

// BalloonTiers - таблица размеров, ключ - размер шара.
var BalloonTiers = map[int]BalloonTier{
	1: {Size: 1, Width: 20, Height: 20, Image: "balloon_1.png"},
	2: {Size: 2, Width: 32, Height: 32, Image: "balloon_2.png"},
	3: {Size: 3, Width: 48, Height: 48, Image: "balloon_3.png"},
	4: {Size: 4, Width: 64, Height: 64, Image: "balloon_4.png"},
	5: {Size: 5, Width: 80, Height: 80, Image: "balloon_5.png"},
}

// Картинки особых шаров.
const (
	ImageBalloonFreeze = "balloon_1_freeze.png"
	ImageBalloonStar   = "balloon_star.png"
	ImageBalloonClock  = "balloon_clock.png"
)

// Tier возвращает описание размера. Размер вне таблицы - ошибка программиста.
func Tier(size int) BalloonTier {
	t, ok := BalloonTiers[size]
	if !ok {
		panic(fmt.Sprintf("unknown balloon size %d", size))
	}
	return t
}
