// internal/component/balloon.go
package component

// BalloonKind - вид шара, как его видит рендер и резолвер.
type BalloonKind int

const (
	KindNormal BalloonKind = iota
	KindFreezer
	KindLevelStar
	KindLevelClock
)

func (k BalloonKind) String() string {
	switch k {
	case KindFreezer:
		return "freezer"
	case KindLevelStar:
		return "star"
	case KindLevelClock:
		return "clock"
	}
	return "normal"
}

// Balloon - компонент шара.
type Balloon struct {
	Size    int  // 1..5, шар размера 1 больше не делится
	Level   bool // Шар уровня: звезда или часы
	Star    bool // Фаза шара уровня, переключается на каждом отскоке от пола
	Freezer bool // Признак заморозки, наследуется только левым потомком
	Waiting bool // Свежий шар в периоде ожидания
	FlashOn bool // Мигание замораживающего шара, только для отрисовки
}

// Kind вычисляет вид шара по его признакам.
func (b *Balloon) Kind() BalloonKind {
	switch {
	case b.Level && b.Star:
		return KindLevelStar
	case b.Level:
		return KindLevelClock
	case b.Size == 1 && b.Freezer:
		return KindFreezer
	}
	return KindNormal
}

// FlipLevelPhase переключает звезду и часы.
func (b *Balloon) FlipLevelPhase() {
	if b.Level {
		b.Star = !b.Star
	}
}
