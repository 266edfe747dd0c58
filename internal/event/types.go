// internal/event/types.go
package event

// События таймеров. Имена совпадают с именами таймеров планировщика.
const (
	AddBalloon       EventType = "AddBalloon"       // Выпустить свежий шар
	Explode          EventType = "Explode"          // Очередная волна каскадного взрыва
	Unfreeze         EventType = "Unfreeze"         // Конец заморозки
	FreshBalloonWait EventType = "FreshBalloonWait" // Конец ожидания свежего шара
	InvincibilityEnd EventType = "InvincibilityEnd" // Конец неуязвимости
	BlinkPlayer      EventType = "BlinkPlayer"      // Мигание игрока
	FreezerFlash     EventType = "FreezerFlash"     // Мигание замораживающих шаров
)

// Звуковые сигналы для аудио-слоя.
const (
	CuePop        EventType = "pop"
	CueLevelPop   EventType = "level-pop"
	CueExplode    EventType = "explode"
	CueFire       EventType = "fire"
	CuePlayerHit  EventType = "player-hit"
	CueWinFanfare EventType = "win-fanfare"
)

// Изменения состояния игры.
const (
	LevelChanged EventType = "LevelChanged" // Data: int, новый уровень
	LifeLost     EventType = "LifeLost"     // Data: int, сколько жизней осталось
	ModeChanged  EventType = "ModeChanged"  // Data: component.Mode
	GameOver     EventType = "GameOver"
	GameWon      EventType = "GameWon"
)

// Cues - все звуковые сигналы, удобно для подписки.
var Cues = []EventType{CuePop, CueLevelPop, CueExplode, CueFire, CuePlayerHit, CueWinFanfare}
