// internal/component/game_state.go
package component

// Mode - режим игры верхнего уровня
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeFrozenBalloons
	ModeFrozenAll
	ModeGameOver
	ModeWon
)

func (m Mode) String() string {
	switch m {
	case ModePaused:
		return "paused"
	case ModeFrozenBalloons:
		return "frozen-balloons"
	case ModeFrozenAll:
		return "frozen-all"
	case ModeGameOver:
		return "game-over"
	case ModeWon:
		return "won"
	}
	return "playing"
}

// Terminal сообщает, что сессия закончена.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeWon
}

// GameState - счётчики и флаги сессии. Меняется только через StateSystem.
type GameState struct {
	Level         int
	Lives         int
	Spawned       int // Сколько свежих шаров уже выпущено
	SpawnInterval int // Текущий интервал появления, мс
	MakeFreezer   bool

	Paused         bool
	FrozenBalloons bool // Заморозка от часов или замораживающего шара
	Cascading      bool // Идёт каскадный взрыв
	FrozenAll      bool // Заморозка после потери жизни
	Invincible     bool
	PlayerVisible  bool
	Over           bool
	Won            bool
}

// BalloonsFrozen - шары стоят на месте.
func (s *GameState) BalloonsFrozen() bool {
	return s.FrozenBalloons || s.Cascading || s.FrozenAll
}

// Mode выводит режим из флагов. Приоритет: конец игры, пауза, полная
// заморозка, заморозка шаров.
func (s *GameState) Mode() Mode {
	switch {
	case s.Over:
		return ModeGameOver
	case s.Won:
		return ModeWon
	case s.Paused:
		return ModePaused
	case s.FrozenAll:
		return ModeFrozenAll
	case s.FrozenBalloons || s.Cascading:
		return ModeFrozenBalloons
	}
	return ModePlaying
}
