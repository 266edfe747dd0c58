// internal/system/state.go
package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/interfaces"
	"log"
)

// StateSystem - единственный владелец GameState. Все переходы режимов
// проходят через него, таймеры заморозок и неуязвимости тоже.
type StateSystem struct {
	ecs             *entity.ECS
	timers          interfaces.Timers
	eventDispatcher *event.Dispatcher
	tuning          config.Tuning
	lastMode        component.Mode
}

func NewStateSystem(ecs *entity.ECS, timers interfaces.Timers, eventDispatcher *event.Dispatcher, tuning config.Tuning) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		timers:          timers,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.Unfreeze, ss)
	eventDispatcher.Subscribe(event.InvincibilityEnd, ss)
	eventDispatcher.Subscribe(event.BlinkPlayer, ss)
	eventDispatcher.Subscribe(event.FreezerFlash, ss)
	return ss
}

// Start приводит состояние к началу сессии.
func (s *StateSystem) Start() {
	*s.ecs.GameState = component.GameState{
		Level:         1,
		Lives:         s.tuning.Lives,
		SpawnInterval: s.tuning.Intervals.FreshBalloon,
		MakeFreezer:   true, // Переключается перед каждым шаром, первый будет обычным
		PlayerVisible: true,
	}
	s.lastMode = component.ModePlaying
	s.timers.Arm(TimerKey(event.FreezerFlash), config.Ms(s.tuning.Intervals.FreezerFlash), true)
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.Unfreeze:
		s.OnUnfreeze()
	case event.InvincibilityEnd:
		s.OnInvincibilityEnd()
	case event.BlinkPlayer:
		s.ecs.GameState.PlayerVisible = !s.ecs.GameState.PlayerVisible
	case event.FreezerFlash:
		s.flashFreezers()
	}
}

func (s *StateSystem) Current() component.Mode {
	return s.ecs.GameState.Mode()
}

// TogglePause работает в любом режиме, кроме конца игры.
func (s *StateSystem) TogglePause() {
	gs := s.ecs.GameState
	if gs.Mode().Terminal() {
		return
	}
	gs.Paused = !gs.Paused
}

// StartCascade замораживает шары и запускает волны взрыва.
func (s *StateSystem) StartCascade() {
	s.ecs.GameState.Cascading = true
	s.timers.Arm(TimerKey(event.Explode), config.Ms(s.tuning.Intervals.Explode), true)
}

// EndCascade снимает заморозку каскада и останавливает таймер волн.
func (s *StateSystem) EndCascade() {
	s.ecs.GameState.Cascading = false
	s.timers.Disarm(TimerKey(event.Explode))
}

// FreezeBalloons останавливает шары на interval мс.
func (s *StateSystem) FreezeBalloons(interval int) {
	s.ecs.GameState.FrozenBalloons = true
	s.timers.Arm(TimerKey(event.Unfreeze), config.Ms(interval), false)
}

// OnUnfreeze снимает обе заморозки. После полной заморозки начинается
// неуязвимость.
func (s *StateSystem) OnUnfreeze() {
	gs := s.ecs.GameState
	gs.FrozenBalloons = false
	if gs.FrozenAll {
		gs.FrozenAll = false
		gs.Invincible = true
		s.timers.Arm(TimerKey(event.InvincibilityEnd), config.Ms(s.tuning.Intervals.Invincibility), false)
	}
}

func (s *StateSystem) OnInvincibilityEnd() {
	gs := s.ecs.GameState
	gs.Invincible = false
	gs.PlayerVisible = true
	s.timers.Disarm(TimerKey(event.BlinkPlayer))
}

// PlayerHit отнимает жизнь. Последняя жизнь - сразу конец игры, без
// заморозки и неуязвимости.
func (s *StateSystem) PlayerHit() {
	gs := s.ecs.GameState
	if gs.Lives <= 0 || gs.Mode().Terminal() {
		return
	}
	gs.Lives--
	s.eventDispatcher.Dispatch(event.Event{Type: event.CuePlayerHit})
	s.eventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: gs.Lives})

	if gs.Lives == 0 {
		gs.Over = true
		s.stopTimers()
		log.Printf("Game over on level %d, %d balloons released", gs.Level, gs.Spawned)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		return
	}

	log.Printf("Life lost, %d left", gs.Lives)
	gs.FrozenAll = true
	s.timers.Arm(TimerKey(event.Unfreeze), config.Ms(s.tuning.Intervals.FreezeLostLife), false)
	s.timers.Arm(TimerKey(event.BlinkPlayer), config.Ms(s.tuning.Intervals.BlinkPlayer), true)
}

// AdvanceLevel поднимает уровень, если он вырос. Возвращает true при переходе.
func (s *StateSystem) AdvanceLevel(level int) bool {
	gs := s.ecs.GameState
	if level > s.tuning.MaxLevel {
		level = s.tuning.MaxLevel
	}
	if level <= gs.Level {
		return false
	}
	gs.Level = level
	iv := s.tuning.Intervals
	gs.SpawnInterval = iv.FreshBalloon - level*iv.LevelStep
	if gs.SpawnInterval < iv.MinSpawn {
		gs.SpawnInterval = iv.MinSpawn
	}
	log.Printf("Level %d, spawn interval %dms", level, gs.SpawnInterval)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelChanged, Data: level})
	return true
}

// CheckWin - победа, когда выпущены все шары и поле пустое.
func (s *StateSystem) CheckWin() bool {
	gs := s.ecs.GameState
	if gs.Over || gs.Won {
		return gs.Won
	}
	if s.ecs.LiveBalloons() > 0 || gs.Spawned < s.tuning.TotalBalloons {
		return false
	}
	gs.Won = true
	s.stopTimers()
	log.Printf("Won with %d lives left", gs.Lives)
	s.eventDispatcher.Dispatch(event.Event{Type: event.CueWinFanfare})
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	return true
}

// NotifyMode рассылает ModeChanged, если режим поменялся с прошлого вызова.
func (s *StateSystem) NotifyMode() {
	mode := s.ecs.GameState.Mode()
	if mode == s.lastMode {
		return
	}
	s.lastMode = mode
	s.eventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: mode})
}

func (s *StateSystem) flashFreezers() {
	for _, b := range s.ecs.Balloons {
		if b.Kind() == component.KindFreezer {
			b.FlashOn = !b.FlashOn
		}
	}
}

// stopTimers гасит все таймеры сессии, после конца игры ничего не меняется.
func (s *StateSystem) stopTimers() {
	for _, kind := range []event.EventType{
		event.AddBalloon, event.Explode, event.Unfreeze, event.InvincibilityEnd,
		event.BlinkPlayer, event.FreezerFlash,
	} {
		s.timers.Disarm(TimerKey(kind))
	}
	for id, b := range s.ecs.Balloons {
		if b.Waiting {
			s.timers.Disarm(EntityTimerKey(event.FreshBalloonWait, id))
		}
	}
}
