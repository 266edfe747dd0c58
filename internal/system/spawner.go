// internal/system/spawner.go
package system

import (
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/interfaces"
	"go-superpang/internal/types"
	"go-superpang/internal/utils"
)

// SpawnerSystem выпускает свежие шары по таймеру и ведёт счёт уровней.
type SpawnerSystem struct {
	ecs             *entity.ECS
	colliders       interfaces.Colliders
	timers          interfaces.Timers
	eventDispatcher *event.Dispatcher
	state           *StateSystem
	rng             *utils.PRNGService
	tuning          config.Tuning
}

func NewSpawnerSystem(ecs *entity.ECS, colliders interfaces.Colliders, timers interfaces.Timers, eventDispatcher *event.Dispatcher, state *StateSystem, rng *utils.PRNGService, tuning config.Tuning) *SpawnerSystem {
	ss := &SpawnerSystem{
		ecs:             ecs,
		colliders:       colliders,
		timers:          timers,
		eventDispatcher: eventDispatcher,
		state:           state,
		rng:             rng,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.AddBalloon, ss)
	eventDispatcher.Subscribe(event.FreshBalloonWait, ss)
	return ss
}

func (s *SpawnerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.AddBalloon:
		s.OnAddBalloon()
	case event.FreshBalloonWait:
		if id, ok := e.Data.(types.EntityID); ok {
			s.OnWaitEnd(id)
		}
	}
}

// Start выпускает первый шар и взводит таймер следующих.
func (s *SpawnerSystem) Start() {
	s.timers.Arm(TimerKey(event.AddBalloon), config.Ms(s.ecs.GameState.SpawnInterval), true)
	s.SpawnFresh()
}

func (s *SpawnerSystem) OnAddBalloon() {
	if s.ecs.GameState.Spawned >= s.tuning.TotalBalloons {
		s.timers.Disarm(TimerKey(event.AddBalloon))
		return
	}
	s.SpawnFresh()
}

// SpawnFresh выпускает шар максимального размера в верхнем углу. Каждый
// второй шар несёт признак заморозки, шар на переходе уровня - шар уровня.
func (s *SpawnerSystem) SpawnFresh() types.EntityID {
	gs := s.ecs.GameState
	gs.MakeFreezer = !gs.MakeFreezer
	gs.Spawned++

	level := gs.Spawned/s.tuning.BalloonsPerLevel + 1
	levelBalloon := s.state.AdvanceLevel(level)
	if levelBalloon {
		s.timers.Arm(TimerKey(event.AddBalloon), config.Ms(gs.SpawnInterval), true)
	}
	if gs.Spawned >= s.tuning.TotalBalloons {
		s.timers.Disarm(TimerKey(event.AddBalloon))
	}

	dir := s.rng.Direction()
	cx := s.tuning.Bounds.MinX
	if dir < 0 {
		cx = s.tuning.Bounds.MaxX - config.FreshSpawnInset
	}

	id := SpawnBalloon(s.ecs, s.colliders, s.tuning, BalloonSpec{
		Size:    config.MaxBalloonSize,
		CX:      cx,
		CY:      s.tuning.Bounds.MinY,
		XDir:    dir,
		Level:   levelBalloon,
		Freezer: gs.MakeFreezer,
		Waiting: true,
	})
	s.timers.Arm(EntityTimerKey(event.FreshBalloonWait, id), config.Ms(s.tuning.Intervals.FreshBalloonWait), false)
	return id
}

// OnWaitEnd выводит шар из ожидания. Срабатывает один раз на шар.
func (s *SpawnerSystem) OnWaitEnd(id types.EntityID) {
	if balloon, ok := s.ecs.Balloons[id]; ok && balloon.Waiting {
		balloon.Waiting = false
	}
}
