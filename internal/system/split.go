// internal/system/split.go
package system

import (
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/interfaces"
	"go-superpang/internal/types"
)

// SplitSystem применяет попадания стрел: делит шары, включает заморозки
// и ведёт каскадный взрыв.
type SplitSystem struct {
	ecs             *entity.ECS
	colliders       interfaces.Colliders
	eventDispatcher *event.Dispatcher
	state           *StateSystem
	tuning          config.Tuning
}

func NewSplitSystem(ecs *entity.ECS, colliders interfaces.Colliders, eventDispatcher *event.Dispatcher, state *StateSystem, tuning config.Tuning) *SplitSystem {
	ss := &SplitSystem{
		ecs:             ecs,
		colliders:       colliders,
		eventDispatcher: eventDispatcher,
		state:           state,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.Explode, ss)
	return ss
}

func (s *SplitSystem) OnEvent(e event.Event) {
	if e.Type == event.Explode {
		s.ExplodeWave()
	}
}

// Resolve обрабатывает попадания кадра. Стрела удаляется при первом же
// попадании, но все шары, которых она касалась, тоже лопаются. Шар,
// задетый двумя стрелами, обрабатывается один раз.
func (s *SplitSystem) Resolve(hits []Hit) {
	resolved := make(map[types.EntityID]bool, len(hits))
	for _, hit := range hits {
		if _, ok := s.ecs.Projectiles[hit.Projectile]; ok {
			RemoveEntity(s.ecs, s.colliders, hit.Projectile)
		}
		if resolved[hit.Balloon] {
			continue
		}
		resolved[hit.Balloon] = true
		s.pop(hit.Balloon)
	}
}

func (s *SplitSystem) pop(id types.EntityID) {
	balloon, ok := s.ecs.Balloons[id]
	if !ok || balloon.Waiting {
		return
	}

	switch {
	case balloon.Level:
		if balloon.Star {
			s.state.StartCascade()
		} else {
			s.state.FreezeBalloons(s.tuning.Intervals.FreezeClock)
		}
		RemoveEntity(s.ecs, s.colliders, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CueLevelPop})
	case balloon.Size > 1:
		s.Split(id, false)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CuePop})
	case balloon.Freezer:
		s.state.FreezeBalloons(s.tuning.Intervals.FreezeBalloon)
		RemoveEntity(s.ecs, s.colliders, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CuePop})
	default:
		RemoveEntity(s.ecs, s.colliders, id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.CuePop})
	}
}

// Split заменяет шар двумя потомками на размер меньше. Вызывать только для
// Size > 1. В каскаде потомки всегда подбрасываются и признак заморозки
// не передаётся.
func (s *SplitSystem) Split(id types.EntityID, cascade bool) (left, right types.EntityID) {
	parent := s.ecs.Balloons[id]
	pos, body := s.ecs.Positions[id], s.ecs.Bodies[id]
	cx, cy := body.Center(*pos)
	offset := (cx - pos.X) / 2

	vy := -s.tuning.InitialSpeedY / 2
	if !cascade && pos.Y < s.tuning.Bounds.MinY+config.TopSplitMargin {
		vy = 0 // Шар у самого верха: без подброса, иначе он сразу лопнет снова
	}

	size := parent.Size - 1
	freezer := parent.Freezer && !cascade
	RemoveEntity(s.ecs, s.colliders, id)

	left = SpawnBalloon(s.ecs, s.colliders, s.tuning, BalloonSpec{
		Size: size, CX: cx - offset, CY: cy, XDir: -1, VY: vy, Freezer: freezer,
	})
	right = SpawnBalloon(s.ecs, s.colliders, s.tuning, BalloonSpec{
		Size: size, CX: cx + offset, CY: cy, XDir: 1, VY: vy,
	})
	return left, right
}

// ExplodeWave - одна волна каскада: лопаются все активные шары сразу.
// Каскад кончается, когда после волны не осталось активных шаров.
func (s *SplitSystem) ExplodeWave() {
	var wave []types.EntityID
	for _, id := range s.ecs.BalloonIDs() {
		if !s.ecs.Balloons[id].Waiting {
			wave = append(wave, id)
		}
	}
	if len(wave) == 0 {
		s.state.EndCascade()
		return
	}

	children := 0
	for _, id := range wave {
		if s.ecs.Balloons[id].Size > 1 {
			s.Split(id, true)
			children += 2
		} else {
			RemoveEntity(s.ecs, s.colliders, id)
		}
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.CueExplode})

	if children == 0 {
		s.state.EndCascade()
	}
}
