// internal/system/utils.go
package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/defs"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/interfaces"
	"go-superpang/internal/timer"
	"go-superpang/internal/types"
)

// TimerKey - ключ общего (не привязанного к сущности) таймера.
func TimerKey(kind event.EventType) timer.Key {
	return timer.Key{Kind: timer.Kind(kind)}
}

// EntityTimerKey - ключ таймера конкретной сущности.
func EntityTimerKey(kind event.EventType, id types.EntityID) timer.Key {
	return timer.Key{Kind: timer.Kind(kind), Subject: id}
}

// BalloonSpec описывает новый шар. Координаты - центр, как у спрайтов.
type BalloonSpec struct {
	Size    int
	CX, CY  float64
	XDir    int
	VY      float64
	Level   bool
	Freezer bool
	Waiting bool
}

// SpawnBalloon создаёт шар со всеми компонентами и регистрирует его фигуру.
func SpawnBalloon(ecs *entity.ECS, colliders interfaces.Colliders, tuning config.Tuning, spec BalloonSpec) types.EntityID {
	tier := defs.Tier(spec.Size)
	body := component.Body{W: tier.Width, H: tier.Height}
	pos := body.TopLeftFromCenter(spec.CX, spec.CY)

	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Velocities[id] = &component.Velocity{VX: tuning.InitialSpeedX * float64(spec.XDir), VY: spec.VY}
	ecs.Bodies[id] = &body
	ecs.Balloons[id] = &component.Balloon{
		Size:    spec.Size,
		Level:   spec.Level,
		Star:    true,
		Freezer: spec.Freezer,
		Waiting: spec.Waiting,
	}
	colliders.Track(id)
	return id
}

// RemoveEntity снимает фигуру и удаляет компоненты.
func RemoveEntity(ecs *entity.ECS, colliders interfaces.Colliders, id types.EntityID) {
	colliders.Untrack(id)
	ecs.Remove(id)
}
