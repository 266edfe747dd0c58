package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/timer"
	"go-superpang/internal/types"
	"go-superpang/internal/utils"
	"testing"
)

// world собирает системы так же, как сессия, но без игрока и без ввода.
type world struct {
	ecs        *entity.ECS
	timers     *timer.Scheduler
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	collision  *CollisionSystem
	movement   *MovementSystem
	state      *StateSystem
	split      *SplitSystem
	spawner    *SpawnerSystem
	tuning     config.Tuning
}

func newWorld(t *testing.T) *world {
	t.Helper()
	tuning := config.Default()
	w := &world{
		ecs:        entity.NewECS(),
		timers:     timer.NewScheduler(),
		dispatcher: event.NewDispatcher(),
		recorder:   event.NewRecorder(),
		tuning:     tuning,
	}
	w.dispatcher.SubscribeAll(event.Cues, w.recorder)
	w.dispatcher.SubscribeAll([]event.EventType{event.LevelChanged, event.LifeLost, event.GameOver, event.GameWon}, w.recorder)
	w.collision = NewCollisionSystem(w.ecs, tuning.Bounds)
	w.movement = NewMovementSystem(w.ecs, w.collision, tuning)
	w.state = NewStateSystem(w.ecs, w.timers, w.dispatcher, tuning)
	w.split = NewSplitSystem(w.ecs, w.collision, w.dispatcher, w.state, tuning)
	w.spawner = NewSpawnerSystem(w.ecs, w.collision, w.timers, w.dispatcher, w.state, utils.NewPRNGService(1), tuning)
	w.state.Start()
	return w
}

// advance крутит часы и раздаёт сработавшие таймеры, как это делает сессия.
func (w *world) advance(ms int) {
	for _, f := range w.timers.Advance(config.Ms(ms)) {
		w.dispatcher.Dispatch(event.Event{Type: event.EventType(f.Key.Kind), Data: f.Key.Subject})
	}
}

func (w *world) balloon(spec BalloonSpec) types.EntityID {
	return SpawnBalloon(w.ecs, w.collision, w.tuning, spec)
}

func (w *world) projectile(cx, cy float64) types.EntityID {
	body := component.Body{W: config.ProjectileWidth, H: config.ProjectileHeight}
	pos := body.TopLeftFromCenter(cx, cy)
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &pos
	w.ecs.Bodies[id] = &body
	w.ecs.Projectiles[id] = &component.Projectile{Speed: w.tuning.ProjectileSpeed}
	w.collision.Track(id)
	return id
}

func (w *world) centerX(id types.EntityID) float64 {
	cx, _ := w.ecs.Bodies[id].Center(*w.ecs.Positions[id])
	return cx
}
