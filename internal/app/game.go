// internal/app/game.go
package app

import (
	"fmt"
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/input"
	"go-superpang/internal/system"
	"go-superpang/internal/timer"
	"go-superpang/internal/types"
	"go-superpang/internal/utils"
	"log"
	"time"
)

// Session - одна партия от первого шара до конца игры. Держит всё
// изменяемое состояние; перезапуск - это новая Session.
type Session struct {
	ECS             *entity.ECS
	Timers          *timer.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	CollisionSystem *system.CollisionSystem
	MovementSystem  *system.MovementSystem
	StateSystem     *system.StateSystem
	SplitSystem     *system.SplitSystem
	SpawnerSystem   *system.SpawnerSystem

	tuning config.Tuning
	cues   *event.Recorder
	quit   bool
}

// NewSession проверяет настройки и собирает системы. С ошибочной
// конфигурацией сессия не создаётся.
func NewSession(tuning config.Tuning) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("cannot start session: %w", err)
	}

	ecs := entity.NewECS()
	timers := timer.NewScheduler()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)

	collision := system.NewCollisionSystem(ecs, tuning.Bounds)
	stateSystem := system.NewStateSystem(ecs, timers, dispatcher, tuning)
	s := &Session{
		ECS:             ecs,
		Timers:          timers,
		EventDispatcher: dispatcher,
		Rng:             rng,
		CollisionSystem: collision,
		MovementSystem:  system.NewMovementSystem(ecs, collision, tuning),
		StateSystem:     stateSystem,
		SplitSystem:     system.NewSplitSystem(ecs, collision, dispatcher, stateSystem, tuning),
		SpawnerSystem:   system.NewSpawnerSystem(ecs, collision, timers, dispatcher, stateSystem, rng, tuning),
		tuning:          tuning,
		cues:            event.NewRecorder(),
	}
	dispatcher.SubscribeAll(event.Cues, s.cues)

	stateSystem.Start()
	s.spawnPlayer()
	s.SpawnerSystem.Start()
	s.CollisionSystem.Sync()

	log.Printf("Session started: seed=%d fps=%d god_mode=%v", rng.Seed(), tuning.FPS, tuning.GodMode)
	return s, nil
}

func (s *Session) spawnPlayer() {
	b := s.tuning.Bounds
	body := component.Body{W: config.PlayerWidth, H: config.PlayerHeight}
	pos := body.TopLeftFromCenter((b.MinX+b.MaxX)/2, b.MaxY-config.PlayerOffsetY)

	id := s.ECS.NewEntity()
	s.ECS.PlayerID = id
	s.ECS.Positions[id] = &pos
	s.ECS.Bodies[id] = &body
	s.ECS.Player = &component.Player{MinX: b.MinX, MaxX: b.MaxX, Visible: true}
	s.CollisionSystem.Track(id)
}

// Update - один кадр. Порядок фаз: выход и пауза, таймеры, ввод,
// движение, столкновения, проверка победы.
func (s *Session) Update(in input.Frame, deltaTime float64) {
	s.cues.Reset()
	gs := s.ECS.GameState

	if in.Quit {
		s.quit = true
		return
	}
	// Пауза обрабатывается всегда, иначе из неё не выйти
	if in.PauseToggled {
		s.StateSystem.TogglePause()
	}
	if gs.Paused || gs.Mode().Terminal() {
		s.StateSystem.NotifyMode()
		return
	}

	for _, f := range s.Timers.Advance(time.Duration(deltaTime * float64(time.Second))) {
		s.EventDispatcher.Dispatch(event.Event{Type: event.EventType(f.Key.Kind), Data: f.Key.Subject})
	}

	if !gs.FrozenAll {
		s.MovementSystem.UpdatePlayer(in.MoveLeft, in.MoveRight)
		if in.Fire {
			s.fire()
		}
	}
	if !gs.BalloonsFrozen() {
		s.MovementSystem.UpdateBalloons()
	}
	if !gs.FrozenAll {
		s.MovementSystem.UpdateProjectiles()
	}
	s.CollisionSystem.Sync()

	if !gs.Invincible && !gs.BalloonsFrozen() && !s.tuning.GodMode && s.CollisionSystem.PlayerTouchesBalloon() {
		s.StateSystem.PlayerHit()
	}
	if !gs.Over && !gs.FrozenAll {
		s.SplitSystem.Resolve(s.CollisionSystem.ProjectileHits())
	}
	s.StateSystem.CheckWin()

	s.ECS.Player.Firing = len(s.ECS.Projectiles) > 0
	s.ECS.Player.Visible = gs.PlayerVisible
	s.StateSystem.NotifyMode()
}

// fire выпускает стрелу из центра игрока. На экране одновременно не
// больше одной стрелы.
func (s *Session) fire() types.EntityID {
	if len(s.ECS.Projectiles) > 0 {
		return 0
	}
	ppos, pbody := s.ECS.Positions[s.ECS.PlayerID], s.ECS.Bodies[s.ECS.PlayerID]
	cx, _ := pbody.Center(*ppos)

	body := component.Body{W: config.ProjectileWidth, H: config.ProjectileHeight}
	pos := body.TopLeftFromCenter(cx, s.tuning.Bounds.MaxY-config.ProjectileInset)

	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &pos
	s.ECS.Bodies[id] = &body
	s.ECS.Projectiles[id] = &component.Projectile{Speed: s.tuning.ProjectileSpeed}
	s.CollisionSystem.Track(id)
	s.EventDispatcher.Dispatch(event.Event{Type: event.CueFire})
	return id
}

// Mode - текущий режим партии.
func (s *Session) Mode() component.Mode {
	return s.ECS.GameState.Mode()
}

// QuitRequested сообщает, что игрок попросил выйти.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Tuning возвращает настройки, с которыми создана сессия.
func (s *Session) Tuning() config.Tuning {
	return s.tuning
}
