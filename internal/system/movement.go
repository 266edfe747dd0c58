// internal/system/movement.go
package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/interfaces"
	"go-superpang/internal/utils"
)

// MovementSystem двигает шары, стрелы и игрока. Один вызов - один тик
// физики, шаг фиксированный и не зависит от deltaTime.
type MovementSystem struct {
	ecs       *entity.ECS
	colliders interfaces.Colliders
	tuning    config.Tuning
}

func NewMovementSystem(ecs *entity.ECS, colliders interfaces.Colliders, tuning config.Tuning) *MovementSystem {
	return &MovementSystem{ecs: ecs, colliders: colliders, tuning: tuning}
}

// UpdateBalloons интегрирует все шары, кроме ожидающих.
func (s *MovementSystem) UpdateBalloons() {
	for _, id := range s.ecs.BalloonIDs() {
		balloon := s.ecs.Balloons[id]
		if balloon.Waiting {
			continue
		}
		pos, vel, body := s.ecs.Positions[id], s.ecs.Velocities[id], s.ecs.Bodies[id]
		if pos == nil || vel == nil || body == nil {
			continue
		}
		StepBalloon(pos, vel, *body, balloon, s.tuning)
	}
}

// StepBalloon - один шаг явного Эйлера с отражением от стен и пола.
// Границы проверяются по новой позиции.
func StepBalloon(pos *component.Position, vel *component.Velocity, body component.Body, balloon *component.Balloon, tuning config.Tuning) {
	b := tuning.Bounds

	vel.VY += tuning.Gravity
	pos.X += vel.VX
	pos.Y += vel.VY

	left, right, _, bottom := body.Edges(*pos)
	if left <= b.MinX {
		vel.VX = -vel.VX
		pos.X = b.MinX + 1 // Чтобы не залипнуть в стене
	} else if right >= b.MaxX {
		vel.VX = -vel.VX
		pos.X = b.MaxX - body.W - 1
	}

	// Отскок от пола не зависит от стен и может случиться в том же тике
	if bottom >= b.MaxY {
		vel.VY = -tuning.InitialSpeedY * tuning.DampingFactor
		pos.Y = b.MaxY - body.H
		if balloon != nil {
			balloon.FlipLevelPhase()
		}
	}
}

// UpdateProjectiles поднимает стрелы и убирает те, что дошли до верха.
func (s *MovementSystem) UpdateProjectiles() {
	for _, id := range s.ecs.ProjectileIDs() {
		pos := s.ecs.Positions[id]
		if pos == nil {
			RemoveEntity(s.ecs, s.colliders, id)
			continue
		}
		if pos.Y <= s.tuning.Bounds.MinY {
			RemoveEntity(s.ecs, s.colliders, id)
			continue
		}
		pos.Y -= s.ecs.Projectiles[id].Speed
	}
}

// UpdatePlayer сдвигает игрока по нажатым стрелкам. Левая стрелка важнее.
func (s *MovementSystem) UpdatePlayer(left, right bool) {
	player := s.ecs.Player
	pos := s.ecs.Positions[s.ecs.PlayerID]
	body := s.ecs.Bodies[s.ecs.PlayerID]
	if player == nil || pos == nil || body == nil {
		return
	}

	player.Facing = 0
	switch {
	case left:
		pos.X -= s.tuning.PlayerSpeed
		player.Facing = -1
	case right:
		pos.X += s.tuning.PlayerSpeed
		player.Facing = 1
	}
	pos.X = utils.Clamp(pos.X, player.MinX, player.MaxX-body.W)
}
