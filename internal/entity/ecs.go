// internal/entity/ecs.go
package entity

import (
	"go-superpang/internal/component"
	"go-superpang/internal/types"
	"sort"
)

// ECS хранит компоненты всех сущностей одной игровой сессии.
// Шары, стрелы и игрок лежат в отдельных типизированных картах и
// объединяются только в снимке для рендера.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Bodies      map[types.EntityID]*component.Body
	Balloons    map[types.EntityID]*component.Balloon
	Projectiles map[types.EntityID]*component.Projectile
	Colliders   map[types.EntityID]*component.Collider
	PlayerID    types.EntityID
	Player      *component.Player
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Bodies:      make(map[types.EntityID]*component.Body),
		Balloons:    make(map[types.EntityID]*component.Balloon),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Colliders:   make(map[types.EntityID]*component.Collider),
		GameState:   &component.GameState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// BalloonIDs возвращает ID шаров по возрастанию, чтобы обход был детерминированным.
func (ecs *ECS) BalloonIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Balloons))
	for id := range ecs.Balloons {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// ProjectileIDs возвращает ID стрел по возрастанию.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Remove удаляет все компоненты сущности. Фигуру из пространства
// коллизий снимает CollisionSystem до вызова.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Balloons, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Colliders, id)
}

// LiveBalloons - сколько шаров на поле.
func (ecs *ECS) LiveBalloons() int {
	return len(ecs.Balloons)
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
