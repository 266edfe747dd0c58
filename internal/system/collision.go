// internal/system/collision.go
package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/types"
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

var (
	tagBalloon    = resolv.NewTag("balloon")
	tagProjectile = resolv.NewTag("projectile")
	tagPlayer     = resolv.NewTag("player")
)

const (
	collisionCell = 32
	// Шары появляются наполовину за краем поля, поэтому пространство
	// resolv шире сцены, а все фигуры сдвинуты на этот отступ.
	collisionMargin = 128
)

// Hit - пересечение стрелы и шара за текущий кадр.
type Hit struct {
	Projectile types.EntityID
	Balloon    types.EntityID
}

// CollisionSystem держит фигуры всех сущностей в пространстве resolv и
// отвечает на вопросы "кто кого задел". Сама ничего не удаляет.
type CollisionSystem struct {
	ecs              *entity.ECS
	space            *resolv.Space
	owners           map[resolv.IShape]types.EntityID
	originX, originY float64
}

func NewCollisionSystem(ecs *entity.ECS, bounds config.Bounds) *CollisionSystem {
	w := int(math.Ceil(bounds.MaxX-bounds.MinX)) + 2*collisionMargin
	h := int(math.Ceil(bounds.MaxY-bounds.MinY)) + 2*collisionMargin
	return &CollisionSystem{
		ecs:     ecs,
		space:   resolv.NewSpace(w, h, collisionCell, collisionCell),
		owners:  make(map[resolv.IShape]types.EntityID),
		originX: bounds.MinX - collisionMargin,
		originY: bounds.MinY - collisionMargin,
	}
}

// Track создаёт фигуру для сущности. У всех сущностей это их габаритный
// прямоугольник, шар сталкивается по рамке, а не по вписанному кругу.
func (s *CollisionSystem) Track(id types.EntityID) {
	pos, body := s.ecs.Positions[id], s.ecs.Bodies[id]
	if pos == nil || body == nil {
		return
	}
	s.Untrack(id)

	cx, cy := s.toSpace(body.Center(*pos))
	var tag resolv.Tags
	switch {
	case s.ecs.Balloons[id] != nil:
		tag = tagBalloon
	case s.ecs.Projectiles[id] != nil:
		tag = tagProjectile
	case id == s.ecs.PlayerID:
		tag = tagPlayer
	default:
		return
	}
	shape := resolv.NewRectangle(cx, cy, body.W, body.H)
	shape.Tags().Set(tag)

	s.space.Add(shape)
	s.owners[shape] = id
	s.ecs.Colliders[id] = &component.Collider{Shape: shape}
}

// Untrack убирает фигуру сущности из пространства. Повторный вызов безопасен.
func (s *CollisionSystem) Untrack(id types.EntityID) {
	col, ok := s.ecs.Colliders[id]
	if !ok {
		return
	}
	s.space.Remove(col.Shape)
	delete(s.owners, col.Shape)
	delete(s.ecs.Colliders, id)
}

// Sync переносит позиции из ECS в фигуры. Вызывается после движения.
func (s *CollisionSystem) Sync() {
	for id, col := range s.ecs.Colliders {
		pos, body := s.ecs.Positions[id], s.ecs.Bodies[id]
		if pos == nil || body == nil {
			continue
		}
		col.Shape.SetPosition(s.toSpace(body.Center(*pos)))
	}
}

// ProjectileHits возвращает все пары стрела-шар, пересекающиеся сейчас.
// Ожидающие шары в кандидаты не попадают.
func (s *CollisionSystem) ProjectileHits() []Hit {
	var hits []Hit
	for _, pid := range s.ecs.ProjectileIDs() {
		col, ok := s.ecs.Colliders[pid]
		if !ok {
			continue
		}
		shape := col.Shape
		shape.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: shape.SelectTouchingCells(0).FilterShapes().ByTags(tagBalloon),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if bid, ok := s.activeBalloon(set.OtherShape); ok {
					hits = append(hits, Hit{Projectile: pid, Balloon: bid})
				}
				return true // одна стрела может задеть несколько шаров
			},
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Projectile == hits[j].Projectile {
			return hits[i].Balloon < hits[j].Balloon
		}
		return hits[i].Projectile < hits[j].Projectile
	})
	return hits
}

// PlayerTouchesBalloon сообщает, задевает ли игрок хоть один активный шар.
func (s *CollisionSystem) PlayerTouchesBalloon() bool {
	col, ok := s.ecs.Colliders[s.ecs.PlayerID]
	if !ok {
		return false
	}
	touched := false
	col.Shape.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: col.Shape.SelectTouchingCells(0).FilterShapes().ByTags(tagBalloon),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if _, ok := s.activeBalloon(set.OtherShape); ok {
				touched = true
				return false
			}
			return true
		},
	})
	return touched
}

func (s *CollisionSystem) activeBalloon(shape resolv.IShape) (types.EntityID, bool) {
	id, ok := s.owners[shape]
	if !ok {
		return 0, false
	}
	balloon, ok := s.ecs.Balloons[id]
	if !ok || balloon.Waiting {
		return 0, false
	}
	return id, true
}

func (s *CollisionSystem) toSpace(x, y float64) (float64, float64) {
	return x - s.originX, y - s.originY
}
