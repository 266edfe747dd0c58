// internal/app/snapshot.go
package app

import (
	"go-superpang/internal/component"
	"go-superpang/internal/event"
	"go-superpang/internal/types"
)

// Rect - габариты сущности в координатах сцены.
type Rect struct {
	X, Y, W, H float64
}

type BalloonView struct {
	ID      types.EntityID
	Rect    Rect
	Size    int
	Kind    component.BalloonKind
	Waiting bool
	FlashOn bool
}

type PlayerView struct {
	Rect    Rect
	Firing  bool
	Facing  int
	Visible bool
}

// Snapshot - копия всего, что нужно рендеру и HUD. Рендер не трогает ECS.
type Snapshot struct {
	Balloons    []BalloonView
	Projectiles []Rect
	Player      PlayerView
	Level       int
	Lives       int
	Spawned     int
	Total       int
	Mode        component.Mode
	Invincible  bool
	Cues        []event.EventType // Звуковые сигналы этого кадра
}

func (s *Session) Snapshot() Snapshot {
	gs := s.ECS.GameState
	snap := Snapshot{
		Balloons:    make([]BalloonView, 0, len(s.ECS.Balloons)),
		Projectiles: make([]Rect, 0, len(s.ECS.Projectiles)),
		Level:       gs.Level,
		Lives:       gs.Lives,
		Spawned:     gs.Spawned,
		Total:       s.tuning.TotalBalloons,
		Mode:        gs.Mode(),
		Invincible:  gs.Invincible,
		Cues:        s.cues.Types(),
	}
	for _, id := range s.ECS.BalloonIDs() {
		b := s.ECS.Balloons[id]
		snap.Balloons = append(snap.Balloons, BalloonView{
			ID:      id,
			Rect:    s.rect(id),
			Size:    b.Size,
			Kind:    b.Kind(),
			Waiting: b.Waiting,
			FlashOn: b.FlashOn,
		})
	}
	for _, id := range s.ECS.ProjectileIDs() {
		snap.Projectiles = append(snap.Projectiles, s.rect(id))
	}
	if p := s.ECS.Player; p != nil {
		snap.Player = PlayerView{
			Rect:    s.rect(s.ECS.PlayerID),
			Firing:  p.Firing,
			Facing:  p.Facing,
			Visible: p.Visible,
		}
	}
	return snap
}

func (s *Session) rect(id types.EntityID) Rect {
	pos, body := s.ECS.Positions[id], s.ECS.Bodies[id]
	if pos == nil || body == nil {
		return Rect{}
	}
	return Rect{X: pos.X, Y: pos.Y, W: body.W, H: body.H}
}
