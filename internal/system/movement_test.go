package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"math"
	"testing"
)

func TestStepBalloon_FloorBounce(t *testing.T) {
	tuning := config.Default()
	body := component.Body{W: 80, H: 80}
	pos := &component.Position{X: 0, Y: 0}
	vel := &component.Velocity{VX: tuning.InitialSpeedX, VY: 0}
	b := &component.Balloon{Size: 5}

	// Первый тик у левой стены не должен отражать шар, летящий вправо
	StepBalloon(pos, vel, body, b, tuning)
	if vel.VX != tuning.InitialSpeedX || pos.X != 3 {
		t.Fatalf("Expected no wall bounce on first tick, got x=%v vx=%v", pos.X, vel.VX)
	}

	bounced := false
	for i := 0; i < 200 && !bounced; i++ {
		StepBalloon(pos, vel, body, b, tuning)
		bounced = vel.VY < 0
	}
	if !bounced {
		t.Fatal("Expected the balloon to reach the floor")
	}
	if vel.VY != -20 {
		t.Errorf("Expected vy=-20 after floor bounce, got %v", vel.VY)
	}
	if pos.Y != tuning.Bounds.MaxY-body.H {
		t.Errorf("Expected y clamped to %v, got %v", tuning.Bounds.MaxY-body.H, pos.Y)
	}
	if vel.VX <= 0 {
		t.Errorf("Expected balloon to keep moving right, got vx=%v", vel.VX)
	}
}

func TestStepBalloon_WallReflection(t *testing.T) {
	tuning := config.Default()
	body := component.Body{W: 20, H: 20}

	pos := &component.Position{X: 2, Y: 100}
	vel := &component.Velocity{VX: -3}
	StepBalloon(pos, vel, body, nil, tuning)
	if vel.VX != 3 || pos.X != tuning.Bounds.MinX+1 {
		t.Errorf("Expected left wall bounce to x=1 vx=3, got x=%v vx=%v", pos.X, vel.VX)
	}

	pos = &component.Position{X: tuning.Bounds.MaxX - 21, Y: 100}
	vel = &component.Velocity{VX: 3}
	StepBalloon(pos, vel, body, nil, tuning)
	if vel.VX != -3 {
		t.Errorf("Expected right wall bounce, got vx=%v", vel.VX)
	}
	if right := pos.X + body.W; right != tuning.Bounds.MaxX-1 {
		t.Errorf("Expected right edge at %v, got %v", tuning.Bounds.MaxX-1, right)
	}
}

func TestStepBalloon_CornerAppliesBothReflections(t *testing.T) {
	tuning := config.Default()
	body := component.Body{W: 20, H: 20}
	pos := &component.Position{X: 1, Y: tuning.Bounds.MaxY - 21}
	vel := &component.Velocity{VX: -3, VY: 5}

	StepBalloon(pos, vel, body, nil, tuning)
	if vel.VX != 3 || vel.VY != -20 {
		t.Errorf("Expected both wall and floor reflection, got vx=%v vy=%v", vel.VX, vel.VY)
	}
}

func TestStepBalloon_LevelPhaseFlipsOnFloor(t *testing.T) {
	tuning := config.Default()
	body := component.Body{W: 80, H: 80}
	pos := &component.Position{X: 300, Y: tuning.Bounds.MaxY - 81}
	vel := &component.Velocity{VY: 5}
	b := &component.Balloon{Size: 5, Level: true, Star: true}

	StepBalloon(pos, vel, body, b, tuning)
	if b.Kind() != component.KindLevelClock {
		t.Fatalf("Expected clock phase after bounce, got %v", b.Kind())
	}
	for i := 0; i < 200; i++ {
		prevVY := vel.VY
		StepBalloon(pos, vel, body, b, tuning)
		if prevVY > 0 && vel.VY < 0 {
			break
		}
	}
	if b.Kind() != component.KindLevelStar {
		t.Errorf("Expected star phase after second bounce, got %v", b.Kind())
	}
}

func TestStepBalloon_BounceEnergyIsConserved(t *testing.T) {
	tuning := config.Default()
	body := component.Body{W: 48, H: 48}
	pos := &component.Position{X: 376, Y: 100}
	vel := &component.Velocity{VX: 0}

	var peaks []float64
	peak := math.Inf(1)
	for i := 0; i < 1000 && len(peaks) < 3; i++ {
		prevVY := vel.VY
		StepBalloon(pos, vel, body, nil, tuning)
		if pos.Y < peak {
			peak = pos.Y
		}
		if prevVY > 0 && vel.VY < 0 { // отскок
			peaks = append(peaks, peak)
			peak = math.Inf(1)
		}
	}
	if len(peaks) < 3 {
		t.Fatalf("Expected 3 bounces, got %d", len(peaks))
	}
	// Первый пик - стартовая высота, дальше высота постоянна
	if math.Abs(peaks[1]-peaks[2]) > 1e-9 {
		t.Errorf("Expected equal peak heights between bounces, got %v and %v", peaks[1], peaks[2])
	}
}

func TestStepBalloon_WallContainment(t *testing.T) {
	tuning := config.Default()
	for _, size := range []int{1, 3, 5} {
		w := float64(16 * (size + 1))
		body := component.Body{W: w, H: w}
		pos := &component.Position{X: 200, Y: 50}
		vel := &component.Velocity{VX: tuning.InitialSpeedX}
		for i := 0; i < 3000; i++ {
			StepBalloon(pos, vel, body, nil, tuning)
			left, right, _, _ := body.Edges(*pos)
			if left < tuning.Bounds.MinX-math.Abs(vel.VX) || right > tuning.Bounds.MaxX+math.Abs(vel.VX) {
				t.Fatalf("size %d escaped bounds at tick %d: left=%v right=%v", size, i, left, right)
			}
		}
	}
}

func TestMovementSystem_WaitingBalloonDoesNotMove(t *testing.T) {
	w := newWorld(t)
	id := w.balloon(BalloonSpec{Size: 5, CX: 400, CY: 100, XDir: 1, Waiting: true})
	before := *w.ecs.Positions[id]

	for i := 0; i < 30; i++ {
		w.movement.UpdateBalloons()
	}
	if *w.ecs.Positions[id] != before {
		t.Errorf("Expected waiting balloon to stay at %v, got %v", before, *w.ecs.Positions[id])
	}
}

func TestMovementSystem_ProjectileLeavesTop(t *testing.T) {
	w := newWorld(t)
	id := w.projectile(400, 100)

	for i := 0; i < 20; i++ {
		w.movement.UpdateProjectiles()
	}
	if _, ok := w.ecs.Projectiles[id]; ok {
		t.Error("Expected projectile to be removed after reaching the top")
	}
	if _, ok := w.ecs.Colliders[id]; ok {
		t.Error("Expected projectile shape to be removed as well")
	}
}

func TestMovementSystem_PlayerClamp(t *testing.T) {
	w := newWorld(t)
	id := w.ecs.NewEntity()
	w.ecs.PlayerID = id
	w.ecs.Positions[id] = &component.Position{X: 4, Y: 488}
	w.ecs.Bodies[id] = &component.Body{W: config.PlayerWidth, H: config.PlayerHeight}
	w.ecs.Player = &component.Player{MinX: 0, MaxX: 800}

	w.movement.UpdatePlayer(true, false)
	if x := w.ecs.Positions[id].X; x != 0 {
		t.Errorf("Expected player clamped to min x 0, got %v", x)
	}
	if w.ecs.Player.Facing != -1 {
		t.Errorf("Expected facing left, got %d", w.ecs.Player.Facing)
	}

	for i := 0; i < 200; i++ {
		w.movement.UpdatePlayer(false, true)
	}
	if x := w.ecs.Positions[id].X; x != 800-config.PlayerWidth {
		t.Errorf("Expected player clamped to %v, got %v", 800-config.PlayerWidth, x)
	}
}
