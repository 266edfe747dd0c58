package system

import (
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/entity"
	"go-superpang/internal/event"
	"go-superpang/internal/timer"
	"testing"
)

func TestStateSystem_NonFatalHit(t *testing.T) {
	w := newWorld(t)
	gs := w.ecs.GameState

	w.state.PlayerHit()
	if gs.Lives != config.NumLives-1 {
		t.Fatalf("Expected %d lives, got %d", config.NumLives-1, gs.Lives)
	}
	if gs.Mode() != component.ModeFrozenAll {
		t.Fatalf("Expected frozen-all, got %v", gs.Mode())
	}
	if w.recorder.Count(event.CuePlayerHit) != 1 {
		t.Error("Expected a player-hit cue")
	}

	w.advance(config.IntervalFreezeLostLife)
	if gs.FrozenAll || !gs.Invincible {
		t.Fatalf("Expected invincibility after the freeze, got frozenAll=%v invincible=%v", gs.FrozenAll, gs.Invincible)
	}
	if gs.Mode() != component.ModePlaying {
		t.Errorf("Expected playing mode while invincible, got %v", gs.Mode())
	}

	w.advance(config.IntervalBlinkPlayer)
	visible := gs.PlayerVisible
	w.advance(config.IntervalBlinkPlayer)
	if gs.PlayerVisible == visible {
		t.Error("Expected the player to blink while invincible")
	}

	w.advance(config.IntervalInvincibility)
	if gs.Invincible || !gs.PlayerVisible {
		t.Errorf("Expected invincibility over and player visible, got invincible=%v visible=%v", gs.Invincible, gs.PlayerVisible)
	}
	if w.timers.Armed(TimerKey(event.BlinkPlayer)) {
		t.Error("Expected blink timer to be disarmed")
	}
}

func TestStateSystem_FatalHitIsGameOver(t *testing.T) {
	w := newWorld(t)
	gs := w.ecs.GameState
	gs.Lives = 1

	w.state.PlayerHit()
	if gs.Mode() != component.ModeGameOver {
		t.Fatalf("Expected game over, got %v", gs.Mode())
	}
	if gs.Invincible || w.timers.Armed(TimerKey(event.InvincibilityEnd)) || w.timers.Armed(TimerKey(event.Unfreeze)) {
		t.Error("Expected no invincibility window after a fatal hit")
	}

	w.state.PlayerHit()
	if gs.Lives != 0 {
		t.Errorf("Expected lives to stay at 0, got %d", gs.Lives)
	}
	gs.Spawned = config.TotalBalloons
	if w.state.CheckWin() || gs.Won {
		t.Error("Expected win to be impossible after game over")
	}
}

func TestStateSystem_PauseToggle(t *testing.T) {
	w := newWorld(t)
	w.state.TogglePause()
	if w.state.Current() != component.ModePaused {
		t.Fatalf("Expected paused, got %v", w.state.Current())
	}
	w.state.TogglePause()
	if w.state.Current() != component.ModePlaying {
		t.Fatalf("Expected playing, got %v", w.state.Current())
	}

	w.ecs.GameState.Won = true
	w.state.TogglePause()
	if w.ecs.GameState.Paused {
		t.Error("Expected pause to be ignored in a terminal mode")
	}
}

func TestStateSystem_WinNeedsAllSpawnedAndCleared(t *testing.T) {
	w := newWorld(t)
	gs := w.ecs.GameState

	if w.state.CheckWin() {
		t.Fatal("Expected no win before all balloons are released")
	}
	gs.Spawned = config.TotalBalloons
	w.balloon(BalloonSpec{Size: 1, CX: 400, CY: 300, XDir: 1})
	if w.state.CheckWin() {
		t.Fatal("Expected no win while balloons remain")
	}
	for _, id := range w.ecs.BalloonIDs() {
		RemoveEntity(w.ecs, w.collision, id)
	}
	if !w.state.CheckWin() || gs.Mode() != component.ModeWon {
		t.Fatalf("Expected win, got %v", gs.Mode())
	}
	if w.recorder.Count(event.CueWinFanfare) != 1 {
		t.Error("Expected a win-fanfare cue")
	}
	if gs.Over {
		t.Error("Expected game over and win to be exclusive")
	}
}

func TestStateSystem_SpawnIntervalFloor(t *testing.T) {
	tuning := config.Default()
	tuning.Intervals.FreshBalloon = 1500
	ecs := entity.NewECS()
	ss := NewStateSystem(ecs, timer.NewScheduler(), event.NewDispatcher(), tuning)
	ss.Start()

	ss.AdvanceLevel(3)
	if ecs.GameState.SpawnInterval != 1200 {
		t.Errorf("Expected interval 1200, got %d", ecs.GameState.SpawnInterval)
	}
	ss.AdvanceLevel(8)
	if ecs.GameState.SpawnInterval != config.MinSpawnInterval {
		t.Errorf("Expected interval floored at %d, got %d", config.MinSpawnInterval, ecs.GameState.SpawnInterval)
	}
	if ss.AdvanceLevel(5) || ecs.GameState.Level != 8 {
		t.Errorf("Expected level never to go down, got %d", ecs.GameState.Level)
	}
}

func TestStateSystem_NotifyModeOnlyOnChange(t *testing.T) {
	w := newWorld(t)
	w.dispatcher.Subscribe(event.ModeChanged, w.recorder)

	w.state.NotifyMode()
	w.state.StartCascade()
	w.state.NotifyMode()
	w.state.NotifyMode()
	if n := w.recorder.Count(event.ModeChanged); n != 1 {
		t.Errorf("Expected exactly one ModeChanged, got %d", n)
	}
}

func TestStateSystem_FreezerFlash(t *testing.T) {
	w := newWorld(t)
	freezer := w.balloon(BalloonSpec{Size: 1, CX: 100, CY: 300, XDir: 1, Freezer: true})
	plain := w.balloon(BalloonSpec{Size: 1, CX: 300, CY: 300, XDir: 1})

	w.advance(config.IntervalFreezerFlash)
	if !w.ecs.Balloons[freezer].FlashOn {
		t.Error("Expected the freezer balloon to flash")
	}
	if w.ecs.Balloons[plain].FlashOn {
		t.Error("Expected plain balloons not to flash")
	}
}
