package termui

import (
	"strings"
	"testing"
	"time"

	"go-superpang/internal/component"
	"go-superpang/internal/config"

	"github.com/gdamore/tcell/v2"
)

const frameDT = 1.0 / 30

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	tuning := config.Default()
	tuning.Seed = 1
	tuning.GodMode = true
	term, err := New(screen, tuning)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return term, screen
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminal_DrawsHUDAndGround(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.Draw()

	if hud := row(screen, 24); !strings.HasPrefix(hud, "Level: 1  Lives: 3") {
		t.Errorf("Expected HUD line, got %q", hud)
	}
	if ground := row(screen, 23); strings.Trim(ground, "=") != "" {
		t.Errorf("Expected ground line, got %q", ground)
	}
	found := false
	for y := 0; y < 23; y++ {
		if strings.ContainsRune(row(screen, y), 'A') {
			found = true
		}
	}
	if !found {
		t.Error("Expected the player to be drawn")
	}
}

func TestTerminal_PauseShowsLabel(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.HandleEvent(char(' '))
	term.Step(frameDT)
	if term.Session().Mode() != component.ModePaused {
		t.Fatalf("Expected paused, got %v", term.Session().Mode())
	}
	term.Draw()
	if !strings.Contains(row(screen, 11), "PAUSED") {
		t.Errorf("Expected PAUSED label, got %q", row(screen, 11))
	}
}

func TestTerminal_EscapeQuits(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.HandleEvent(key(tcell.KeyEscape))
	term.Step(frameDT)
	if !term.Quit() {
		t.Error("Expected quit after Escape")
	}
}

func TestTerminal_ArrowHoldsMovement(t *testing.T) {
	term, _ := newTestTerminal(t)
	ecs := term.Session().ECS
	x0 := ecs.Positions[ecs.PlayerID].X

	term.HandleEvent(key(tcell.KeyLeft))
	for i := 0; i < moveHoldFrames+3; i++ {
		term.Step(frameDT)
	}
	want := x0 - moveHoldFrames*config.PlayerSpeed
	if got := ecs.Positions[ecs.PlayerID].X; got != want {
		t.Errorf("Expected player at x=%v, got %v", want, got)
	}
}

func TestTerminal_RestartAfterDelay(t *testing.T) {
	term, screen := newTestTerminal(t)
	first := term.Session()
	first.ECS.GameState.Over = true

	term.Step(1.5)
	term.HandleEvent(char(' '))
	term.Step(0.1)
	if term.Session() != first {
		t.Fatal("Expected restart to wait for the end screen delay")
	}
	term.Draw()
	if !strings.Contains(row(screen, 11), "GAME OVER") {
		t.Errorf("Expected GAME OVER label, got %q", row(screen, 11))
	}

	term.HandleEvent(char(' '))
	term.Step(0.5)
	if term.Session() == first {
		t.Fatal("Expected a new session after the delay")
	}
	if term.Session().Mode() != component.ModePlaying {
		t.Errorf("Expected the new session to be playing, got %v", term.Session().Mode())
	}
}

func TestReadEvents_StopsWhenLoopEnds(t *testing.T) {
	_, screen := newTestTerminal(t)
	for i := 0; i < 3; i++ {
		if err := screen.PostEvent(char('z')); err != nil {
			t.Fatalf("Expected event to be queued, got %v", err)
		}
	}

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		readEvents(screen, events, done)
		close(finished)
	}()

	time.Sleep(50 * time.Millisecond)
	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Expected the reader to exit while its buffer is full")
	}
	for range events {
	}
}

func TestRun_ReturnsOnQuit(t *testing.T) {
	term, screen := newTestTerminal(t)
	for i := 0; i < 20; i++ {
		screen.PostEvent(char('z'))
	}
	screen.PostEvent(key(tcell.KeyEscape))

	result := make(chan error, 1)
	go func() { result <- term.Run() }()
	select {
	case err := <-result:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after Escape")
	}
}
