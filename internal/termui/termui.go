// internal/termui/termui.go
package termui

import (
	"fmt"
	"log"
	"time"

	"go-superpang/internal/app"
	"go-superpang/internal/component"
	"go-superpang/internal/config"
	"go-superpang/internal/input"

	"github.com/gdamore/tcell/v2"
)

// В терминале нет событий отпускания клавиш: нажатие стрелки держит
// движение несколько кадров, автоповтор клавиатуры продлевает его.
const moveHoldFrames = 4

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleArrow    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFreezer  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStar     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleClock    = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWon      = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)

	balloonStyles = []tcell.Style{
		styleDefault,
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
		tcell.StyleDefault.Foreground(tcell.ColorLime),
		tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue),
		tcell.StyleDefault.Foreground(tcell.ColorCrimson),
		tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

// Terminal - текстовый фронтенд: та же сессия, сцена масштабируется в
// сетку символов, последняя строка отдана под HUD.
type Terminal struct {
	screen  tcell.Screen
	tuning  config.Tuning
	session *app.Session
	speaker *Speaker

	pending   input.Frame
	leftHold  int
	rightHold int
	ended     float64 // Сколько секунд показан экран конца игры
	quit      bool
}

// New создаёт фронтенд и первую сессию. Экран должен быть уже
// инициализирован.
func New(screen tcell.Screen, tuning config.Tuning) (*Terminal, error) {
	session, err := app.NewSession(tuning)
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, tuning: tuning, session: session}, nil
}

// EnableSound включает звук через динамик beep. Без аудиоустройства игра
// продолжается молча.
func (t *Terminal) EnableSound() {
	sp, err := NewSpeaker()
	if err != nil {
		log.Printf("WARNING: Audio initialization failed, playing silently: %v", err)
		return
	}
	t.speaker = sp
	t.speaker.Attach(t.session.EventDispatcher)
}

// Session - текущая партия.
func (t *Terminal) Session() *app.Session {
	return t.session
}

// Quit сообщает, что игрок вышел.
func (t *Terminal) Quit() bool {
	return t.quit
}

// HandleEvent накапливает ввод до следующего Step.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.pending.Quit = true
		case tcell.KeyLeft:
			t.leftHold, t.rightHold = moveHoldFrames, 0
		case tcell.KeyRight:
			t.rightHold, t.leftHold = moveHoldFrames, 0
		case tcell.KeyUp:
			t.pending.Fire = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				t.pending.PauseToggled = !t.pending.PauseToggled
			case 'z', 'Z':
				t.pending.Fire = true
			case 'q':
				t.pending.Quit = true
			}
		}
	}
}

// Step продвигает игру на один кадр накопленным вводом.
func (t *Terminal) Step(deltaTime float64) {
	in := t.pending.Merge(input.Frame{MoveLeft: t.leftHold > 0, MoveRight: t.rightHold > 0})
	t.pending = input.Frame{}
	if t.leftHold > 0 {
		t.leftHold--
	}
	if t.rightHold > 0 {
		t.rightHold--
	}

	if t.session.Mode().Terminal() {
		t.ended += deltaTime
		switch {
		case in.Quit:
			t.quit = true
		case in.PauseToggled && t.ended >= config.Ms(config.EndScreenDelay).Seconds():
			t.restart()
		}
		return
	}
	t.session.Update(in, deltaTime)
	if t.session.QuitRequested() {
		t.quit = true
	}
}

func (t *Terminal) restart() {
	session, err := app.NewSession(t.tuning)
	if err != nil {
		log.Printf("ERROR: %v", err)
		t.quit = true
		return
	}
	t.session = session
	t.ended = 0
	if t.speaker != nil {
		t.speaker.Attach(session.EventDispatcher)
	}
}

// Run крутит цикл с частотой FPS до выхода игрока.
func (t *Terminal) Run() error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go readEvents(t.screen, events, done)

	ticker := time.NewTicker(t.tuning.FrameDuration())
	defer ticker.Stop()
	last := time.Now()
	for !t.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("terminal event stream closed")
			}
			t.HandleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			t.Step(dt)
			t.Draw()
		}
	}
	return nil
}

// readEvents пересылает события экрана, пока цикл не закончился. После
// закрытия done читатель выходит, даже если буфер полон.
func readEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Draw выводит снимок сессии на экран.
func (t *Terminal) Draw() {
	snap := t.session.Snapshot()
	t.screen.Clear()
	width, height := t.screen.Size()
	if width <= 0 || height < 3 {
		t.screen.Show()
		return
	}
	grid := newGrid(t.tuning.Bounds, width, height-2)

	for _, b := range snap.Balloons {
		r, style := balloonGlyph(b)
		grid.fill(t.screen, b.Rect, r, style)
	}
	for _, p := range snap.Projectiles {
		grid.fill(t.screen, p, '|', styleArrow)
	}
	if snap.Player.Visible {
		glyph := 'A'
		if snap.Player.Firing {
			glyph = '^'
		}
		grid.fill(t.screen, snap.Player.Rect, glyph, stylePlayer)
	}
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, height-2, '=', nil, styleGround)
	}

	hud := fmt.Sprintf("Level: %d  Lives: %d  Balloons: %d/%d", snap.Level, snap.Lives, snap.Spawned, snap.Total)
	drawText(t.screen, 0, height-1, hud, styleDefault)
	switch snap.Mode {
	case component.ModePaused:
		drawCentered(t.screen, width, (height-2)/2, "PAUSED", styleDefault.Bold(true))
	case component.ModeGameOver:
		drawCentered(t.screen, width, (height-2)/2, "GAME OVER", styleGameOver)
	case component.ModeWon:
		drawCentered(t.screen, width, (height-2)/2, "YOU WON!", styleWon)
	}
	if snap.Mode.Terminal() && t.ended >= config.Ms(config.EndScreenDelay).Seconds() {
		drawCentered(t.screen, width, (height-2)/2+1, "Press SPACE to play again", styleDefault)
	}
	t.screen.Show()
}

func balloonGlyph(b app.BalloonView) (rune, tcell.Style) {
	switch b.Kind {
	case component.KindLevelStar:
		return '$', styleStar
	case component.KindLevelClock:
		return '@', styleClock
	case component.KindFreezer:
		if b.FlashOn {
			return '*', styleDefault
		}
		return '*', styleFreezer
	}
	style := styleDefault
	if b.Size > 0 && b.Size < len(balloonStyles) {
		style = balloonStyles[b.Size]
	}
	return rune('0' + b.Size), style
}

// grid переводит координаты сцены в клетки терминала.
type grid struct {
	bounds     config.Bounds
	cols, rows int
}

func newGrid(b config.Bounds, cols, rows int) grid {
	return grid{bounds: b, cols: cols, rows: rows}
}

func (g grid) cell(x, y float64) (int, int) {
	cx := int((x - g.bounds.MinX) / (g.bounds.MaxX - g.bounds.MinX) * float64(g.cols))
	cy := int((y - g.bounds.MinY) / (g.bounds.MaxY - g.bounds.MinY) * float64(g.rows))
	return cx, cy
}

// fill закрашивает клетки прямоугольника. Даже самый мелкий объект
// занимает хотя бы одну клетку.
func (g grid) fill(s tcell.Screen, r app.Rect, glyph rune, style tcell.Style) {
	x0, y0 := g.cell(r.X, r.Y)
	x1, y1 := g.cell(r.X+r.W, r.Y+r.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x >= 0 && x < g.cols && y >= 0 && y < g.rows {
				s.SetContent(x, y, glyph, nil, style)
			}
		}
	}
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, width, y int, str string, style tcell.Style) {
	drawText(s, (width-len([]rune(str)))/2, y, str, style)
}
