package input

import "testing"

func TestFrame_Merge(t *testing.T) {
	a := Frame{MoveLeft: true, PauseToggled: true}
	b := Frame{Fire: true, PauseToggled: true}

	m := a.Merge(b)
	if !m.MoveLeft || !m.Fire || m.MoveRight || m.Quit {
		t.Errorf("Expected held and pressed flags to combine, got %+v", m)
	}
	// Два нажатия паузы между кадрами гасят друг друга
	if m.PauseToggled {
		t.Error("Expected two pause presses to cancel out")
	}
	if !a.Merge(Frame{}).PauseToggled {
		t.Error("Expected a single pause press to survive the merge")
	}
}
