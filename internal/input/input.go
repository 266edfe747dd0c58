// internal/input/input.go
package input

// Frame - ввод за один кадр. Стрелки - удержание, остальное - нажатие.
type Frame struct {
	MoveLeft     bool
	MoveRight    bool
	Fire         bool
	PauseToggled bool
	Quit         bool
}

// Merge объединяет два снимка ввода.
func (f Frame) Merge(o Frame) Frame {
	return Frame{
		MoveLeft:     f.MoveLeft || o.MoveLeft,
		MoveRight:    f.MoveRight || o.MoveRight,
		Fire:         f.Fire || o.Fire,
		PauseToggled: f.PauseToggled != o.PauseToggled,
		Quit:         f.Quit || o.Quit,
	}
}
