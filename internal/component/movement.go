// internal/component/movement.go
package component

// Position - компонент позиции (левый верхний угол, float для плавного движения)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей за тик
type Velocity struct {
	VX, VY float64
}

// Body - габаритный прямоугольник сущности
type Body struct {
	W, H float64
}

// Edges возвращает левую, правую, верхнюю и нижнюю границы тела.
func (b Body) Edges(p Position) (left, right, top, bottom float64) {
	return p.X, p.X + b.W, p.Y, p.Y + b.H
}

// Center возвращает центр тела.
func (b Body) Center(p Position) (float64, float64) {
	return p.X + b.W/2, p.Y + b.H/2
}

// TopLeftFromCenter переводит центр в левый верхний угол.
func (b Body) TopLeftFromCenter(cx, cy float64) Position {
	return Position{X: cx - b.W/2, Y: cy - b.H/2}
}
