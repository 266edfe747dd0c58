// internal/component/projectile.go
package component

// Projectile - стрела, летящая вертикально вверх с постоянной скоростью.
type Projectile struct {
	Speed float64
}
