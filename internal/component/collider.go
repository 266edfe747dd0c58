// internal/component/collider.go
package component

import "github.com/solarlune/resolv"

// Collider связывает сущность с её фигурой в пространстве resolv.
type Collider struct {
	Shape resolv.IShape
}
