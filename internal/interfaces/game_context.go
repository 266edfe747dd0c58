// internal/interfaces/game_context.go
package interfaces

import (
	"go-superpang/internal/timer"
	"go-superpang/internal/types"
	"time"
)

// Timers - то, что системам нужно от планировщика.
type Timers interface {
	Arm(key timer.Key, interval time.Duration, repeat bool)
	Disarm(key timer.Key)
	Armed(key timer.Key) bool
}

// Colliders регистрирует сущности в пространстве коллизий.
type Colliders interface {
	Track(id types.EntityID)
	Untrack(id types.EntityID)
}
