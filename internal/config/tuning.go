// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig - общая причина для всех ошибок валидации.
var ErrInvalidConfig = errors.New("invalid configuration")

// Tuning holds every knob a play session is built from. Zero values are
// never used directly: Default() fills them and Load() overlays a file.
type Tuning struct {
	FPS     int    `toml:"fps"`
	GodMode bool   `toml:"god_mode"`
	Seed    int64  `toml:"seed"`
	Bounds  Bounds `toml:"bounds"`

	Gravity         float64 `toml:"gravity"`
	InitialSpeedX   float64 `toml:"initial_speed_x"`
	InitialSpeedY   float64 `toml:"initial_speed_y"`
	DampingFactor   float64 `toml:"damping_factor"`
	PlayerSpeed     float64 `toml:"player_speed"`
	ProjectileSpeed float64 `toml:"projectile_speed"`

	Lives            int `toml:"lives"`
	TotalBalloons    int `toml:"total_balloons"`
	MaxLevel         int `toml:"max_level"`
	BalloonsPerLevel int `toml:"balloons_per_level"`

	Intervals Intervals `toml:"intervals"`
}

// Intervals - длительности таймеров в миллисекундах.
type Intervals struct {
	FreshBalloon     int `toml:"fresh_balloon"`
	FreshBalloonWait int `toml:"fresh_balloon_wait"`
	FreezeClock      int `toml:"freeze_clock"`
	FreezeBalloon    int `toml:"freeze_balloon"`
	FreezeLostLife   int `toml:"freeze_lost_life"`
	Explode          int `toml:"explode"`
	Invincibility    int `toml:"invincibility"`
	BlinkPlayer      int `toml:"blink_player"`
	FreezerFlash     int `toml:"freezer_flash"`
	LevelStep        int `toml:"level_step"`
	MinSpawn         int `toml:"min_spawn"`
}

// Default возвращает стандартные настройки игры.
func Default() Tuning {
	return Tuning{
		FPS:              FPS,
		Bounds:           StageBounds(),
		Gravity:          Gravity,
		InitialSpeedX:    InitialSpeedX,
		InitialSpeedY:    InitialSpeedY,
		DampingFactor:    DampingFactor,
		PlayerSpeed:      PlayerSpeed,
		ProjectileSpeed:  ProjectileSpeed,
		Lives:            NumLives,
		TotalBalloons:    TotalBalloons,
		MaxLevel:         MaxLevel,
		BalloonsPerLevel: BalloonsPerLevel,
		Intervals: Intervals{
			FreshBalloon:     IntervalFreshBalloon,
			FreshBalloonWait: IntervalFreshBalloonWait,
			FreezeClock:      IntervalFreezeClock,
			FreezeBalloon:    IntervalFreezeBalloon,
			FreezeLostLife:   IntervalFreezeLostLife,
			Explode:          IntervalExplode,
			Invincibility:    IntervalInvincibility,
			BlinkPlayer:      IntervalBlinkPlayer,
			FreezerFlash:     IntervalFreezerFlash,
			LevelStep:        IntervalLevelStep,
			MinSpawn:         MinSpawnInterval,
		},
	}
}

// Load reads a TOML file on top of the defaults. A missing file is not an
// error: the defaults are returned as is.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return t, fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate отбрасывает конфигурации, с которыми симуляция не может стартовать.
func (t Tuning) Validate() error {
	if t.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d: %w", t.FPS, ErrInvalidConfig)
	}
	if t.Bounds.MinX >= t.Bounds.MaxX || t.Bounds.MinY >= t.Bounds.MaxY {
		return fmt.Errorf("degenerate bounds %+v: %w", t.Bounds, ErrInvalidConfig)
	}
	if t.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d: %w", t.Lives, ErrInvalidConfig)
	}
	if t.TotalBalloons < 1 || t.MaxLevel < 1 || t.BalloonsPerLevel < 1 {
		return fmt.Errorf("balloon totals must be positive: %w", ErrInvalidConfig)
	}
	if t.InitialSpeedY <= 0 || t.Gravity <= 0 {
		return fmt.Errorf("gravity and launch speed must be positive: %w", ErrInvalidConfig)
	}
	iv := t.Intervals
	for name, ms := range map[string]int{
		"fresh_balloon":      iv.FreshBalloon,
		"fresh_balloon_wait": iv.FreshBalloonWait,
		"freeze_clock":       iv.FreezeClock,
		"freeze_balloon":     iv.FreezeBalloon,
		"freeze_lost_life":   iv.FreezeLostLife,
		"explode":            iv.Explode,
		"invincibility":      iv.Invincibility,
		"blink_player":       iv.BlinkPlayer,
		"freezer_flash":      iv.FreezerFlash,
		"min_spawn":          iv.MinSpawn,
	} {
		if ms <= 0 {
			return fmt.Errorf("interval %s must be positive, got %d: %w", name, ms, ErrInvalidConfig)
		}
	}
	return nil
}

// FrameDuration - длительность одного кадра при заданном FPS.
func (t Tuning) FrameDuration() time.Duration {
	return time.Second / time.Duration(t.FPS)
}

// Ms переводит миллисекунды из конфига в time.Duration.
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
