package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default tuning to be valid, got %v", err)
	}
}

func TestValidate_RejectsBadFrameRate(t *testing.T) {
	tn := Default()
	tn.FPS = 0
	err := tn.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for fps=0, got %v", err)
	}
}

func TestValidate_RejectsDegenerateBounds(t *testing.T) {
	tn := Default()
	tn.Bounds.MinX = tn.Bounds.MaxX
	if err := tn.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for min_x == max_x, got %v", err)
	}

	tn = Default()
	tn.Bounds.MinY = 600
	tn.Bounds.MaxY = 100
	if err := tn.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for inverted y bounds, got %v", err)
	}
}

func TestValidate_RejectsNonPositiveInterval(t *testing.T) {
	tn := Default()
	tn.Intervals.Explode = 0
	if err := tn.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for explode=0, got %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tn, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if tn.FPS != FPS || tn.Lives != NumLives {
		t.Errorf("Expected defaults, got fps=%d lives=%d", tn.FPS, tn.Lives)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superpang.toml")
	data := `
fps = 60
god_mode = true
lives = 5

[intervals]
explode = 750

[bounds]
min_x = 0
max_x = 640
min_y = 0
max_y = 480
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tn, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tn.FPS != 60 || !tn.GodMode || tn.Lives != 5 {
		t.Errorf("Expected fps=60 god_mode=true lives=5, got %d %v %d", tn.FPS, tn.GodMode, tn.Lives)
	}
	if tn.Intervals.Explode != 750 {
		t.Errorf("Expected explode=750, got %d", tn.Intervals.Explode)
	}
	// Не указанные в файле значения остаются по умолчанию
	if tn.Intervals.FreshBalloon != IntervalFreshBalloon {
		t.Errorf("Expected fresh_balloon default %d, got %d", IntervalFreshBalloon, tn.Intervals.FreshBalloon)
	}
	if tn.Bounds.MaxX != 640 || tn.Bounds.MaxY != 480 {
		t.Errorf("Expected bounds 640x480, got %+v", tn.Bounds)
	}
	if err := tn.Validate(); err != nil {
		t.Errorf("Expected loaded tuning to be valid, got %v", err)
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("fps = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected decode error for broken file")
	}
}
