package ui

import "testing"

func TestFlashClock_Toggles(t *testing.T) {
	c := NewFlashClock(0.8)
	if !c.Update(0.5) {
		t.Fatal("Expected visible before the first period")
	}
	if c.Update(0.4) {
		t.Fatal("Expected hidden after one period")
	}
	if !c.Update(0.8) {
		t.Fatal("Expected visible after two periods")
	}
	c.Update(0.9)
	c.Reset()
	if !c.Update(0) {
		t.Error("Expected visible right after reset")
	}
}

func TestFlashClock_LongFrameSkipsWholePeriods(t *testing.T) {
	c := NewFlashClock(0.8)
	if !c.Update(1.7) {
		t.Error("Expected two toggles to leave the label visible")
	}
}
