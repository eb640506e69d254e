package core

import "testing"

func TestFrameClockFirstDeltaIsZero(t *testing.T) {
	c := NewFrameClock(DefaultDeltaCap)
	if d := c.Delta(12345); d != 0 {
		t.Fatalf("first delta = %v, want 0", d)
	}
	if d := c.Delta(12345 + 16); d != 0.016 {
		t.Fatalf("second delta = %v, want 0.016", d)
	}
}

func TestFrameClockCapsLongPauses(t *testing.T) {
	c := NewFrameClock(DefaultDeltaCap)
	c.Delta(1000)
	if d := c.Delta(6000); d != 0.05 {
		t.Fatalf("delta after 5000ms = %v, want 0.05", d)
	}
}

func TestFrameClockIgnoresBackwardsTimestamps(t *testing.T) {
	c := NewFrameClock(DefaultDeltaCap)
	c.Delta(500)
	if d := c.Delta(400); d != 0 {
		t.Fatalf("delta for earlier timestamp = %v, want 0", d)
	}
	if d := c.Delta(420); d != 0.02 {
		t.Fatalf("delta after recovery = %v, want 0.02", d)
	}
}

func TestFrameClockResetStartsNewSession(t *testing.T) {
	c := NewFrameClock(0)
	if c.Cap() != DefaultDeltaCap {
		t.Fatalf("non-positive cap should fall back to default, got %v", c.Cap())
	}
	c.Delta(0)
	c.Delta(10)
	c.Reset()
	if d := c.Delta(90000); d != 0 {
		t.Fatalf("delta after reset = %v, want 0", d)
	}
}
