package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 16 || a == b {
		t.Errorf("ids %q %q", a, b)
	}
	if !strings.HasPrefix(PrefixedID("door"), "door_") {
		t.Error("prefix missing")
	}
}

func TestDurationBetween(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 100; i++ {
		d := DurationBetween(rng, 3*time.Second, 5*time.Second)
		if d < 3*time.Second || d > 5*time.Second {
			t.Fatalf("duration %s out of range", d)
		}
	}
	if DurationBetween(rng, time.Second, time.Second) != time.Second {
		t.Error("degenerate range must return lo")
	}
}
