// internal/utils/prng_test.go
package utils

import (
	"testing"

	"github.com/aeft/zombie-shooter-game/internal/defs"
)

func TestChooseWeightedFallbacks(t *testing.T) {
	s := NewPRNGService(1)

	if got := s.ChooseWeighted(nil); got != "" {
		t.Errorf("empty list: got %q, want empty string", got)
	}

	zeroed := []defs.ZombieDefinition{
		{ID: "A", Weight: 0},
		{ID: "B", Weight: 0},
	}
	if got := s.ChooseWeighted(zeroed); got != "A" {
		t.Errorf("zero total weight: got %q, want first entry", got)
	}
}

func TestChooseWeightedSkipsZeroWeight(t *testing.T) {
	s := NewPRNGService(7)
	entries := []defs.ZombieDefinition{
		{ID: "A", Weight: 3},
		{ID: "NEVER", Weight: 0},
		{ID: "B", Weight: 2},
	}
	for i := 0; i < 200; i++ {
		if got := s.ChooseWeighted(entries); got == "NEVER" {
			t.Fatalf("zero-weight entry was chosen on iteration %d", i)
		}
	}
}

func TestChooseWeightedDeterministicForSeed(t *testing.T) {
	entries := []defs.ZombieDefinition{
		{ID: "A", Weight: 50},
		{ID: "B", Weight: 30},
		{ID: "C", Weight: 20},
	}

	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		x, y := a.ChooseWeighted(entries), b.ChooseWeighted(entries)
		if x != y {
			t.Fatalf("same seed diverged on iteration %d: %q vs %q", i, x, y)
		}
	}
}

func TestIntnRangeBounds(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 500; i++ {
		v := s.IntnRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntnRange(3,5) produced %d", v)
		}
	}
	if v := s.IntnRange(4, 4); v != 4 {
		t.Errorf("degenerate range: got %d, want 4", v)
	}
}
