package timeline

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRandomCutsFillTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	clips := []float64{30.0, 20.0, 45.0}
	opts := DefaultCutOptions()

	cuts, err := RandomCuts(60.0, clips, opts, rng)
	if err != nil {
		t.Fatalf("RandomCuts failed: %v", err)
	}

	sum := 0.0
	for _, c := range cuts {
		if c.Duration <= 0 {
			t.Errorf("cut duration %f not positive", c.Duration)
		}
		if c.Duration > opts.Max+1e-9 {
			t.Errorf("cut duration %f above max %f", c.Duration, opts.Max)
		}
		if c.SourceIndex < 0 || c.SourceIndex >= len(clips) {
			t.Errorf("source index %d out of range", c.SourceIndex)
		}
		if c.Start < 0 || c.Start+c.Duration > clips[c.SourceIndex]+1e-9 {
			t.Errorf("cut [%f, %f] exceeds clip %d of %fs",
				c.Start, c.Start+c.Duration, c.SourceIndex, clips[c.SourceIndex])
		}
		sum += c.Duration
	}

	// The total fills up to the target; at most one sub-threshold tail may
	// be dropped instead of emitted.
	if sum > 60.0+1e-9 {
		t.Errorf("cuts sum %f exceeds total", sum)
	}
	if 60.0-sum >= opts.MinSlot {
		t.Errorf("cuts sum %f leaves more than the droppable tail", sum)
	}
}

func TestRandomCutsDeterministicForSeed(t *testing.T) {
	clips := []float64{15.0, 25.0}
	a, err := RandomCuts(20.0, clips, DefaultCutOptions(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("RandomCuts failed: %v", err)
	}
	b, err := RandomCuts(20.0, clips, DefaultCutOptions(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("RandomCuts failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("seeded runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cut %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRandomCutsShrinksToLongestClip(t *testing.T) {
	// Every clip is shorter than the minimum requested cut; slots shrink
	// to what the pool can carry instead of failing.
	rng := rand.New(rand.NewSource(1))
	clips := []float64{1.5, 1.2}

	cuts, err := RandomCuts(6.0, clips, DefaultCutOptions(), rng)
	if err != nil {
		t.Fatalf("RandomCuts failed: %v", err)
	}
	for _, c := range cuts {
		if c.Duration > 1.5+1e-9 {
			t.Errorf("cut duration %f exceeds longest clip", c.Duration)
		}
	}
}

func TestRandomCutsNoUsablePool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := RandomCuts(10.0, nil, DefaultCutOptions(), rng); !errors.Is(err, ErrNoSources) {
		t.Errorf("expected ErrNoSources for empty pool, got %v", err)
	}

	// Pool exists but nothing can carry even the minimum slot.
	_, err := RandomCuts(10.0, []float64{0.2, 0.3}, DefaultCutOptions(), rng)
	if !errors.Is(err, ErrSourceTooShort) {
		t.Errorf("expected ErrSourceTooShort, got %v", err)
	}
}
