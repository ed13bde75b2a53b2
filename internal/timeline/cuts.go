package timeline

import (
	"fmt"
	"math/rand"
)

// Cut is one random sub-clip slot taken from the source video pool.
type Cut struct {
	SourceIndex int
	Start       float64
	Duration    float64
}

// CutOptions controls random-cut slot generation. Min/Max bound the drawn
// slot length; MinSlot is the threshold below which a trailing remainder is
// dropped instead of emitted.
type CutOptions struct {
	Min     float64
	Max     float64
	MinSlot float64
}

// DefaultCutOptions matches the reference fast-cut behavior: 2-5 second
// slots, nothing shorter than half a second.
func DefaultCutOptions() CutOptions {
	return CutOptions{Min: 2.0, Max: 5.0, MinSlot: 0.5}
}

// RandomCuts fills total seconds with randomly sized slots, each backed by a
// uniformly chosen source clip and a uniformly chosen start offset inside it.
// The final slot is truncated to land exactly on total. Clips too short for a
// requested slot are skipped; when no clip can carry a slot the requested
// length shrinks to the longest available clip before giving up with
// ErrSourceTooShort.
func RandomCuts(total float64, clipDurations []float64, opts CutOptions, rng *rand.Rand) ([]Cut, error) {
	if len(clipDurations) == 0 {
		return nil, ErrNoSources
	}
	if total <= 0 {
		return nil, fmt.Errorf("invalid total duration %.3fs", total)
	}
	if opts.Min <= 0 || opts.Max < opts.Min {
		opts = DefaultCutOptions()
	}

	longest := 0.0
	for _, d := range clipDurations {
		if d > longest {
			longest = d
		}
	}
	if longest < opts.MinSlot {
		return nil, ErrSourceTooShort
	}

	var cuts []Cut
	elapsed := 0.0

	for elapsed < total {
		slot := opts.Min + rng.Float64()*(opts.Max-opts.Min)

		// Truncate the last slot so the running total lands on target.
		if elapsed+slot > total {
			slot = total - elapsed
		}
		if slot < opts.MinSlot {
			break
		}
		if slot > longest {
			slot = longest
		}

		idx, start, ok := pickOffset(clipDurations, slot, rng)
		if !ok {
			return nil, ErrSourceTooShort
		}

		cuts = append(cuts, Cut{SourceIndex: idx, Start: start, Duration: slot})
		elapsed += slot
	}

	if len(cuts) == 0 {
		return nil, ErrSourceTooShort
	}
	return cuts, nil
}

// pickOffset chooses a clip that fits slot seconds and a valid start offset
// within it. A too-short pick is retried against the remaining clips.
func pickOffset(clipDurations []float64, slot float64, rng *rand.Rand) (idx int, start float64, ok bool) {
	candidates := rng.Perm(len(clipDurations))
	for _, i := range candidates {
		if clipDurations[i] < slot {
			continue
		}
		maxStart := clipDurations[i] - slot
		return i, rng.Float64() * maxStart, true
	}
	return 0, 0, false
}
