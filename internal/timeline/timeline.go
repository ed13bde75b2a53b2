package timeline

import (
	"math/rand"

	"github.com/rithiksai/longformyt/internal/effects"
)

// Slide is one unit of visual content bound to one time slot. It is
// constructed once during planning and never mutated afterwards.
type Slide struct {
	Index       int
	SourceIndex int
	Effect      effects.Effect
	Duration    float64

	// Cut is set in video mode only and identifies the sub-clip backing
	// this slide. Nil for still-image slides.
	Cut *Cut
}

// BuildStills plans one slide per equal slot over n still sources. When
// fewer sources than slots exist the sources cycle by index.
func BuildStills(total float64, nSources, nSlots int, sel *Selector) ([]Slide, error) {
	if nSlots <= 0 {
		nSlots = nSources
	}
	if nSources == 0 {
		return nil, ErrNoSources
	}

	durations, err := EqualPartition(total, nSlots)
	if err != nil {
		return nil, err
	}

	slides := make([]Slide, nSlots)
	for i := range slides {
		slides[i] = Slide{
			Index:       i,
			SourceIndex: i % nSources,
			Effect:      sel.Next(),
			Duration:    durations[i],
		}
	}
	return slides, nil
}

// BuildCuts plans slides for the random-cut video mode.
func BuildCuts(total float64, clipDurations []float64, opts CutOptions, sel *Selector, rng *rand.Rand) ([]Slide, error) {
	cuts, err := RandomCuts(total, clipDurations, opts, rng)
	if err != nil {
		return nil, err
	}

	slides := make([]Slide, len(cuts))
	for i := range cuts {
		cut := cuts[i]
		slides[i] = Slide{
			Index:       i,
			SourceIndex: cut.SourceIndex,
			Effect:      sel.Next(),
			Duration:    cut.Duration,
			Cut:         &cut,
		}
	}
	return slides, nil
}
