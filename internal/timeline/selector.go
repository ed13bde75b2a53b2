package timeline

import (
	"math/rand"

	"github.com/rithiksai/longformyt/internal/config"
	"github.com/rithiksai/longformyt/internal/effects"
)

// Selector assigns a Ken-Burns effect to each slide. Deterministic mode
// cycles the enumeration in order; randomized mode draws uniformly from an
// injected random source. Adjacent slides may repeat an effect.
type Selector struct {
	randomized bool
	rng        *rand.Rand
	next       int
}

// NewSelector builds a selector for the given mode. rng is only consulted in
// randomized mode but must be non-nil then; there is no hidden process-wide
// random stream.
func NewSelector(mode string, rng *rand.Rand) *Selector {
	return &Selector{
		randomized: mode == config.EffectModeRandomized,
		rng:        rng,
	}
}

// Next returns the effect for the next slide.
func (s *Selector) Next() effects.Effect {
	if s.randomized {
		return effects.All[s.rng.Intn(len(effects.All))]
	}
	e := effects.All[s.next%len(effects.All)]
	s.next++
	return e
}
