package timeline

import (
	"errors"
	"fmt"
)

// ErrNoSources means zero usable visual sources were supplied. It is fatal:
// the compositor produces no output when it fires.
var ErrNoSources = errors.New("no visual sources available")

// ErrSourceTooShort means no source clip in the pool can carry even the
// minimum slot duration. Callers fold it into ErrNoSources semantics.
var ErrSourceTooShort = errors.New("no source clip long enough for a segment")

// EqualPartition splits total seconds into n equal slots. The slots always
// sum back to total exactly up to floating-point rounding.
func EqualPartition(total float64, n int) ([]float64, error) {
	if n == 0 {
		return nil, ErrNoSources
	}
	if n < 0 {
		return nil, fmt.Errorf("negative source count %d", n)
	}
	if total <= 0 {
		return nil, fmt.Errorf("invalid total duration %.3fs", total)
	}

	slot := total / float64(n)
	durations := make([]float64, n)
	for i := range durations {
		durations[i] = slot
	}
	return durations, nil
}
