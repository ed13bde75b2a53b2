package effects

import (
	"math"
	"testing"
)

func TestNewPlanCoverScale(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		frmW, frmH   int
		expectedBase float64
	}{
		{"wide source into landscape", 4000, 2000, 1920, 1080, 1080.0 / 2000.0},
		{"tall source into landscape", 1000, 3000, 1920, 1080, 1920.0 / 1000.0},
		{"exact fit", 1920, 1080, 1920, 1080, 1.0},
		{"portrait frame", 2000, 2000, 1080, 1920, 1920.0 / 2000.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.srcW, tt.srcH, tt.frmW, tt.frmH, Static, 3.0, 1.15)
			if err != nil {
				t.Fatalf("NewPlan failed: %v", err)
			}
			if math.Abs(plan.BaseScale-tt.expectedBase) > 1e-9 {
				t.Errorf("BaseScale = %f, expected %f", plan.BaseScale, tt.expectedBase)
			}
			// Cover fit must fill the frame in both dimensions.
			if float64(tt.srcW)*plan.BaseScale < float64(tt.frmW)-1e-6 {
				t.Errorf("scaled width %f below frame %d", float64(tt.srcW)*plan.BaseScale, tt.frmW)
			}
			if float64(tt.srcH)*plan.BaseScale < float64(tt.frmH)-1e-6 {
				t.Errorf("scaled height %f below frame %d", float64(tt.srcH)*plan.BaseScale, tt.frmH)
			}
		})
	}
}

func TestNewPlanRejectsInvalidInput(t *testing.T) {
	if _, err := NewPlan(0, 1080, 1920, 1080, Static, 3.0, 1.15); err == nil {
		t.Error("expected error for zero source width")
	}
	if _, err := NewPlan(1920, 0, 1920, 1080, Static, 3.0, 1.15); err == nil {
		t.Error("expected error for zero source height")
	}
	if _, err := NewPlan(1920, 1080, 1920, 1080, Static, 0, 1.15); err == nil {
		t.Error("expected error for zero slot duration")
	}
}

func TestFrameCoverageInvariant(t *testing.T) {
	dims := []struct{ w, h int }{
		{4000, 2000},
		{1000, 3000},
		{1920, 1080},
		{640, 480},
	}

	for _, effect := range All {
		for _, d := range dims {
			plan, err := NewPlan(d.w, d.h, 1920, 1080, effect, 4.0, 1.15)
			if err != nil {
				t.Fatalf("NewPlan(%dx%d, %s) failed: %v", d.w, d.h, effect, err)
			}
			for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
				ts := frac * plan.Slot
				if !plan.Covers(ts) {
					x, y := plan.PositionAt(ts)
					t.Errorf("%s on %dx%d exposes background at t=%.2f (scale %f, offset %f,%f)",
						effect, d.w, d.h, ts, plan.ScaleAt(ts), x, y)
				}
			}
		}
	}
}

func TestPanMonotonicWithExactExtremes(t *testing.T) {
	tests := []struct {
		effect     Effect
		horizontal bool
		decreasing bool
	}{
		{PanRight, true, true},
		{PanLeft, true, false},
		{PanUp, false, true},
		{PanDown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			plan, err := NewPlan(4000, 3000, 1920, 1080, tt.effect, 5.0, 1.2)
			if err != nil {
				t.Fatalf("NewPlan failed: %v", err)
			}
			mx, my := plan.Margins()

			axis := func(t float64) float64 {
				x, y := plan.PositionAt(t)
				if tt.horizontal {
					return x
				}
				return y
			}
			margin := my
			if tt.horizontal {
				margin = mx
			}

			start, end := axis(0), axis(plan.Slot)
			wantStart, wantEnd := margin, -margin
			if !tt.decreasing {
				wantStart, wantEnd = -margin, margin
			}
			if math.Abs(start-wantStart) > 1e-9 || math.Abs(end-wantEnd) > 1e-9 {
				t.Errorf("extremes: got [%f, %f], expected [%f, %f]", start, end, wantStart, wantEnd)
			}

			prev := axis(0)
			for _, frac := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1.0} {
				cur := axis(frac * plan.Slot)
				if tt.decreasing && cur > prev+1e-9 {
					t.Errorf("expected non-increasing axis, %f -> %f at %.0f%%", prev, cur, frac*100)
				}
				if !tt.decreasing && cur < prev-1e-9 {
					t.Errorf("expected non-decreasing axis, %f -> %f at %.0f%%", prev, cur, frac*100)
				}
				prev = cur
			}

			// The off-axis coordinate stays centered throughout.
			for _, frac := range []float64{0, 0.5, 1.0} {
				x, y := plan.PositionAt(frac * plan.Slot)
				off := y
				if !tt.horizontal {
					off = x
				}
				if math.Abs(off) > 1e-9 {
					t.Errorf("off-axis offset %f at %.0f%%, expected 0", off, frac*100)
				}
			}
		})
	}
}

func TestZoomBounds(t *testing.T) {
	plan, err := NewPlan(3000, 2000, 1920, 1080, ZoomIn, 4.0, 1.25)
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}

	if math.Abs(plan.ScaleAt(0)-plan.BaseScale) > 1e-9 {
		t.Errorf("zoom_in scale(0) = %f, expected base %f", plan.ScaleAt(0), plan.BaseScale)
	}
	if math.Abs(plan.ScaleAt(plan.Slot)-plan.WorkingScale()) > 1e-9 {
		t.Errorf("zoom_in scale(end) = %f, expected working %f", plan.ScaleAt(plan.Slot), plan.WorkingScale())
	}
	mid := plan.ScaleAt(plan.Slot / 2)
	expected := (plan.BaseScale + plan.WorkingScale()) / 2
	if math.Abs(mid-expected) > 1e-9 {
		t.Errorf("zoom_in is not linear: scale(mid) = %f, expected %f", mid, expected)
	}

	plan.Effect = ZoomOut
	if math.Abs(plan.ScaleAt(0)-plan.WorkingScale()) > 1e-9 {
		t.Errorf("zoom_out scale(0) = %f, expected working %f", plan.ScaleAt(0), plan.WorkingScale())
	}
	if math.Abs(plan.ScaleAt(plan.Slot)-plan.BaseScale) > 1e-9 {
		t.Errorf("zoom_out scale(end) = %f, expected base %f", plan.ScaleAt(plan.Slot), plan.BaseScale)
	}

	// Zoom slides stay centered.
	for _, frac := range []float64{0, 0.5, 1.0} {
		x, y := plan.PositionAt(frac * plan.Slot)
		if x != 0 || y != 0 {
			t.Errorf("zoom offset (%f, %f) at %.0f%%, expected center", x, y, frac*100)
		}
	}
}

func TestMarginFallback(t *testing.T) {
	plan, err := NewPlan(1920, 1080, 1920, 1080, Static, 2.0, 0)
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}
	if plan.MarginScale != DefaultMarginScale {
		t.Errorf("MarginScale = %f, expected default %f", plan.MarginScale, DefaultMarginScale)
	}
}
