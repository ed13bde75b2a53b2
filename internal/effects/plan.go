package effects

import (
	"fmt"
	"math"
)

// DefaultMarginScale is the extra magnification on top of cover fit that
// creates room for panning without exposing the canvas behind the image.
const DefaultMarginScale = 1.15

// Plan is the time-parameterized geometry for one slide: how a source of
// srcW x srcH pixels moves inside a frameW x frameH output frame over the
// slot duration. A Plan is pure data computed once per slide; rendering
// samples it through ScaleAt and PositionAt.
type Plan struct {
	Effect      Effect
	Slot        float64
	FrameW      int
	FrameH      int
	SrcW        int
	SrcH        int
	BaseScale   float64
	MarginScale float64
}

// NewPlan builds the effect geometry for one slide.
//
// BaseScale is the cover-fit scale: the smallest uniform factor at which the
// source fills the frame in both dimensions. margin (> 1) adds pan headroom;
// values <= 1 fall back to DefaultMarginScale.
func NewPlan(srcW, srcH, frameW, frameH int, effect Effect, slot, margin float64) (*Plan, error) {
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("invalid source dimensions %dx%d", srcW, srcH)
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", frameW, frameH)
	}
	if slot <= 0 {
		return nil, fmt.Errorf("invalid slot duration %.3fs", slot)
	}
	if margin <= 1 {
		margin = DefaultMarginScale
	}

	base := math.Max(float64(frameW)/float64(srcW), float64(frameH)/float64(srcH))

	return &Plan{
		Effect:      effect,
		Slot:        slot,
		FrameW:      frameW,
		FrameH:      frameH,
		SrcW:        srcW,
		SrcH:        srcH,
		BaseScale:   base,
		MarginScale: margin,
	}, nil
}

// WorkingScale is the scale pan and static effects hold for the whole slot.
func (p *Plan) WorkingScale() float64 {
	return p.BaseScale * p.MarginScale
}

// Margins returns the pixel headroom on each side of the frame at the
// working scale: (scaled - frame) / 2 per axis.
func (p *Plan) Margins() (mx, my float64) {
	ws := p.WorkingScale()
	mx = (float64(p.SrcW)*ws - float64(p.FrameW)) / 2
	my = (float64(p.SrcH)*ws - float64(p.FrameH)) / 2
	return mx, my
}

// ScaleAt returns the uniform scale factor applied to the source at time t.
// Pan and static effects keep the working scale; zooms interpolate linearly
// between the cover-fit scale and the working scale.
func (p *Plan) ScaleAt(t float64) float64 {
	switch p.Effect {
	case ZoomIn:
		return lerp(p.BaseScale, p.WorkingScale(), p.progress(t))
	case ZoomOut:
		return lerp(p.WorkingScale(), p.BaseScale, p.progress(t))
	default:
		return p.WorkingScale()
	}
}

// PositionAt returns the image offset from the centered position at time t,
// in output pixels. Pan effects sweep the relevant axis linearly from one
// margin extreme to the opposite one; the image moves opposite to the named
// camera direction. Zoom and static slides stay centered.
func (p *Plan) PositionAt(t float64) (x, y float64) {
	if !p.Effect.IsPan() {
		return 0, 0
	}

	mx, my := p.Margins()
	u := p.progress(t)

	switch p.Effect {
	case PanRight:
		x = lerp(mx, -mx, u)
	case PanLeft:
		x = lerp(-mx, mx, u)
	case PanUp:
		y = lerp(my, -my, u)
	case PanDown:
		y = lerp(-my, my, u)
	}
	return x, y
}

// Covers reports whether the transformed source still covers the whole
// output frame at time t. This holds for every valid plan at every instant;
// it exists so callers and tests can assert the invariant cheaply.
func (p *Plan) Covers(t float64) bool {
	s := p.ScaleAt(t)
	w := float64(p.SrcW) * s
	h := float64(p.SrcH) * s
	x, y := p.PositionAt(t)

	halfSlackX := (w - float64(p.FrameW)) / 2
	halfSlackY := (h - float64(p.FrameH)) / 2
	const eps = 1e-6
	return math.Abs(x) <= halfSlackX+eps && math.Abs(y) <= halfSlackY+eps
}

// progress clamps t into [0, Slot] and normalizes to [0, 1].
func (p *Plan) progress(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= p.Slot {
		return 1
	}
	return t / p.Slot
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}
