package renderer

import (
	"fmt"
	"image/color"

	"github.com/rithiksai/longformyt/internal/config"
	"github.com/rithiksai/longformyt/internal/effects"
)

// GenerateFilter turns an effect plan into the ffmpeg filter chain for one
// still-image segment.
//
// The chain pre-scales the source to a 2x cover fit (the oversampling keeps
// zoompan output sharp), then drives zoompan with linear per-frame
// expressions derived from the plan, then scales down to the output frame.
// In zoompan terms z=1.0 is the cover fit, so the plan's margin scale maps
// directly onto the zoom expression and the pan window sweeps the full
// (iw-iw/zoom) headroom.
func GenerateFilter(plan *effects.Plan, p config.SegmentParams) string {
	aspect := coverFilter(p.Width*2, p.Height*2)

	frames := int(p.Duration * float64(p.FPS))
	if frames < 2 {
		frames = 2
	}
	// Last output frame index; the sweep must hit its extremes exactly at
	// the first and last frame.
	n := frames - 1

	m := plan.MarginScale
	centerX := "iw/2-(iw/zoom/2)"
	centerY := "ih/2-(ih/zoom/2)"

	var zExpr, xExpr, yExpr string
	switch plan.Effect {
	case effects.PanRight:
		zExpr = fmt.Sprintf("%.6f", m)
		xExpr = fmt.Sprintf("(iw-iw/zoom)*on/%d", n)
		yExpr = centerY
	case effects.PanLeft:
		zExpr = fmt.Sprintf("%.6f", m)
		xExpr = fmt.Sprintf("(iw-iw/zoom)*(1-on/%d)", n)
		yExpr = centerY
	case effects.PanUp:
		zExpr = fmt.Sprintf("%.6f", m)
		xExpr = centerX
		yExpr = fmt.Sprintf("(ih-ih/zoom)*on/%d", n)
	case effects.PanDown:
		zExpr = fmt.Sprintf("%.6f", m)
		xExpr = centerX
		yExpr = fmt.Sprintf("(ih-ih/zoom)*(1-on/%d)", n)
	case effects.ZoomIn:
		zExpr = fmt.Sprintf("1.0+%.6f*on/%d", m-1.0, n)
		xExpr = centerX
		yExpr = centerY
	case effects.ZoomOut:
		zExpr = fmt.Sprintf("%.6f-%.6f*on/%d", m, m-1.0, n)
		xExpr = centerX
		yExpr = centerY
	default: // static
		zExpr = fmt.Sprintf("%.6f", m)
		xExpr = centerX
		yExpr = centerY
	}

	zoom := fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%d",
		zExpr, xExpr, yExpr, frames, p.Width, p.Height, p.FPS)

	return fmt.Sprintf("%s,%s,scale=%d:%d", aspect, zoom, p.Width, p.Height)
}

// ClipFilter is the chain for a video sub-clip segment: center-crop cover
// fit to the output frame, normalized frame rate, no camera motion.
func ClipFilter(p config.SegmentParams) string {
	return fmt.Sprintf("%s,fps=%d,setsar=1", coverFilter(p.Width, p.Height), p.FPS)
}

// FillerSource is the lavfi input for a solid-color substitute slide.
func FillerSource(c color.RGBA, p config.SegmentParams) string {
	return fmt.Sprintf("color=c=0x%02X%02X%02X:s=%dx%d:r=%d",
		c.R, c.G, c.B, p.Width, p.Height, p.FPS)
}

// coverFilter scales so the shorter-relative dimension fills w x h and
// center-crops the overflow (CSS object-fit: cover).
func coverFilter(w, h int) string {
	return fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d", w, h, w, h)
}
