package effects

import "fmt"

// Effect is one of the fixed Ken-Burns camera motions applied to a slide.
type Effect int

const (
	PanLeft Effect = iota
	PanRight
	PanUp
	PanDown
	ZoomIn
	ZoomOut
	Static
)

// All lists the effects in round-robin order for deterministic selection.
var All = []Effect{PanLeft, PanRight, PanUp, PanDown, ZoomIn, ZoomOut, Static}

var names = map[Effect]string{
	PanLeft:  "pan_left",
	PanRight: "pan_right",
	PanUp:    "pan_up",
	PanDown:  "pan_down",
	ZoomIn:   "zoom_in",
	ZoomOut:  "zoom_out",
	Static:   "static",
}

func (e Effect) String() string {
	if s, ok := names[e]; ok {
		return s
	}
	return "static"
}

// Parse maps a storyboard effect name back to its Effect value.
func Parse(s string) (Effect, error) {
	for e, name := range names {
		if name == s {
			return e, nil
		}
	}
	return Static, fmt.Errorf("unknown effect %q", s)
}

// IsPan reports whether the effect moves the camera position over time.
func (e Effect) IsPan() bool {
	switch e {
	case PanLeft, PanRight, PanUp, PanDown:
		return true
	}
	return false
}

// IsZoom reports whether the effect changes scale over time.
func (e Effect) IsZoom() bool {
	return e == ZoomIn || e == ZoomOut
}
