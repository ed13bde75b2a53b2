package storyboard

// Storyboard records the full plan of a slideshow run: which source backs
// each slot, for how long, and with which effect. Saving it next to the
// output makes a render reproducible; reading one back re-renders the same
// video without re-rolling any random choices.
type Storyboard struct {
	Version string  `yaml:"version"`
	Audio   string  `yaml:"audio"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     int     `yaml:"fps"`
	Seed    int64   `yaml:"seed"`
	Slides  []Slide `yaml:"slides"`
}

// Slide is one planned slot.
type Slide struct {
	ID          int     `yaml:"id"`
	SourceIndex int     `yaml:"source_index"`
	Source      string  `yaml:"source,omitempty"`
	Effect      string  `yaml:"effect"`
	Duration    float64 `yaml:"duration"`
	// Start is the offset into the source clip, video-cut mode only.
	Start float64 `yaml:"start,omitempty"`
}

// Version written by this build.
const CurrentVersion = "1.0"
