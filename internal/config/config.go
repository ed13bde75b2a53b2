package config

// Visual source modes.
const (
	ModeImages = "images"
	ModePDF    = "pdf"
	ModeVideos = "videos"
)

// Effect selection modes.
const (
	EffectModeDeterministic = "deterministic"
	EffectModeRandomized    = "randomized"
)

type Config struct {
	AudioPath   string
	InputPath   string
	OutputVideo string
	Mode        string

	Width  int
	Height int
	FPS    int

	// TotalDuration is authoritative and comes from the narration audio.
	TotalDuration float64
	MarginScale   float64
	FadeDuration  float64
	MinSlot       float64
	CutMin        float64
	CutMax        float64

	EffectMode string
	Seed       int64

	DPI   int
	QRURL string

	// PlanPath re-renders a previously saved storyboard instead of
	// computing a new one. PlanOut overrides where the storyboard is saved.
	PlanPath string
	PlanOut  string

	VideoEncoder string
	Quality      int
	Threads      int
}

// SegmentParams carries everything the encoder needs for one slide segment.
type SegmentParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	Filter        string
	Index         int
}
