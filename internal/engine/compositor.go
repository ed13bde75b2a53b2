package engine

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rithiksai/longformyt/internal/analyzer"
	"github.com/rithiksai/longformyt/internal/config"
	"github.com/rithiksai/longformyt/internal/effects"
	"github.com/rithiksai/longformyt/internal/renderer"
	"github.com/rithiksai/longformyt/internal/source"
	"github.com/rithiksai/longformyt/internal/storyboard"
	"github.com/rithiksai/longformyt/internal/timeline"
	"github.com/rithiksai/longformyt/internal/video"
)

// ErrNoSources is re-exported so callers can test the fatal empty-input
// condition without importing the timeline package.
var ErrNoSources = timeline.ErrNoSources

// Compositor turns a narration track plus visual sources into one rendered
// video. Planning and rendering are separate phases: Plan computes the
// storyboard (deterministically for a given seed), Render executes it slide
// by slide, strictly in order.
type Compositor struct {
	Config  *config.Config
	Stills  source.Source
	Pool    *source.VideoPool
	Encoder video.Encoder

	rng *rand.Rand
}

func New(cfg *config.Config, stills source.Source, pool *source.VideoPool, enc video.Encoder) *Compositor {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Compositor{
		Config:  cfg,
		Stills:  stills,
		Pool:    pool,
		Encoder: enc,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Run plans (or loads) the storyboard, saves it, renders every slide and
// assembles the final video.
func (c *Compositor) Run(ctx context.Context) error {
	sb, err := c.Plan()
	if err != nil {
		return err
	}

	if c.Config.PlanPath == "" {
		planOut := c.Config.PlanOut
		if planOut == "" {
			planOut = storyboard.PathFor(c.Config.OutputVideo)
		}
		if err := storyboard.Write(sb, planOut); err != nil {
			log.Printf("[!] Could not save storyboard: %v", err)
		} else {
			fmt.Printf("[*] Storyboard saved: %s\n", planOut)
		}
	}

	return c.Render(ctx, sb)
}

// Plan computes the slide timeline, or loads a previously saved storyboard
// when Config.PlanPath is set.
func (c *Compositor) Plan() (*storyboard.Storyboard, error) {
	if c.Config.PlanPath != "" {
		sb, err := storyboard.Read(c.Config.PlanPath)
		if err != nil {
			return nil, fmt.Errorf("read storyboard: %w", err)
		}
		fmt.Printf("[*] Using storyboard: %s (%d slides)\n", c.Config.PlanPath, len(sb.Slides))
		return sb, nil
	}

	sel := timeline.NewSelector(c.Config.EffectMode, c.rng)

	var slides []timeline.Slide
	var err error
	if c.Config.Mode == config.ModeVideos {
		if c.Pool == nil || c.Pool.Count() == 0 {
			return nil, ErrNoSources
		}
		opts := timeline.CutOptions{Min: c.Config.CutMin, Max: c.Config.CutMax, MinSlot: c.Config.MinSlot}
		slides, err = timeline.BuildCuts(c.Config.TotalDuration, c.Pool.Durations, opts, sel, c.rng)
	} else {
		if c.Stills == nil || c.Stills.Count() == 0 {
			return nil, ErrNoSources
		}
		n := c.Stills.Count()
		slides, err = timeline.BuildStills(c.Config.TotalDuration, n, n, sel)
	}
	if err != nil {
		return nil, err
	}

	sb := &storyboard.Storyboard{
		Version: storyboard.CurrentVersion,
		Audio:   c.Config.AudioPath,
		Width:   c.Config.Width,
		Height:  c.Config.Height,
		FPS:     c.Config.FPS,
		Seed:    c.Config.Seed,
	}
	for _, sl := range slides {
		entry := storyboard.Slide{
			ID:          sl.Index + 1,
			SourceIndex: sl.SourceIndex,
			Source:      c.sourceLabel(sl.SourceIndex),
			Effect:      sl.Effect.String(),
			Duration:    sl.Duration,
		}
		if sl.Cut != nil {
			entry.Start = sl.Cut.Start
		}
		sb.Slides = append(sb.Slides, entry)
	}
	return sb, nil
}

// Render executes a storyboard: each slide becomes one encoded segment, the
// segments are concatenated with the boundary fades and the narration track.
// Per-slide failures degrade to solid-color fillers; only pipeline-level
// failures abort.
func (c *Compositor) Render(ctx context.Context, sb *storyboard.Storyboard) error {
	if len(sb.Slides) == 0 {
		return ErrNoSources
	}

	tempDir, err := os.MkdirTemp("", "slideshow_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	fmt.Println("--- [SLIDESHOW COMPOSITOR] ---")
	fmt.Printf("[*] Audio: %s (%.2fs)\n", c.Config.AudioPath, c.Config.TotalDuration)
	fmt.Printf("[*] Output: %dx%d @ %d FPS | %d slides | seed %d\n",
		c.Config.Width, c.Config.Height, c.Config.FPS, len(sb.Slides), sb.Seed)
	fmt.Println("------------------------------")

	// Filler slides reuse the palette of the last slide that decoded, so a
	// degraded slot blends in instead of flashing black.
	fillColor := color.RGBA{A: 255}

	segments := make([]string, 0, len(sb.Slides))
	visualDuration := 0.0

	for i, sl := range sb.Slides {
		segPath := filepath.Join(tempDir, fmt.Sprintf("s%d.mp4", i))
		params := config.SegmentParams{
			Width:    c.Config.Width,
			Height:   c.Config.Height,
			FPS:      c.Config.FPS,
			Duration: sl.Duration,
			Index:    i,
		}

		if err := c.renderSlide(ctx, sl, segPath, &params, &fillColor); err != nil {
			log.Printf("[!] Slide %d failed (%v), using filler", i+1, err)
			if err := c.Encoder.EncodeFillerSegment(ctx, fillColor, segPath, params); err != nil {
				return fmt.Errorf("filler segment %d: %w", i, err)
			}
		}

		segments = append(segments, segPath)
		visualDuration += sl.Duration
		fmt.Printf("[>] Slide %d/%d ready [%s] (%.2fs)\n", i+1, len(sb.Slides), sl.Effect, sl.Duration)
	}

	// Dropped tail slots in cut mode shave the visual duration; the fades
	// and -shortest are computed against what was actually emitted.
	c.Config.TotalDuration = visualDuration

	fmt.Println("[*] Assembling final video...")
	if err := c.Encoder.Concatenate(ctx, segments, c.Config.AudioPath, c.Config.OutputVideo, c.Config); err != nil {
		return fmt.Errorf("assemble sequence: %w", err)
	}
	return nil
}

// renderSlide encodes one slide. Any error here is recoverable: the caller
// substitutes a filler segment of the same duration.
func (c *Compositor) renderSlide(ctx context.Context, sl storyboard.Slide, segPath string, params *config.SegmentParams, fillColor *color.RGBA) error {
	if c.Config.Mode == config.ModeVideos {
		if sl.SourceIndex < 0 || sl.SourceIndex >= c.Pool.Count() {
			return fmt.Errorf("source index %d out of range", sl.SourceIndex)
		}
		params.Filter = renderer.ClipFilter(*params)
		return c.Encoder.EncodeClipSegment(ctx, c.Pool.Files[sl.SourceIndex], sl.Start, segPath, *params)
	}

	if sl.SourceIndex < 0 || sl.SourceIndex >= c.Stills.Count() {
		return fmt.Errorf("source index %d out of range", sl.SourceIndex)
	}

	effect, err := effects.Parse(sl.Effect)
	if err != nil {
		return err
	}

	srcW, srcH, err := c.Stills.Dimensions(sl.SourceIndex)
	if err != nil {
		return err
	}

	plan, err := effects.NewPlan(srcW, srcH, c.Config.Width, c.Config.Height, effect, sl.Duration, c.Config.MarginScale)
	if err != nil {
		return err
	}
	params.Filter = renderer.GenerateFilter(plan, *params)

	img, err := c.Stills.Render(sl.SourceIndex)
	if err != nil {
		return err
	}
	*fillColor = analyzer.AverageColor(img)

	return c.Encoder.EncodeImageSegment(ctx, img, segPath, *params)
}

func (c *Compositor) sourceLabel(index int) string {
	if c.Config.Mode == config.ModeVideos {
		if c.Pool != nil && index < len(c.Pool.Files) {
			return c.Pool.Files[index]
		}
		return ""
	}
	if p, ok := c.Stills.(interface{ Path(int) string }); ok && index < c.Stills.Count() {
		return p.Path(index)
	}
	return fmt.Sprintf("slide_%d", index+1)
}
