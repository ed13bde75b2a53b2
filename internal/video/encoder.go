package video

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os/exec"
	"strings"

	"github.com/rithiksai/longformyt/internal/config"
	"github.com/rithiksai/longformyt/internal/renderer"
	"github.com/rithiksai/longformyt/internal/system"
)

// Encoder renders individual slide segments and assembles the final
// sequence. The compositor only talks to this interface, which keeps the
// planning logic testable without a local ffmpeg.
type Encoder interface {
	EncodeImageSegment(ctx context.Context, img image.Image, outPath string, p config.SegmentParams) error
	EncodeClipSegment(ctx context.Context, srcPath string, start float64, outPath string, p config.SegmentParams) error
	EncodeFillerSegment(ctx context.Context, fill color.RGBA, outPath string, p config.SegmentParams) error
	Concatenate(ctx context.Context, segments []string, audioPath, outPath string, cfg *config.Config) error
}

// FFmpegEncoder shells out to ffmpeg. Image segments are piped as a single
// raw RGBA frame on stdin and multiplied by zoompan; clip segments are cut
// straight from the source file.
type FFmpegEncoder struct {
	Encoder string
	Quality int
	Threads int
}

func (e *FFmpegEncoder) EncodeImageSegment(ctx context.Context, img image.Image, outPath string, p config.SegmentParams) error {
	bounds := img.Bounds()

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"-i", "-",
		"-vf", p.Filter,
		"-t", fmt.Sprintf("%f", p.Duration),
		"-r", fmt.Sprintf("%d", p.FPS),
	}
	args = append(args, e.outputArgs()...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start: %w", err)
	}

	if err := writeRawRGBA(stdin, img); err != nil {
		stdin.Close()
		cmd.Wait()
		return fmt.Errorf("write raw frame: %w", err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg segment %d: %w\n%s", p.Index, err, out.String())
	}
	return nil
}

func (e *FFmpegEncoder) EncodeClipSegment(ctx context.Context, srcPath string, start float64, outPath string, p config.SegmentParams) error {
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%f", start),
		"-t", fmt.Sprintf("%f", p.Duration),
		"-i", srcPath,
		"-vf", p.Filter,
		"-an",
	}
	args = append(args, e.outputArgs()...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg clip segment %d: %w\n%s", p.Index, err, string(out))
	}
	return nil
}

func (e *FFmpegEncoder) EncodeFillerSegment(ctx context.Context, fill color.RGBA, outPath string, p config.SegmentParams) error {
	args := []string{
		"-y",
		"-f", "lavfi",
		"-i", renderer.FillerSource(fill, p),
		"-t", fmt.Sprintf("%f", p.Duration),
	}
	args = append(args, e.outputArgs()...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg filler segment %d: %w\n%s", p.Index, err, string(out))
	}
	return nil
}

// Concatenate joins the segments in order, applies the boundary fades and
// binds the narration as the only audio stream.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segments []string, audioPath, outPath string, cfg *config.Config) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments to concatenate")
	}

	args := []string{"-y"}
	for _, s := range segments {
		args = append(args, "-i", s)
	}
	audioIndex := len(segments)
	args = append(args, "-i", audioPath)

	var filter strings.Builder
	visualOut := "[0:v]"
	if len(segments) > 1 {
		for i := range segments {
			fmt.Fprintf(&filter, "[%d:v]", i)
		}
		fmt.Fprintf(&filter, "concat=n=%d:v=1:a=0[vcat];", len(segments))
		visualOut = "[vcat]"
	}

	fadeOutStart := cfg.TotalDuration - cfg.FadeDuration
	if fadeOutStart < 0 {
		fadeOutStart = 0
	}
	fmt.Fprintf(&filter, "%sfade=t=in:st=0:d=%f,fade=t=out:st=%f:d=%f[v]",
		visualOut, cfg.FadeDuration, fadeOutStart, cfg.FadeDuration)

	args = append(args, "-filter_complex", filter.String())
	args = append(args, "-map", "[v]", "-map", fmt.Sprintf("%d:a", audioIndex))
	args = append(args, e.outputArgs()...)
	args = append(args, "-c:a", "aac", "-b:a", "192k", "-shortest")
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %w\n%s", err, string(out))
	}
	return nil
}

// outputArgs carries the codec, quality and threading flags shared by every
// ffmpeg invocation.
func (e *FFmpegEncoder) outputArgs() []string {
	args := []string{"-pix_fmt", "yuv420p", "-c:v", e.Encoder}

	switch e.Encoder {
	case "h264_videotoolbox":
		// VideoToolbox has no CRF equivalent across versions, use bitrate.
		args = append(args, "-b:v", fmt.Sprintf("%dk", e.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", e.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium")
	}

	if e.Threads > 0 {
		args = append(args, "-threads", fmt.Sprintf("%d", e.Threads))
	}
	return args
}

// writeRawRGBA streams one frame of raw RGBA pixels, converting through a
// pooled buffer when the source image is not already tightly packed RGBA.
func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		buf := system.GetImage(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		defer system.PutImage(buf)
		draw.Draw(buf, buf.Bounds(), img, bounds.Min, draw.Src)
		rgba = buf
	}
	_, err := w.Write(rgba.Pix)
	return err
}
