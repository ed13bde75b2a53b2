package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rithiksai/longformyt/internal/config"
	"github.com/rithiksai/longformyt/internal/engine"
	"github.com/rithiksai/longformyt/internal/source"
	"github.com/rithiksai/longformyt/internal/system"
	"github.com/rithiksai/longformyt/internal/video"
)

func main() {
	system.InitResourceLimits()

	// Optional .env with default asset locations; flags always win.
	godotenv.Load()

	audioPtr := flag.String("audio", "", "Narration audio file (default: latest file in input/audio/)")
	inputPtr := flag.String("input", "", "Images directory, PDF file, or videos directory")
	outputPtr := flag.String("output", "", "Output video path (default: generated under output/)")
	modePtr := flag.String("mode", "", "Source mode: images, pdf, videos (default: inferred from -input)")
	widthPtr := flag.Int("width", 1920, "Output width")
	heightPtr := flag.Int("height", 1080, "Output height")
	fpsPtr := flag.Int("fps", 30, "Output frame rate")
	presetPtr := flag.String("preset", "", "Format preset: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	marginPtr := flag.Float64("margin", 1.15, "Margin scale above cover fit (pan/zoom headroom)")
	fadePtr := flag.Float64("fade", 0.4, "Fade-in/out duration in seconds")
	effectModePtr := flag.String("effects", config.EffectModeRandomized, "Effect selection: deterministic or randomized")
	seedPtr := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	minSlotPtr := flag.Float64("min-slot", 0.5, "Minimum slot duration; shorter tail slots are dropped (video mode)")
	cutMinPtr := flag.Float64("cut-min", 2.0, "Minimum random cut length (video mode)")
	cutMaxPtr := flag.Float64("cut-max", 5.0, "Maximum random cut length (video mode)")
	dpiPtr := flag.Int("dpi", 150, "Render DPI for PDF pages")
	qrPtr := flag.String("qr-url", "", "Append a QR end card pointing at this URL")
	planPtr := flag.String("plan", "", "Re-render from a saved storyboard YAML")
	planOutPtr := flag.String("plan-out", "", "Where to save the storyboard (default: alongside output)")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 = auto per encoder)")

	flag.Parse()

	width, height := *widthPtr, *heightPtr
	switch *presetPtr {
	case "16:9":
		width, height = 1920, 1080
	case "9:16":
		width, height = 1080, 1920
	case "4:5":
		width, height = 1080, 1350
	}

	audioPath := *audioPtr
	if audioPath == "" {
		dir := envOr("SLIDESHOW_AUDIO_DIR", "input/audio")
		latest, err := system.FindLatestAudio(dir)
		if err != nil {
			log.Fatalf("[-] No narration audio: %v (pass -audio or drop a file in %s)", err, dir)
		}
		audioPath = latest
		fmt.Printf("[*] Using audio: %s\n", audioPath)
	}

	ctx := context.Background()

	totalDuration, err := system.GetMediaDuration(ctx, audioPath)
	if err != nil {
		log.Fatalf("[-] Could not read audio duration: %v", err)
	}

	inputPath := *inputPtr
	if inputPath == "" {
		inputPath = envOr("SLIDESHOW_IMAGES_DIR", "input/images")
	}
	mode := *modePtr
	if mode == "" {
		mode = inferMode(inputPath)
	}

	if !system.CheckFilterSupport("zoompan") {
		log.Fatalf("[-] Local ffmpeg build has no zoompan filter")
	}

	encoderName := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Hardware encoder detected: %s\n", encoderName)
	}
	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75
		case "h264_nvenc":
			quality = 28
		default:
			quality = 23
		}
	}
	system.WarnLowMemory(width, height)

	outputVideo := *outputPtr
	if outputVideo == "" {
		os.MkdirAll("output", 0755)
		base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outputVideo = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", strings.ReplaceAll(base, " ", "_"), timestamp))
	}

	cfg := &config.Config{
		AudioPath:     audioPath,
		InputPath:     inputPath,
		OutputVideo:   outputVideo,
		Mode:          mode,
		Width:         width,
		Height:        height,
		FPS:           *fpsPtr,
		TotalDuration: totalDuration,
		MarginScale:   *marginPtr,
		FadeDuration:  *fadePtr,
		MinSlot:       *minSlotPtr,
		CutMin:        *cutMinPtr,
		CutMax:        *cutMaxPtr,
		EffectMode:    *effectModePtr,
		Seed:          *seedPtr,
		DPI:           *dpiPtr,
		QRURL:         *qrPtr,
		PlanPath:      *planPtr,
		PlanOut:       *planOutPtr,
		VideoEncoder:  encoderName,
		Quality:       quality,
		Threads:       system.EncodeThreads(),
	}

	var stills source.Source
	var pool *source.VideoPool

	switch mode {
	case config.ModeVideos:
		pool, err = source.NewVideoPool(ctx, inputPath)
		if err != nil {
			log.Fatalf("[-] Could not scan video pool: %v", err)
		}
	case config.ModePDF:
		stills, err = source.NewDeckSource(inputPath, cfg.DPI)
		if err != nil {
			log.Fatalf("[-] Could not open PDF: %v", err)
		}
	default:
		stills, err = source.NewImageSource(inputPath)
		if err != nil {
			log.Fatalf("[-] Could not open image source: %v", err)
		}
	}
	if stills != nil {
		defer stills.Close()
	}

	if cfg.QRURL != "" && stills != nil {
		card, err := source.QRCard(cfg.QRURL, width, height)
		if err != nil {
			log.Printf("[!] Could not build QR end card: %v", err)
		} else {
			stills = source.WithEndCard(stills, card)
		}
	}

	enc := &video.FFmpegEncoder{Encoder: encoderName, Quality: quality, Threads: cfg.Threads}
	compositor := engine.New(cfg, stills, pool, enc)

	if err := compositor.Run(ctx); err != nil {
		log.Fatalf("[-] Render failed: %v", err)
	}

	fmt.Printf("[+++] Done! Output: %s\n", cfg.OutputVideo)
}

func inferMode(inputPath string) string {
	if strings.HasSuffix(strings.ToLower(inputPath), ".pdf") {
		return config.ModePDF
	}
	if base := strings.ToLower(filepath.Base(inputPath)); strings.Contains(base, "video") {
		return config.ModeVideos
	}
	return config.ModeImages
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
