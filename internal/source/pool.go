package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rithiksai/longformyt/internal/system"
)

var videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v"}

// VideoPool is the set of source videos the random-cut mode draws sub-clips
// from, with their durations probed up front.
type VideoPool struct {
	Files     []string
	Durations []float64
}

// NewVideoPool scans dir for video files and probes every duration with
// ffprobe. Probing is boundary I/O, so it runs in parallel; the compositor
// itself stays sequential.
func NewVideoPool(ctx context.Context, dir string) (*VideoPool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, e := range videoExtensions {
			if ext == e {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return &VideoPool{}, nil
	}

	durations := make([]float64, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range files {
		g.Go(func() error {
			d, err := system.GetMediaDuration(ctx, files[i])
			if err != nil {
				return fmt.Errorf("probe %s: %w", files[i], err)
			}
			durations[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &VideoPool{Files: files, Durations: durations}, nil
}

func (p *VideoPool) Count() int { return len(p.Files) }
