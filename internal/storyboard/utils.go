package storyboard

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathFor derives the default storyboard path from the output video path:
// the same base name with a .yaml extension, alongside the video.
func PathFor(outputVideo string) string {
	base := strings.TrimSuffix(outputVideo, filepath.Ext(outputVideo))
	return fmt.Sprintf("%s.yaml", base)
}
