package analyzer

import (
	"image"
	"image/color"
)

// AverageColor samples the image on a coarse grid and returns its mean
// color. Filler slides use it so a failed slot blends with its neighbours
// instead of flashing black.
func AverageColor(img image.Image) color.RGBA {
	bounds := img.Bounds()
	if bounds.Empty() {
		return color.RGBA{A: 255}
	}

	// Sampling every nth pixel is plenty for a fill color; a full scan of
	// a 4K frame buys nothing here.
	step := bounds.Dx() / 64
	if step < 1 {
		step = 1
	}

	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}

	return color.RGBA{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: 255,
	}
}
