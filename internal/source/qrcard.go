package source

import (
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCard renders an outro card for the slideshow: a QR code pointing at url,
// centered on a dark canvas sized to the output frame. Append it with
// WithEndCard so it becomes the final slide.
func QRCard(url string, frameW, frameH int) (image.Image, error) {
	side := frameW
	if frameH < side {
		side = frameH
	}
	// QR occupies roughly half the short frame edge.
	side /= 2

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qr.BackgroundColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	qr.ForegroundColor = color.White

	code := qr.Image(side)

	card := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
	draw.Draw(card, card.Bounds(), &image.Uniform{C: qr.BackgroundColor}, image.Point{}, draw.Src)

	offset := image.Pt((frameW-side)/2, (frameH-side)/2)
	draw.Draw(card, code.Bounds().Add(offset), code, image.Point{}, draw.Over)

	return card, nil
}
