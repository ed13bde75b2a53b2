package source

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// DeckSource turns each page of a PDF into one slide. Pages are rendered
// at the configured DPI on demand; fitz documents are not safe for reuse
// across renders, so Render opens a fresh document per page.
type DeckSource struct {
	doc  *fitz.Document
	path string
	dpi  int
}

func NewDeckSource(path string, dpi int) (*DeckSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		dpi = 150
	}
	return &DeckSource{doc: doc, path: path, dpi: dpi}, nil
}

func (s *DeckSource) Count() int { return s.doc.NumPage() }

func (s *DeckSource) Dimensions(index int) (int, int, error) {
	rect, err := s.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return rect.Dx(), rect.Dy(), nil
}

func (s *DeckSource) Render(index int) (image.Image, error) {
	pageDoc, err := fitz.New(s.path)
	if err != nil {
		return nil, err
	}
	defer pageDoc.Close()
	return pageDoc.ImageDPI(index, float64(s.dpi))
}

func (s *DeckSource) Close() error { return s.doc.Close() }
