package source

import "image"

// Source is an ordered set of still visuals: one entry per slide candidate.
// Order is significant and deterministic; it defines slide order.
type Source interface {
	Count() int
	Dimensions(index int) (width, height int, err error)
	Render(index int) (image.Image, error)
	Close() error
}

// WithEndCard appends one synthetic image (e.g. a QR outro card) after the
// base source's entries.
func WithEndCard(base Source, card image.Image) Source {
	return &endCardSource{base: base, card: card}
}

type endCardSource struct {
	base Source
	card image.Image
}

func (s *endCardSource) Count() int { return s.base.Count() + 1 }

func (s *endCardSource) Dimensions(index int) (int, int, error) {
	if index == s.base.Count() {
		b := s.card.Bounds()
		return b.Dx(), b.Dy(), nil
	}
	return s.base.Dimensions(index)
}

func (s *endCardSource) Render(index int) (image.Image, error) {
	if index == s.base.Count() {
		return s.card, nil
	}
	return s.base.Render(index)
}

func (s *endCardSource) Close() error { return s.base.Close() }
