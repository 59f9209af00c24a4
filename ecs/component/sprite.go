package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()

// FrameImage returns the part of Image the sprite currently shows.
func (s *Sprite) FrameImage() *ebiten.Image {
	if s == nil || s.Image == nil {
		return nil
	}
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			return sub
		}
	}
	return s.Image
}
