package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/adventurer/assets"
)

// LoadImage loads an image from the embedded assets and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := assets.LoadImage(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}
