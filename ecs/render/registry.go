package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// Placeholder returns the solid-color image registered under key, creating
// it on first use. Sprites use these until real art is wired in.
func Placeholder(key string, w, h int, clr color.Color) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	RegisterImage(key, img)
	return img
}
