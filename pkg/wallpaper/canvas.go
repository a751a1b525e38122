package wallpaper

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ColorMode is the pixel layout shared by a source and its canvas.
type ColorMode int

// ColorMode constants
const (
	ModeRGB ColorMode = iota
	ModeGray
)

func (m ColorMode) String() string {
	if m == ModeGray {
		return "gray"
	}
	return "rgb"
}

// ColorModeOf derives the canvas colour mode from a decoded source.
// JPEG carries no alpha, so anything that is not grayscale is written as RGB.
func ColorModeOf(img image.Image) ColorMode {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	default:
		return ModeRGB
	}
}

// NewCanvas allocates a uniformly black w x h canvas in the given mode.
func NewCanvas(mode ColorMode, w, h int) draw.Image {
	if mode == ModeGray {
		return image.NewGray(image.Rect(0, 0, w, h))
	}
	return imaging.New(w, h, color.NRGBA{0, 0, 0, 255})
}
