package wallpaper

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Tapetovac/config"
	"github.com/dixieflatline76/Tapetovac/util/log"
	"golang.org/x/image/draw"
)

// ErrDegenerateSize is returned when a source cannot be scaled to a non-empty image.
var ErrDegenerateSize = errors.New("degenerate image size")

// Branch tells which canvas dimension bounds the scale factor.
type Branch int

// Branch constants
const (
	HeightBound Branch = iota // scaled to the net height, centered horizontally
	WidthBound                // scaled to the canvas width, centered vertically
)

func (b Branch) String() string {
	switch b {
	case HeightBound:
		return "height-bound"
	case WidthBound:
		return "width-bound"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Layout is the placement of a scaled source on the canvas.
type Layout struct {
	Branch Branch
	Size   image.Point // scaled source dimensions
	Offset image.Point // top-left corner on the canvas
}

// Plan computes where a srcW x srcH image lands on the canvas described by cfg.
//
// The scaled width for the net height is truncated after a float division, and
// only a width strictly greater than the canvas width switches to the
// width-bound layout. An exact fit stays height-bound.
func Plan(srcW, srcH int, cfg config.Config) (Layout, error) {
	if srcW <= 0 || srcH <= 0 {
		return Layout{}, fmt.Errorf("%w: source %dx%d", ErrDegenerateSize, srcW, srcH)
	}

	netHeight := cfg.NetHeight()
	widthForRequiredHeight := int(float64(srcW) * (float64(netHeight) / float64(srcH)))

	if widthForRequiredHeight > cfg.FinalWidth {
		heightForFinalWidth := int(float64(srcH) * (float64(cfg.FinalWidth) / float64(srcW)))
		if heightForFinalWidth <= 0 {
			return Layout{}, fmt.Errorf("%w: %dx%d scales to zero height", ErrDegenerateSize, srcW, srcH)
		}
		return Layout{
			Branch: WidthBound,
			Size:   image.Pt(cfg.FinalWidth, heightForFinalWidth),
			Offset: image.Pt(0, (cfg.FinalHeight-heightForFinalWidth)/2),
		}, nil
	}

	if widthForRequiredHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d scales to zero width", ErrDegenerateSize, srcW, srcH)
	}
	return Layout{
		Branch: HeightBound,
		Size:   image.Pt(widthForRequiredHeight, netHeight),
		Offset: image.Pt((cfg.FinalWidth-widthForRequiredHeight)/2, 0),
	}, nil
}

// Fit scales src into the canvas described by cfg and returns the canvas.
// The canvas is always exactly FinalWidth x FinalHeight and shares the
// source's colour mode.
func Fit(src image.Image, cfg config.Config) (image.Image, Layout, error) {
	b := src.Bounds()
	layout, err := Plan(b.Dx(), b.Dy(), cfg)
	if err != nil {
		return nil, Layout{}, err
	}
	log.Debugf("Fit: %dx%d is %s, scaled to %dx%d at %v",
		b.Dx(), b.Dy(), layout.Branch, layout.Size.X, layout.Size.Y, layout.Offset)

	resized := imaging.Resize(src, layout.Size.X, layout.Size.Y, imaging.Lanczos)

	canvas := NewCanvas(ColorModeOf(src), cfg.FinalWidth, cfg.FinalHeight)
	draw.Copy(canvas, layout.Offset, resized, resized.Bounds(), draw.Src, nil)

	return canvas, layout, nil
}
