// Package config holds the immutable settings for a tapetovac run.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Validate for settings that cannot produce a canvas.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes the target canvas and what happens to converted originals.
// It is built once in main and passed by value.
type Config struct {
	FinalWidth       int    // canvas width
	FinalHeight      int    // canvas height
	BottomPadding    int    // band kept free at the bottom of the canvas
	ResizedSuffix    string // appended to the stem of every output file
	TrashAfterResize bool
	Quality          int // JPEG quality, 1-100
}

// Default returns the standard 1920x1200 wallpaper settings.
func Default() Config {
	return Config{
		FinalWidth:    DefaultFinalWidth,
		FinalHeight:   DefaultFinalHeight,
		BottomPadding: DefaultBottomPadding,
		ResizedSuffix: DefaultResizedSuffix,
		Quality:       DefaultQuality,
	}
}

// NetHeight is the vertical space available for image content.
func (c Config) NetHeight() int {
	return c.FinalHeight - c.BottomPadding
}

// WithTrash returns a copy of c with TrashAfterResize set to trash.
func (c Config) WithTrash(trash bool) Config {
	c.TrashAfterResize = trash
	return c
}

// Validate checks that c describes a usable canvas.
func (c Config) Validate() error {
	switch {
	case c.FinalWidth <= 0 || c.FinalHeight <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.FinalWidth, c.FinalHeight)
	case c.BottomPadding < 0 || c.BottomPadding >= c.FinalHeight:
		return fmt.Errorf("%w: bottom padding %d for height %d", ErrInvalidConfig, c.BottomPadding, c.FinalHeight)
	case c.ResizedSuffix == "":
		return fmt.Errorf("%w: empty resized suffix", ErrInvalidConfig)
	case strings.ContainsAny(c.ResizedSuffix, `/\`):
		return fmt.Errorf("%w: resized suffix %q contains a path separator", ErrInvalidConfig, c.ResizedSuffix)
	case c.Quality < 1 || c.Quality > 100:
		return fmt.Errorf("%w: quality %d", ErrInvalidConfig, c.Quality)
	}
	return nil
}
