// Command check_layout prints where tapetovac would place each given image
// on the wallpaper canvas without writing anything.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/dixieflatline76/Tapetovac/config"
	"github.com/dixieflatline76/Tapetovac/pkg/wallpaper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: check_layout picture.jpg [more.jpg ...]")
		os.Exit(2)
	}

	cfg := config.Default()
	failed := false
	for _, path := range os.Args[1:] {
		if err := report(os.Stdout, path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func report(w io.Writer, path string, cfg config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Only the header is read.
	imgCfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return err
	}

	layout, err := wallpaper.Plan(imgCfg.Width, imgCfg.Height, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintf(w, "Dimensions: %dx%d\n", imgCfg.Width, imgCfg.Height)
	fmt.Fprintf(w, "Canvas: %dx%d (net height %d)\n", cfg.FinalWidth, cfg.FinalHeight, cfg.NetHeight())
	fmt.Fprintf(w, "Layout: %s, scaled to %dx%d at (%d,%d)\n",
		layout.Branch, layout.Size.X, layout.Size.Y, layout.Offset.X, layout.Offset.Y)
	fmt.Fprintf(w, "Output: %s\n", wallpaper.ResizedPath(path, cfg.ResizedSuffix))
	return nil
}
