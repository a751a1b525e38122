package main

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Tapetovac/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pano.jpg")
	require.NoError(t, imaging.Save(imaging.New(3840, 960, color.White), path))

	var buf bytes.Buffer
	require.NoError(t, report(&buf, path, config.Default()))

	assert.Contains(t, buf.String(), "Dimensions: 3840x960")
	assert.Contains(t, buf.String(), "Layout: width-bound, scaled to 1920x480 at (0,360)")
	assert.Contains(t, buf.String(), "pano-resized.jpg")
}

func TestReport_Missing(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, report(&buf, filepath.Join(t.TempDir(), "none.jpg"), config.Default()))
}
