package wallpaper

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// JPEGPattern selects batch candidates in a directory.
const JPEGPattern = "*.jpg"

// Codec errors
var (
	ErrDecode = errors.New("decoding image")
	ErrEncode = errors.New("encoding image")
)

// ResizedPath returns the output path for path: the same directory, the stem
// with suffix appended, and a .jpg extension.
func ResizedPath(path, suffix string) string {
	dir, name := filepath.Split(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, stem+suffix+".jpg")
}

// IsAlreadyConverted reports whether path is itself an output file or already
// has an output sibling on disk.
func IsAlreadyConverted(path, suffix string) bool {
	name := filepath.Base(path)
	if strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), suffix) {
		return true
	}
	_, err := os.Stat(ResizedPath(path, suffix))
	return err == nil
}

// FileManager handles all file system operations for source and output images.
type FileManager struct {
	suffix  string
	quality int
}

// NewFileManager creates a FileManager writing outputs with the given suffix and JPEG quality.
func NewFileManager(suffix string, quality int) *FileManager {
	return &FileManager{
		suffix:  suffix,
		quality: quality,
	}
}

// ResizedPath returns the output path for a source.
func (fm *FileManager) ResizedPath(path string) string {
	return ResizedPath(path, fm.suffix)
}

// IsAlreadyConverted reports whether a source needs no processing.
func (fm *FileManager) IsAlreadyConverted(path string) bool {
	return IsAlreadyConverted(path, fm.suffix)
}

// ListJPEGs returns the files in dir matching JPEGPattern, sorted by name.
// Subdirectories are not descended into.
func (fm *FileManager) ListJPEGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(JPEGPattern, entry.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Symlinks are followed like any other file.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// Decode reads and decodes the image at path. The file is closed before returning.
func (fm *FileManager) Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// Encode writes img to dst as a JPEG.
//
// The data goes to a hidden temporary file in the same directory which is
// renamed over dst only once fully written, so a failed run never leaves a
// partial output that a later run would treat as converted.
func (fm *FileManager) Encode(img image.Image, dst string) (err error) {
	dir, name := filepath.Split(dst)
	tmpPath := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(fm.quality)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, dst, err)
	}
	if err = os.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
