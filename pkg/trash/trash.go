// Package trash moves files to the platform's recoverable trash or recycle bin.
package trash

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned on platforms without a known trash location.
var ErrUnsupported = errors.New("trash is not supported on this platform")

// maxNameAttempts bounds the search for a free name inside a trash directory.
const maxNameAttempts = 10000

// Trasher moves a file to the trash.
type Trasher interface {
	Trash(path string) error
}

// New returns the trash service for the running platform.
func New() Trasher {
	return getTrasher()
}

// candidateName returns the n-th name tried for base inside a trash
// directory: "photo.jpg", "photo 2.jpg", "photo 3.jpg", ...
func candidateName(base string, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s %d%s", stem, n, ext)
}
