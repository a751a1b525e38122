//go:build darwin

package trash

import (
	"fmt"
	"os"
	"path/filepath"
)

// macOS implements the trash for macOS by moving files into ~/.Trash.
type macOS struct{}

func getTrasher() Trasher {
	return &macOS{}
}

func (m *macOS) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	trashDir := filepath.Join(home, ".Trash")
	if err := os.MkdirAll(trashDir, 0700); err != nil {
		return err
	}

	base := filepath.Base(abs)
	for n := 1; n <= maxNameAttempts; n++ {
		target := filepath.Join(trashDir, candidateName(base, n))
		if _, err := os.Lstat(target); err == nil {
			continue
		}
		// Files on other volumes fail with EXDEV; Finder would use that
		// volume's .Trashes, which needs elevated access.
		return os.Rename(abs, target)
	}
	return fmt.Errorf("no free name for %s in %s", base, trashDir)
}
