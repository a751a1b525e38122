//go:build linux || freebsd || netbsd || openbsd || dragonfly

package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

const trashInfoTimeFormat = "2006-01-02T15:04:05"

// xdgTrash implements the freedesktop.org trash specification.
type xdgTrash struct {
	now func() time.Time
}

func getTrasher() Trasher {
	return &xdgTrash{now: time.Now}
}

// Trash moves path into the home trash when it lives on the same device,
// and into the volume's .Trash-$uid directory otherwise.
func (x *xdgTrash) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	fileDev, err := device(abs)
	if err != nil {
		return fmt.Errorf("stat %s: %w", abs, err)
	}

	home, err := homeTrashDir()
	if err != nil {
		return err
	}
	homeDev, err := nearestDevice(home)
	if err != nil {
		return fmt.Errorf("stat %s: %w", home, err)
	}
	if fileDev == homeDev {
		return x.moveTo(home, abs, abs)
	}

	topdir, err := mountPoint(abs, fileDev)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(topdir, abs)
	if err != nil {
		return err
	}
	return x.moveTo(filepath.Join(topdir, fmt.Sprintf(".Trash-%d", os.Getuid())), abs, rel)
}

// moveTo claims a .trashinfo record in trashDir, then renames abs into the
// files directory under the same name. recorded is the Path value written
// to the record.
func (x *xdgTrash) moveTo(trashDir, abs, recorded string) error {
	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		(&url.URL{Path: recorded}).EscapedPath(), x.now().Format(trashInfoTimeFormat))

	base := filepath.Base(abs)
	for n := 1; n <= maxNameAttempts; n++ {
		name := candidateName(base, n)
		infoPath := filepath.Join(infoDir, name+".trashinfo")

		f, err := os.OpenFile(infoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return err
		}

		target := filepath.Join(filesDir, name)
		if _, err := os.Lstat(target); err == nil {
			// Stale entry without a record; leave it alone.
			f.Close()
			os.Remove(infoPath)
			continue
		}

		_, werr := f.WriteString(info)
		cerr := f.Close()
		if err := errors.Join(werr, cerr); err != nil {
			os.Remove(infoPath)
			return err
		}

		if err := os.Rename(abs, target); err != nil {
			os.Remove(infoPath)
			return err
		}
		return nil
	}
	return fmt.Errorf("no free name for %s in %s", base, trashDir)
}

func homeTrashDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" || !filepath.IsAbs(dataHome) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "Trash"), nil
}

func device(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return uint64(st.Dev), nil
}

// nearestDevice returns the device of path or of its closest existing ancestor.
func nearestDevice(path string) (uint64, error) {
	for {
		dev, err := device(path)
		if err == nil || !errors.Is(err, unix.ENOENT) {
			return dev, err
		}
		parent := filepath.Dir(path)
		if parent == path {
			return 0, err
		}
		path = parent
	}
}

// mountPoint walks up from path while the parent stays on dev.
func mountPoint(path string, dev uint64) (string, error) {
	for {
		parent := filepath.Dir(path)
		if parent == path {
			return path, nil
		}
		parentDev, err := device(parent)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", parent, err)
		}
		if parentDev != dev {
			return path, nil
		}
		path = parent
	}
}
