//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !darwin && !windows

package trash

type unsupportedOS struct{}

func getTrasher() Trasher {
	return unsupportedOS{}
}

func (unsupportedOS) Trash(string) error {
	return ErrUnsupported
}
