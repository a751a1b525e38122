//go:build windows

package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SHFileOperationW constants
const (
	foDelete          = 0x0003
	fofSilent         = 0x0004
	fofNoConfirmation = 0x0010
	fofAllowUndo      = 0x0040
	fofNoErrorUI      = 0x0400
)

var procSHFileOperationW = windows.NewLazySystemDLL("shell32.dll").NewProc("SHFileOperationW")

// shFileOpStruct mirrors SHFILEOPSTRUCTW on 64-bit Windows.
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

// windowsOS sends files to the Recycle Bin through the shell.
type windowsOS struct{}

func getTrasher() Trasher {
	return &windowsOS{}
}

func (w *windowsOS) Trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(abs); err != nil {
		return err
	}
	if err := procSHFileOperationW.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	from, err := windows.UTF16FromString(abs)
	if err != nil {
		return err
	}
	// pFrom is a list of names terminated by an extra NUL.
	from = append(from, 0)

	op := shFileOpStruct{
		wFunc:  foDelete,
		pFrom:  &from[0],
		fFlags: fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI,
	}
	ret, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return fmt.Errorf("SHFileOperationW on %s failed with code %#x", abs, ret)
	}
	if op.fAnyOperationsAborted != 0 {
		return fmt.Errorf("recycling %s was aborted", abs)
	}
	return nil
}
