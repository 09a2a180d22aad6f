//go:build windows

package layout

import (
	"context"
	"errors"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// klNameLength is KL_NAMELENGTH from winuser.h, terminator included.
const klNameLength = 9

var (
	moduser32                  = windows.NewLazySystemDLL("user32.dll")
	procGetKeyboardLayoutNameW = moduser32.NewProc("GetKeyboardLayoutNameW")
)

type win32Backend struct{}

func (win32Backend) CurrentLayoutID(ctx context.Context) (string, error) {
	if err := procGetKeyboardLayoutNameW.Find(); err != nil {
		return "", queryFailure("win32", err)
	}

	// The input locale is attached to the calling thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var buf [klNameLength]uint16
	r1, _, e1 := procGetKeyboardLayoutNameW.Call(uintptr(unsafe.Pointer(&buf[0])))
	if r1 == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return "", queryFailure("win32", errno)
		}
		return "", queryFailure("win32", errors.New("GetKeyboardLayoutNameW returned FALSE"))
	}
	return windows.UTF16ToString(buf[:]), nil
}

func init() {
	Register("win32", 0, func() Querier { return win32Backend{} })
}
