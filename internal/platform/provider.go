package platform

import (
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when no windowing backend is registered.
var ErrUnsupported = fmt.Errorf("xtree has no windowing backend for %s/%s", runtime.GOOS, runtime.GOARCH)

// NewDirectoryFunc is set by backend packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewDirectoryFunc func(display string) (Directory, error)

// NewDirectory opens a Directory on the given display. An empty display
// means the backend's default (e.g. $DISPLAY).
func NewDirectory(display string) (Directory, error) {
	if NewDirectoryFunc == nil {
		return nil, ErrUnsupported
	}
	return NewDirectoryFunc(display)
}
