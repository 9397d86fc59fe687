package inspect

import (
	"fmt"

	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

// ResolutionError reports an atom that could not be resolved in either
// direction. Exactly one of Name or Atom identifies the request.
type ResolutionError struct {
	Name string
	Atom platform.Atom
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("resolve atom %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("resolve atom %d: %v", e.Atom, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DirectoryError reports a failed directory call for a window.
type DirectoryError struct {
	Op     string
	Window model.WindowID
	Err    error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%s on window %d: %v", e.Op, e.Window, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// RevisitError reports a window id reached twice in one walk. The server
// hierarchy is a tree, so this means the reply data is inconsistent.
type RevisitError struct {
	Window model.WindowID
}

func (e *RevisitError) Error() string {
	return fmt.Sprintf("window %d visited twice", e.Window)
}
