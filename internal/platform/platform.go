package platform

import "github.com/mj1618/xtree/internal/model"

// Directory is a request/reply session with a windowing server. Every call
// blocks until the server replies.
type Directory interface {
	// InternAtom resolves an atom name to its id.
	InternAtom(name string) (Atom, error)

	// AtomName resolves an atom id to its name.
	AtomName(atom Atom) (string, error)

	// ListProperties returns the atoms of all properties set on a window.
	ListProperties(w model.WindowID) ([]Atom, error)

	// GetProperty fetches the full value of one property, accepting any type.
	GetProperty(w model.WindowID, property Atom) (*PropertyReply, error)

	WindowAttributes(w model.WindowID) (model.Fields, error)
	WindowGeometry(w model.WindowID) (model.Fields, error)

	// Children returns the direct children of a window in stacking order.
	Children(w model.WindowID) ([]model.WindowID, error)

	// RootWindow returns the root window of the default screen.
	RootWindow() model.WindowID

	Close() error
}
