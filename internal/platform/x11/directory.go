package x11

import (
	"fmt"
	"math"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

// Directory is a platform.Directory backed by one X connection.
type Directory struct {
	conn *xgb.Conn
	root xproto.Window
}

// Open connects to display ("" uses $DISPLAY).
func Open(display string) (*Directory, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display %q: %w", display, err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &Directory{conn: conn, root: screen.Root}, nil
}

func (d *Directory) InternAtom(name string) (platform.Atom, error) {
	reply, err := xproto.InternAtom(d.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("InternAtom %q: %w", name, err)
	}
	return platform.Atom(reply.Atom), nil
}

func (d *Directory) AtomName(atom platform.Atom) (string, error) {
	reply, err := xproto.GetAtomName(d.conn, xproto.Atom(atom)).Reply()
	if err != nil {
		return "", fmt.Errorf("GetAtomName %d: %w", atom, err)
	}
	return reply.Name, nil
}

func (d *Directory) ListProperties(w model.WindowID) ([]platform.Atom, error) {
	reply, err := xproto.ListProperties(d.conn, xproto.Window(w)).Reply()
	if err != nil {
		return nil, fmt.Errorf("ListProperties %d: %w", w, err)
	}
	atoms := make([]platform.Atom, len(reply.Atoms))
	for i, a := range reply.Atoms {
		atoms[i] = platform.Atom(a)
	}
	return atoms, nil
}

// GetProperty reads the whole value: offset 0, length 2^32-1 (in 32-bit units).
func (d *Directory) GetProperty(w model.WindowID, property platform.Atom) (*platform.PropertyReply, error) {
	reply, err := xproto.GetProperty(d.conn, false, xproto.Window(w), xproto.Atom(property),
		xproto.GetPropertyTypeAny, 0, math.MaxUint32).Reply()
	if err != nil {
		return nil, fmt.Errorf("GetProperty %d on window %d: %w", property, w, err)
	}
	return &platform.PropertyReply{
		Type:   platform.Atom(reply.Type),
		Format: reply.Format,
		Value:  reply.Value,
	}, nil
}

func (d *Directory) WindowAttributes(w model.WindowID) (model.Fields, error) {
	reply, err := xproto.GetWindowAttributes(d.conn, xproto.Window(w)).Reply()
	if err != nil {
		return nil, fmt.Errorf("GetWindowAttributes %d: %w", w, err)
	}
	return attributeFields(reply), nil
}

func (d *Directory) WindowGeometry(w model.WindowID) (model.Fields, error) {
	reply, err := xproto.GetGeometry(d.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return nil, fmt.Errorf("GetGeometry %d: %w", w, err)
	}
	return geometryFields(reply), nil
}

func (d *Directory) Children(w model.WindowID) ([]model.WindowID, error) {
	reply, err := xproto.QueryTree(d.conn, xproto.Window(w)).Reply()
	if err != nil {
		return nil, fmt.Errorf("QueryTree %d: %w", w, err)
	}
	children := make([]model.WindowID, len(reply.Children))
	for i, c := range reply.Children {
		children[i] = model.WindowID(c)
	}
	return children, nil
}

func (d *Directory) RootWindow() model.WindowID {
	return model.WindowID(d.root)
}

func (d *Directory) Close() error {
	d.conn.Close()
	return nil
}
