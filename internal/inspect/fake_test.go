package inspect

import (
	"encoding/binary"
	"errors"
	"io"
	"log/slog"

	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

var errNoSuchAtom = errors.New("BadAtom")

// fakeDirectory is an in-memory window server. InternAtom creates unknown
// atoms like a real server does; every call is counted.
type fakeDirectory struct {
	atoms    map[string]platform.Atom
	names    map[platform.Atom]string
	nextAtom platform.Atom

	propOrder map[model.WindowID][]platform.Atom
	props     map[model.WindowID]map[platform.Atom]*platform.PropertyReply
	children  map[model.WindowID][]model.WindowID
	attrs     map[model.WindowID]model.Fields
	geometry  map[model.WindowID]model.Fields
	root      model.WindowID

	fail        map[string]error
	calls       map[string]int
	internCalls map[string]int
	nameCalls   map[platform.Atom]int
}

func newFakeDirectory() *fakeDirectory {
	f := &fakeDirectory{
		atoms:       make(map[string]platform.Atom),
		names:       make(map[platform.Atom]string),
		nextAtom:    300,
		propOrder:   make(map[model.WindowID][]platform.Atom),
		props:       make(map[model.WindowID]map[platform.Atom]*platform.PropertyReply),
		children:    make(map[model.WindowID][]model.WindowID),
		attrs:       make(map[model.WindowID]model.Fields),
		geometry:    make(map[model.WindowID]model.Fields),
		root:        1,
		fail:        make(map[string]error),
		calls:       make(map[string]int),
		internCalls: make(map[string]int),
		nameCalls:   make(map[platform.Atom]int),
	}
	for name, atom := range map[string]platform.Atom{
		"ATOM":     platform.AtomAtom,
		"CARDINAL": platform.AtomCardinal,
		"INTEGER":  platform.AtomInteger,
		"STRING":   platform.AtomString,
		"WINDOW":   platform.AtomWindow,
		"WM_NAME":  platform.AtomWmName,
		"WM_CLASS": 67,
	} {
		f.atoms[name] = atom
		f.names[atom] = name
	}
	return f
}

func (f *fakeDirectory) atom(name string) platform.Atom {
	if a, ok := f.atoms[name]; ok {
		return a
	}
	a := f.nextAtom
	f.nextAtom++
	f.atoms[name] = a
	f.names[a] = name
	return a
}

func (f *fakeDirectory) call(op string) error {
	f.calls[op]++
	return f.fail[op]
}

func (f *fakeDirectory) InternAtom(name string) (platform.Atom, error) {
	f.internCalls[name]++
	if err := f.call("InternAtom"); err != nil {
		return 0, err
	}
	return f.atom(name), nil
}

func (f *fakeDirectory) AtomName(atom platform.Atom) (string, error) {
	f.nameCalls[atom]++
	if err := f.call("AtomName"); err != nil {
		return "", err
	}
	name, ok := f.names[atom]
	if !ok {
		return "", errNoSuchAtom
	}
	return name, nil
}

func (f *fakeDirectory) ListProperties(w model.WindowID) ([]platform.Atom, error) {
	if err := f.call("ListProperties"); err != nil {
		return nil, err
	}
	return f.propOrder[w], nil
}

func (f *fakeDirectory) GetProperty(w model.WindowID, property platform.Atom) (*platform.PropertyReply, error) {
	if err := f.call("GetProperty"); err != nil {
		return nil, err
	}
	if reply, ok := f.props[w][property]; ok {
		return reply, nil
	}
	return &platform.PropertyReply{}, nil
}

func (f *fakeDirectory) WindowAttributes(w model.WindowID) (model.Fields, error) {
	if err := f.call("WindowAttributes"); err != nil {
		return nil, err
	}
	return f.attrs[w], nil
}

func (f *fakeDirectory) WindowGeometry(w model.WindowID) (model.Fields, error) {
	if err := f.call("WindowGeometry"); err != nil {
		return nil, err
	}
	return f.geometry[w], nil
}

func (f *fakeDirectory) Children(w model.WindowID) ([]model.WindowID, error) {
	if err := f.call("Children"); err != nil {
		return nil, err
	}
	return f.children[w], nil
}

func (f *fakeDirectory) RootWindow() model.WindowID { return f.root }

func (f *fakeDirectory) Close() error { return nil }

// setProperty stores a raw property reply on w under the named atom.
func (f *fakeDirectory) setProperty(w model.WindowID, name, typeName string, format byte, value []byte) {
	var typ platform.Atom
	if typeName != "" {
		typ = f.atom(typeName)
	}
	f.setRawProperty(w, f.atom(name), typ, format, value)
}

func (f *fakeDirectory) setRawProperty(w model.WindowID, atom, typ platform.Atom, format byte, value []byte) {
	if f.props[w] == nil {
		f.props[w] = make(map[platform.Atom]*platform.PropertyReply)
	}
	if _, exists := f.props[w][atom]; !exists {
		f.propOrder[w] = append(f.propOrder[w], atom)
	}
	f.props[w][atom] = &platform.PropertyReply{Type: typ, Format: format, Value: value}
}

// addWindow registers w with a geometry and attribute set derived from its id.
func (f *fakeDirectory) addWindow(w model.WindowID, children ...model.WindowID) {
	f.children[w] = children
	f.attrs[w] = model.Fields{"map_state": byte(2), "class": uint16(1)}
	f.geometry[w] = model.Fields{"x": int16(w), "width": uint16(100 * w)}
}

func uint32s(vals ...uint32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[4*i:], v)
	}
	return b
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

