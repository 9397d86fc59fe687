package platform

// Atom is the numeric id of an interned name (property names, type names).
type Atom uint32

// Predefined atoms from the core X protocol.
const (
	AtomNone     Atom = 0
	AtomAtom     Atom = 4
	AtomCardinal Atom = 6
	AtomInteger  Atom = 19
	AtomString   Atom = 31
	AtomWindow   Atom = 33
	AtomWmName   Atom = 39
)

// PropertyReply is the raw answer to a property request. Type is the
// declared wire type; Format is the item width in bits (8, 16 or 32).
type PropertyReply struct {
	Type   Atom
	Format byte
	Value  []byte
}
