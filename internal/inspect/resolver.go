package inspect

import (
	"log/slog"

	"github.com/mj1618/xtree/internal/platform"
)

// SymbolResolver caches atom lookups in both directions. Entries are
// never evicted; a run touches at most a few hundred atoms.
type SymbolResolver struct {
	dir    platform.Directory
	logger *slog.Logger
	byName map[string]platform.Atom
	byAtom map[platform.Atom]string
}

// NewSymbolResolver returns an empty resolver over dir.
func NewSymbolResolver(dir platform.Directory, logger *slog.Logger) *SymbolResolver {
	return &SymbolResolver{
		dir:    dir,
		logger: logger,
		byName: make(map[string]platform.Atom),
		byAtom: make(map[platform.Atom]string),
	}
}

// Atom returns the id for name, asking the directory on a cache miss.
func (r *SymbolResolver) Atom(name string) (platform.Atom, error) {
	if atom, ok := r.byName[name]; ok {
		return atom, nil
	}
	atom, err := r.dir.InternAtom(name)
	if err != nil {
		return 0, &ResolutionError{Name: name, Err: err}
	}
	r.logger.Debug("interned atom", "name", name, "atom", atom)
	r.store(name, atom)
	return atom, nil
}

// Name returns the name for atom, asking the directory on a cache miss.
func (r *SymbolResolver) Name(atom platform.Atom) (string, error) {
	if name, ok := r.byAtom[atom]; ok {
		return name, nil
	}
	name, err := r.dir.AtomName(atom)
	if err != nil {
		return "", &ResolutionError{Atom: atom, Err: err}
	}
	r.logger.Debug("resolved atom", "atom", atom, "name", name)
	r.store(name, atom)
	return name, nil
}

func (r *SymbolResolver) store(name string, atom platform.Atom) {
	r.byName[name] = atom
	r.byAtom[atom] = name
}
