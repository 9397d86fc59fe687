package inspect

import (
	"errors"
	"testing"

	"github.com/mj1618/xtree/internal/platform"
)

func TestSymbolResolver_Symmetry(t *testing.T) {
	dir := newFakeDirectory()
	r := NewSymbolResolver(dir, testLogger())

	for _, name := range []string{"_NET_WM_NAME", "UTF8_STRING", "WM_CLASS"} {
		atom, err := r.Atom(name)
		if err != nil {
			t.Fatalf("Atom(%q): %v", name, err)
		}
		back, err := r.Name(atom)
		if err != nil {
			t.Fatalf("Name(%d): %v", atom, err)
		}
		if back != name {
			t.Errorf("Name(Atom(%q)) = %q", name, back)
		}
	}
	if dir.calls["AtomName"] != 0 {
		t.Errorf("reverse lookups of interned atoms should hit the cache, got %d AtomName calls", dir.calls["AtomName"])
	}
}

func TestSymbolResolver_OneCallPerPair(t *testing.T) {
	dir := newFakeDirectory()
	r := NewSymbolResolver(dir, testLogger())

	for i := 0; i < 5; i++ {
		if _, err := r.Atom("_NET_WM_PID"); err != nil {
			t.Fatal(err)
		}
		if _, err := r.Name(platform.AtomCardinal); err != nil {
			t.Fatal(err)
		}
	}
	if got := dir.internCalls["_NET_WM_PID"]; got != 1 {
		t.Errorf("InternAtom(_NET_WM_PID) called %d times, want 1", got)
	}
	if got := dir.nameCalls[platform.AtomCardinal]; got != 1 {
		t.Errorf("AtomName(CARDINAL) called %d times, want 1", got)
	}

	// The reverse direction of a name lookup is cached as well.
	atom, _ := r.Atom("CARDINAL")
	if atom != platform.AtomCardinal {
		t.Errorf("Atom(CARDINAL) = %d, want %d", atom, platform.AtomCardinal)
	}
	if got := dir.internCalls["CARDINAL"]; got != 0 {
		t.Errorf("InternAtom(CARDINAL) called %d times, want 0", got)
	}
}

func TestSymbolResolver_UnknownAtom(t *testing.T) {
	dir := newFakeDirectory()
	r := NewSymbolResolver(dir, testLogger())

	_, err := r.Name(9999)
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if resErr.Atom != 9999 {
		t.Errorf("ResolutionError.Atom = %d, want 9999", resErr.Atom)
	}
	if !errors.Is(err, errNoSuchAtom) {
		t.Errorf("ResolutionError should wrap the directory error, got %v", err)
	}
}

func TestSymbolResolver_DirectoryFailure(t *testing.T) {
	dir := newFakeDirectory()
	dir.fail["InternAtom"] = errors.New("connection closed")
	r := NewSymbolResolver(dir, testLogger())

	_, err := r.Atom("WM_STATE")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if resErr.Name != "WM_STATE" {
		t.Errorf("ResolutionError.Name = %q, want WM_STATE", resErr.Name)
	}
	if dir.internCalls["WM_STATE"] != 1 {
		t.Errorf("failed resolution should not be retried, got %d calls", dir.internCalls["WM_STATE"])
	}
}
