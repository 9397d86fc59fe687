package inspect

import (
	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

const atomNetWMName = "_NET_WM_NAME"

// windowNames returns the EWMH name and the ICCCM WM_NAME of w.
func (s *Session) windowNames(w model.WindowID, enabled bool) (preferred, legacy model.PropertyValue, err error) {
	if !enabled {
		return model.Absent(), model.Absent(), nil
	}
	netName, err := s.symbols.Atom(atomNetWMName)
	if err != nil {
		return model.Absent(), model.Absent(), err
	}
	if _, preferred, err = s.decoder.Decode(w, netName); err != nil {
		return model.Absent(), model.Absent(), err
	}
	if _, legacy, err = s.decoder.Decode(w, platform.AtomWmName); err != nil {
		return model.Absent(), model.Absent(), err
	}
	return preferred, legacy, nil
}

// windowProperties decodes every property set on w, keyed by atom name.
func (s *Session) windowProperties(w model.WindowID, enabled bool) (map[string]model.PropertyValue, error) {
	properties := make(map[string]model.PropertyValue)
	if !enabled {
		return properties, nil
	}
	atoms, err := s.dir.ListProperties(w)
	if err != nil {
		return nil, &DirectoryError{Op: "ListProperties", Window: w, Err: err}
	}
	for _, atom := range atoms {
		name, value, err := s.decoder.Decode(w, atom)
		if err != nil {
			return nil, err
		}
		properties[name] = value
	}
	return properties, nil
}

func (s *Session) windowAttributes(w model.WindowID, enabled bool) (model.Fields, error) {
	if !enabled {
		return model.Fields{}, nil
	}
	fields, err := s.dir.WindowAttributes(w)
	if err != nil {
		return nil, &DirectoryError{Op: "GetWindowAttributes", Window: w, Err: err}
	}
	return fields, nil
}

func (s *Session) windowGeometry(w model.WindowID, enabled bool) (model.Fields, error) {
	if !enabled {
		return model.Fields{}, nil
	}
	fields, err := s.dir.WindowGeometry(w)
	if err != nil {
		return nil, &DirectoryError{Op: "GetGeometry", Window: w, Err: err}
	}
	return fields, nil
}
