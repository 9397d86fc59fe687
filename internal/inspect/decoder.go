package inspect

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

const atomUTF8String = "UTF8_STRING"

// Decoder fetches property values and decodes them by the type the server
// declares in its reply.
type Decoder struct {
	dir     platform.Directory
	symbols *SymbolResolver
}

// NewDecoder returns a Decoder that resolves names through symbols.
func NewDecoder(dir platform.Directory, symbols *SymbolResolver) *Decoder {
	return &Decoder{dir: dir, symbols: symbols}
}

// Decode fetches property on window w and returns its name and value.
// Types without a decoder produce an Unresolved marker instead of an error.
func (d *Decoder) Decode(w model.WindowID, property platform.Atom) (string, model.PropertyValue, error) {
	name, err := d.symbols.Name(property)
	if err != nil {
		return "", model.Absent(), err
	}
	reply, err := d.dir.GetProperty(w, property)
	if err != nil {
		return name, model.Absent(), &DirectoryError{Op: "GetProperty " + name, Window: w, Err: err}
	}
	if len(reply.Value) == 0 {
		return name, model.Absent(), nil
	}
	value, err := d.decodeReply(reply)
	if err != nil {
		return name, model.Absent(), err
	}
	return name, value, nil
}

func (d *Decoder) decodeReply(reply *platform.PropertyReply) (model.PropertyValue, error) {
	switch reply.Type {
	case platform.AtomAtom:
		ids := unpackUint32s(reply.Value, 32)
		names := make([]string, len(ids))
		for i, id := range ids {
			name, err := d.symbols.Name(platform.Atom(id))
			if err != nil {
				return model.Absent(), err
			}
			names[i] = name
		}
		return model.NameList(names), nil
	case platform.AtomString:
		return model.NameList(splitStrings(reply.Value)), nil
	case platform.AtomCardinal, platform.AtomInteger, platform.AtomWindow:
		return model.NumberList(unpackUint32s(reply.Value, reply.Format)), nil
	}

	utf8, err := d.symbols.Atom(atomUTF8String)
	if err != nil {
		return model.Absent(), err
	}
	if reply.Type == utf8 {
		return model.NameList(splitStrings(reply.Value)), nil
	}
	return d.fallback(reply.Type)
}

// fallback names the undecodable type, or marks the payload as binary when
// the reply carries no type.
func (d *Decoder) fallback(typ platform.Atom) (model.PropertyValue, error) {
	if typ == platform.AtomNone {
		return model.Unresolved("<binary>"), nil
	}
	name, err := d.symbols.Name(typ)
	if err != nil {
		return model.Absent(), err
	}
	return model.Unresolved(fmt.Sprintf("<%s>", name)), nil
}

// splitStrings trims trailing NUL terminators and splits on NUL.
func splitStrings(b []byte) []string {
	b = bytes.TrimRight(b, "\x00")
	parts := bytes.Split(b, []byte{0})
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

// unpackUint32s reads little-endian items of the given bit width, widening
// each to uint32. Width defaults to 32 bits; a trailing partial item is dropped.
func unpackUint32s(b []byte, format byte) []uint32 {
	size := 4
	switch format {
	case 8:
		size = 1
	case 16:
		size = 2
	}
	out := make([]uint32, 0, len(b)/size)
	for i := 0; i+size <= len(b); i += size {
		switch size {
		case 1:
			out = append(out, uint32(b[i]))
		case 2:
			out = append(out, uint32(binary.LittleEndian.Uint16(b[i:])))
		default:
			out = append(out, binary.LittleEndian.Uint32(b[i:]))
		}
	}
	return out
}
