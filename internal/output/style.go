package output

import (
	"fmt"
	"strings"
)

// Style selects the glyph set used to draw tree branches.
type Style int

const (
	StyleCont Style = iota
	StyleASCII
	StyleContRound
	StyleDouble
)

// Glyphs are the four line-prefix pieces of a tree style. Blank has the
// same width as Vertical.
type Glyphs struct {
	Vertical string
	Branch   string
	Last     string
	Blank    string
}

var styles = []struct {
	style  Style
	name   string
	legacy string
	glyphs Glyphs
}{
	{StyleCont, "cont", "ContStyle", Glyphs{"│   ", "├── ", "└── ", "    "}},
	{StyleASCII, "ascii", "AsciiStyle", Glyphs{"|   ", "|-- ", "+-- ", "    "}},
	{StyleContRound, "cont-round", "ContRoundStyle", Glyphs{"│   ", "├── ", "╰── ", "    "}},
	{StyleDouble, "double", "DoubleStyle", Glyphs{"║   ", "╠══ ", "╚══ ", "    "}},
}

// Glyphs returns the glyph set of s. Unknown values fall back to StyleCont.
func (s Style) Glyphs() Glyphs {
	for _, st := range styles {
		if st.style == s {
			return st.glyphs
		}
	}
	return styles[0].glyphs
}

func (s Style) String() string {
	for _, st := range styles {
		if st.style == s {
			return st.name
		}
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// StyleNames lists the accepted --style values.
func StyleNames() []string {
	names := make([]string, len(styles))
	for i, st := range styles {
		names[i] = st.name
	}
	return names
}

// ParseStyle converts a style name to a Style. Both the short names
// (cont, ascii, cont-round, double) and the anytree class names
// (ContStyle, AsciiStyle, ...) are accepted, case-insensitively.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if strings.EqualFold(s, st.name) || strings.EqualFold(s, st.legacy) {
			return st.style, nil
		}
	}
	return StyleCont, fmt.Errorf("unknown style: %q (expected %s)", s, strings.Join(StyleNames(), ", "))
}
