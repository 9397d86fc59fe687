package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mj1618/xtree/internal/model"
)

// TreeOptions controls text rendering of a window tree.
type TreeOptions struct {
	Style     Style
	Toggles   model.Toggles
	Highlight bool // style names and headers for a terminal
}

// metadataBlocks are the per-window sections, in print order.
var metadataBlocks = []struct {
	category model.Category
	entries  func(*model.WindowNode) map[string]string
}{
	{model.CategoryAttributes, func(n *model.WindowNode) map[string]string { return fieldStrings(n.Attributes) }},
	{model.CategoryGeometry, func(n *model.WindowNode) map[string]string { return fieldStrings(n.Geometry) }},
	{model.CategoryProperties, func(n *model.WindowNode) map[string]string { return propertyStrings(n.Properties) }},
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Faint(true)
)

type treeRenderer struct {
	opts   TreeOptions
	glyphs Glyphs
	pad    string
	lines  []string
}

// RenderTree draws root and its descendants, one line per window followed
// by its enabled metadata blocks. Lines are joined with "\n" and carry no
// trailing newline.
func RenderTree(root *model.WindowNode, opts TreeOptions) string {
	glyphs := opts.Style.Glyphs()
	r := &treeRenderer{
		opts:   opts,
		glyphs: glyphs,
		pad:    strings.Repeat(" ", runewidth.StringWidth(glyphs.Vertical)),
	}
	if root != nil {
		r.visit(root, "", "")
	}
	return strings.Join(r.lines, "\n")
}

// WriteTree writes the rendered tree and a final newline to w.
func WriteTree(w io.Writer, root *model.WindowNode, opts TreeOptions) error {
	if _, err := fmt.Fprintln(w, RenderTree(root, opts)); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// PrintTree writes the rendered tree to stdout.
func PrintTree(root *model.WindowNode, opts TreeOptions) error {
	return WriteTree(os.Stdout, root, opts)
}

// visit emits n and its subtree. prefix leads the window's own line; fill
// leads every other line that belongs to n.
func (r *treeRenderer) visit(n *model.WindowNode, prefix, fill string) {
	r.lines = append(r.lines, prefix+r.styled(nameStyle, n.DisplayName))

	indent := fill
	if len(n.Children) > 0 {
		indent += r.glyphs.Vertical
	}
	for _, block := range metadataBlocks {
		if !r.opts.Toggles.Enabled(block.category) {
			continue
		}
		entries := block.entries(n)
		if len(entries) == 0 {
			continue
		}
		r.lines = append(r.lines, indent+r.styled(headerStyle, capitalize(string(block.category))+":"))
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			r.lines = append(r.lines, indent+r.pad+k+": "+entries[k])
		}
	}

	for i, child := range n.Children {
		if i == len(n.Children)-1 {
			r.visit(child, fill+r.glyphs.Last, fill+r.glyphs.Blank)
		} else {
			r.visit(child, fill+r.glyphs.Branch, fill+r.glyphs.Vertical)
		}
	}
}

func (r *treeRenderer) styled(style lipgloss.Style, s string) string {
	if !r.opts.Highlight {
		return s
	}
	return style.Render(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func fieldStrings(fields model.Fields) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func propertyStrings(props map[string]model.PropertyValue) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v.String()
	}
	return out
}
