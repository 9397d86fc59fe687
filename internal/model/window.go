package model

import (
	"fmt"
	"strconv"
)

// WindowID is an X window identifier. IDs are unique within one server
// session but not contiguous.
type WindowID uint32

func (id WindowID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseWindowID accepts a decimal id or a 0x-prefixed hex id (as printed by xwininfo).
func ParseWindowID(s string) (WindowID, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return WindowID(v), nil
}

// Fields maps reply field names to their values (attributes, geometry).
type Fields map[string]interface{}

// WindowNode is one window in the inspected hierarchy.
type WindowNode struct {
	ID          WindowID                 `yaml:"id"                   json:"id"`
	Title       string                   `yaml:"title,omitempty"      json:"title,omitempty"`
	DisplayName string                   `yaml:"display_name"         json:"display_name"`
	Depth       int                      `yaml:"depth"                json:"depth"`
	Attributes  Fields                   `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Geometry    Fields                   `yaml:"geometry,omitempty"   json:"geometry,omitempty"`
	Properties  map[string]PropertyValue `yaml:"properties,omitempty" json:"properties,omitempty"`
	Parent      *WindowNode              `yaml:"-"                    json:"-"`
	Children    []*WindowNode            `yaml:"children,omitempty"   json:"children,omitempty"`
}

// NewWindowNode creates a node under parent (nil for the root) and links it
// into the parent's children. Depth is derived from the parent.
func NewWindowNode(id WindowID, parent *WindowNode) *WindowNode {
	n := &WindowNode{ID: id, Parent: parent}
	if parent != nil {
		n.Depth = parent.Depth + 1
		parent.Children = append(parent.Children, n)
	}
	return n
}

// SetTitle records the window's name and derives the display name from it.
// An empty title falls back to the bare window id.
func (n *WindowNode) SetTitle(title string) {
	n.Title = title
	if title == "" {
		n.DisplayName = n.ID.String()
		return
	}
	n.DisplayName = fmt.Sprintf("%s: %s", n.ID, title)
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *WindowNode) Walk(fn func(*WindowNode) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
