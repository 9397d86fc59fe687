package inspect

import (
	"github.com/mj1618/xtree/internal/model"
)

// Unlimited disables the depth bound in BuildOptions.MaxDepth.
const Unlimited = -1

// BuildOptions controls a tree walk.
type BuildOptions struct {
	Recurse  bool
	MaxDepth int // negative = unlimited; 0 builds the start window only
	Toggles  model.Toggles
}

// Build constructs the tree rooted at window id. Any failed fetch aborts
// the whole walk; no partial tree is returned.
func (s *Session) Build(id model.WindowID, opts BuildOptions) (*model.WindowNode, error) {
	return s.build(id, nil, opts)
}

func (s *Session) build(id model.WindowID, parent *model.WindowNode, opts BuildOptions) (*model.WindowNode, error) {
	if _, seen := s.nodes[id]; seen {
		return nil, &RevisitError{Window: id}
	}

	preferred, legacy, err := s.windowNames(id, opts.Toggles.Enabled(model.CategoryNames))
	if err != nil {
		return nil, err
	}
	attributes, err := s.windowAttributes(id, opts.Toggles.Enabled(model.CategoryAttributes))
	if err != nil {
		return nil, err
	}
	geometry, err := s.windowGeometry(id, opts.Toggles.Enabled(model.CategoryGeometry))
	if err != nil {
		return nil, err
	}
	properties, err := s.windowProperties(id, opts.Toggles.Enabled(model.CategoryProperties))
	if err != nil {
		return nil, err
	}

	node := model.NewWindowNode(id, parent)
	node.Attributes = attributes
	node.Geometry = geometry
	node.Properties = properties
	node.SetTitle(preferredTitle(preferred, legacy))
	s.nodes[id] = node
	s.logger.Debug("built window", "window", id, "depth", node.Depth, "title", node.Title)

	if !opts.Recurse || (opts.MaxDepth >= 0 && node.Depth >= opts.MaxDepth) {
		return node, nil
	}

	children, err := s.dir.Children(id)
	if err != nil {
		return nil, &DirectoryError{Op: "QueryTree", Window: id, Err: err}
	}
	for _, child := range children {
		if _, err := s.build(child, node, opts); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// preferredTitle picks the first non-empty name, preferring _NET_WM_NAME.
func preferredTitle(preferred, legacy model.PropertyValue) string {
	for _, v := range []model.PropertyValue{preferred, legacy} {
		if v.IsAbsent() {
			continue
		}
		if s := v.String(); s != "" {
			return s
		}
	}
	return ""
}
