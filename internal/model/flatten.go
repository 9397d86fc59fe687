package model

// FlatWindow is a window with a path breadcrumb instead of children.
type FlatWindow struct {
	ID          WindowID                 `yaml:"id"                   json:"id"`
	Title       string                   `yaml:"title,omitempty"      json:"title,omitempty"`
	DisplayName string                   `yaml:"display_name"         json:"display_name"`
	Depth       int                      `yaml:"depth"                json:"depth"`
	Path        string                   `yaml:"path"                 json:"path"`
	Attributes  Fields                   `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Geometry    Fields                   `yaml:"geometry,omitempty"   json:"geometry,omitempty"`
	Properties  map[string]PropertyValue `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// FlattenWindows converts a window tree into a flat pre-order list.
// Each window gets a path of ancestor ids joined with " > ".
func FlattenWindows(root *WindowNode) []FlatWindow {
	var result []FlatWindow
	if root != nil {
		flattenRecursive(root, "", &result)
	}
	return result
}

func flattenRecursive(n *WindowNode, parentPath string, result *[]FlatWindow) {
	currentPath := n.ID.String()
	if parentPath != "" {
		currentPath = parentPath + " > " + currentPath
	}

	*result = append(*result, FlatWindow{
		ID:          n.ID,
		Title:       n.Title,
		DisplayName: n.DisplayName,
		Depth:       n.Depth,
		Path:        currentPath,
		Attributes:  n.Attributes,
		Geometry:    n.Geometry,
		Properties:  n.Properties,
	})

	for _, child := range n.Children {
		flattenRecursive(child, currentPath, result)
	}
}
