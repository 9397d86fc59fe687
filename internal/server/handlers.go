package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/xtree/internal/inspect"
	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/output"
	"github.com/mj1618/xtree/internal/platform"
	"gopkg.in/yaml.v3"
)

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	style, err := output.ParseStyle(stringParam(params, "style", "cont"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := output.ParseFormat(stringParam(params, "format", string(output.FormatText)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := inspect.BuildOptions{
		Recurse:  boolParam(params, "recurse", false),
		MaxDepth: intParam(params, "max-depth", inspect.Unlimited),
		Toggles:  toggleParams(params),
	}

	s.dirMu.Lock()
	defer s.dirMu.Unlock()

	id, err := windowParam(params, "window-id", s.dir.RootWindow())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	root, err := s.cache.Build(id, opts, func() (*model.WindowNode, error) {
		session := inspect.NewSession(s.dir, s.logger)
		root, err := session.Build(id, opts)
		if err == nil {
			s.logger.Debug("tree built", "window", id, "windows", session.Len())
		}
		return root, err
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := formatTree(root, format, output.TreeOptions{Style: style, Toggles: opts.Toggles})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func formatTree(root *model.WindowNode, format output.Format, opts output.TreeOptions) (string, error) {
	result := output.TreeResult{Root: root.ID, TS: time.Now().Unix(), Tree: root}
	switch format {
	case output.FormatYAML:
		b, err := yaml.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("yaml encode: %w", err)
		}
		return string(b), nil
	case output.FormatJSON:
		b, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("json encode: %w", err)
		}
		return string(b), nil
	default:
		return output.RenderTree(root, opts), nil
	}
}

// atomResult is the response of the atom tool.
type atomResult struct {
	Name string        `yaml:"name" json:"name"`
	Atom platform.Atom `yaml:"atom" json:"atom"`
}

func (s *Server) handleAtom(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	id := intParam(params, "id", -1)
	if (name == "") == (id < 0) {
		return mcp.NewToolResultError("exactly one of name or id is required"), nil
	}

	s.dirMu.Lock()
	defer s.dirMu.Unlock()

	symbols := inspect.NewSymbolResolver(s.dir, s.logger)
	result := atomResult{Name: name, Atom: platform.Atom(id)}
	var err error
	if name != "" {
		result.Atom, err = symbols.Atom(name)
	} else {
		result.Name, err = symbols.Name(result.Atom)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := yaml.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Parameter extraction helpers for tool arguments

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// windowParam accepts a window id as a JSON number or a decimal/hex string.
func windowParam(params map[string]interface{}, key string, defaultVal model.WindowID) (model.WindowID, error) {
	v, ok := params[key]
	if !ok {
		return defaultVal, nil
	}
	switch id := v.(type) {
	case string:
		if id == "" {
			return defaultVal, nil
		}
		return model.ParseWindowID(id)
	case float64:
		if id < 0 || id > float64(^uint32(0)) {
			return 0, fmt.Errorf("window id out of range: %v", id)
		}
		return model.WindowID(id), nil
	case int:
		return model.WindowID(id), nil
	default:
		return 0, fmt.Errorf("invalid window id: %v", v)
	}
}

// toggleParams records only the categories present in the arguments, so
// omitted categories stay enabled.
func toggleParams(params map[string]interface{}) model.Toggles {
	toggles := model.Toggles{}
	for _, c := range model.Categories {
		if on, ok := params[string(c)].(bool); ok {
			toggles[c] = on
		}
	}
	return toggles
}
