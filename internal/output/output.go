package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mj1618/xtree/internal/model"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// TreeResult is the top-level structured output of the `tree` command.
type TreeResult struct {
	Display string            `yaml:"display,omitempty" json:"display,omitempty"`
	Root    model.WindowID    `yaml:"root"              json:"root"`
	TS      int64             `yaml:"ts"                json:"ts"`
	Tree    *model.WindowNode `yaml:"tree"              json:"tree"`
}

// TreeFlatResult is the top-level structured output when --flat is used.
type TreeFlatResult struct {
	Display string             `yaml:"display,omitempty" json:"display,omitempty"`
	Root    model.WindowID     `yaml:"root"              json:"root"`
	TS      int64              `yaml:"ts"                json:"ts"`
	Windows []model.FlatWindow `yaml:"windows"           json:"windows"`
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// Print serializes v to stdout in the current structured output format.
// Text output is produced by PrintTree, not here.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
