package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/xtree/internal/inspect"
	"github.com/mj1618/xtree/internal/output"
	"github.com/mj1618/xtree/internal/platform"
	"github.com/spf13/cobra"
)

var atomCmd = &cobra.Command{
	Use:   "atom <name|id>...",
	Short: "Resolve atom names to ids and ids to names",
	Long: `Resolve X atoms. Numeric arguments are looked up by id, anything else
by name. Looking up a name the server does not know yet interns it.

Examples:
  xtree atom _NET_WM_NAME UTF8_STRING
  xtree atom 39 0x1f`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAtom,
}

func init() {
	rootCmd.AddCommand(atomCmd)
}

// atomEntry is the YAML/JSON output of one resolved atom.
type atomEntry struct {
	Name string        `yaml:"name" json:"name"`
	Atom platform.Atom `yaml:"atom" json:"atom"`
}

func runAtom(cmd *cobra.Command, args []string) error {
	dir, err := openDirectory()
	if err != nil {
		return err
	}
	defer dir.Close()

	entries, err := resolveAtoms(inspect.NewSymbolResolver(dir, logger), args)
	if err != nil {
		return err
	}

	if output.OutputFormat == output.FormatText {
		for _, e := range entries {
			fmt.Printf("%s = %d\n", e.Name, e.Atom)
		}
		return nil
	}
	return output.Print(entries)
}

func resolveAtoms(symbols *inspect.SymbolResolver, args []string) ([]atomEntry, error) {
	entries := make([]atomEntry, 0, len(args))
	for _, arg := range args {
		if id, err := strconv.ParseUint(arg, 0, 32); err == nil {
			name, err := symbols.Name(platform.Atom(id))
			if err != nil {
				return nil, err
			}
			entries = append(entries, atomEntry{Name: name, Atom: platform.Atom(id)})
			continue
		}
		atom, err := symbols.Atom(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, atomEntry{Name: arg, Atom: atom})
	}
	return entries, nil
}
