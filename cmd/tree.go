package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mj1618/xtree/internal/config"
	"github.com/mj1618/xtree/internal/inspect"
	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var treeCmd = &cobra.Command{
	Use:   "tree [window-id]",
	Short: "Print the window tree below a window",
	Long: `Print a window and, with --recurse, its descendants as a tree.

Names, attributes, geometry and properties are fetched for every window
unless switched off, e.g. --attributes=false or --only properties.
The window id may be decimal or 0x-prefixed hex and defaults to the root
window of the default screen.

Examples:
  xtree tree -r
  xtree tree -r -d 2 --only names
  xtree tree 0x1e00003 --geometry=false --style ascii`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTreeFlags(treeCmd.Flags())
}

func addTreeFlags(flags *pflag.FlagSet) {
	flags.BoolP("recurse", "r", false, "Also query children of the window recursively")
	flags.IntP("max-depth", "d", inspect.Unlimited, "Limit the depth of recursion (-1 = unlimited)")
	flags.BoolP("names", "n", true, "Add _NET_WM_NAME or WM_NAME to each window")
	flags.BoolP("attributes", "a", true, "Add GetWindowAttributes info")
	flags.BoolP("geometry", "g", true, "Add GetGeometry info")
	flags.BoolP("properties", "p", true, "Add ListProperties with decoded GetProperty values")
	flags.StringSlice("only", nil, "Fetch only these categories (names, attributes, geometry, properties)")
	flags.StringP("style", "s", output.StyleCont.String(), "Tree style: "+strings.Join(output.StyleNames(), ", "))
	flags.Bool("flat", false, "Flatten the tree into a list with id paths")
}

// treeSettings is everything a tree run needs, resolved from config and flags.
type treeSettings struct {
	build  inspect.BuildOptions
	render output.TreeOptions
	flat   bool
}

// resolveTreeSettings layers flags the user set over the config file. A
// category is only recorded in the toggles when the config or a flag
// mentions it.
func resolveTreeSettings(flags *pflag.FlagSet, c *config.Config) (treeSettings, error) {
	var s treeSettings

	toggles, err := c.Toggles()
	if err != nil {
		return s, err
	}
	if flags.Changed("only") {
		only, _ := flags.GetStringSlice("only")
		toggles = model.Toggles{}
		for _, cat := range model.Categories {
			toggles[cat] = false
		}
		for _, name := range only {
			cat, err := model.ParseCategory(strings.TrimSpace(name))
			if err != nil {
				return s, err
			}
			toggles[cat] = true
		}
	}
	for _, cat := range model.Categories {
		if flags.Changed(string(cat)) {
			toggles[cat], _ = flags.GetBool(string(cat))
		}
	}

	s.build = inspect.BuildOptions{MaxDepth: inspect.Unlimited, Toggles: toggles}
	if c.Recurse != nil {
		s.build.Recurse = *c.Recurse
	}
	if c.MaxDepth != nil {
		s.build.MaxDepth = *c.MaxDepth
	}
	if flags.Changed("recurse") {
		s.build.Recurse, _ = flags.GetBool("recurse")
	}
	if flags.Changed("max-depth") {
		s.build.MaxDepth, _ = flags.GetInt("max-depth")
	}

	styleName := c.Style
	if flags.Changed("style") || styleName == "" {
		styleName, _ = flags.GetString("style")
	}
	style, err := output.ParseStyle(styleName)
	if err != nil {
		return s, err
	}
	s.render = output.TreeOptions{Style: style, Toggles: toggles}
	s.flat, _ = flags.GetBool("flat")
	return s, nil
}

func runTree(cmd *cobra.Command, args []string) error {
	settings, err := resolveTreeSettings(cmd.Flags(), cfg)
	if err != nil {
		return err
	}
	settings.render.Highlight = highlight()

	dir, err := openDirectory()
	if err != nil {
		return err
	}
	defer dir.Close()

	id := dir.RootWindow()
	if len(args) == 1 {
		if id, err = model.ParseWindowID(args[0]); err != nil {
			return err
		}
	}

	session := inspect.NewSession(dir, logger)
	root, err := session.Build(id, settings.build)
	if err != nil {
		return fmt.Errorf("inspect window %d: %w", id, err)
	}
	logger.Debug("walk complete", "root", id, "windows", session.Len())

	return printTree(root, settings)
}

func printTree(root *model.WindowNode, s treeSettings) error {
	display, _ := rootCmd.PersistentFlags().GetString("display")
	if display == "" {
		display = cfg.Display
	}
	ts := time.Now().Unix()

	if output.OutputFormat == output.FormatText {
		if !s.flat {
			return output.PrintTree(root, s.render)
		}
		for _, w := range model.FlattenWindows(root) {
			fmt.Printf("%s\t%s\n", w.Path, w.DisplayName)
		}
		return nil
	}

	if s.flat {
		return output.Print(output.TreeFlatResult{
			Display: display,
			Root:    root.ID,
			TS:      ts,
			Windows: model.FlattenWindows(root),
		})
	}
	return output.Print(output.TreeResult{Display: display, Root: root.ID, TS: ts, Tree: root})
}
