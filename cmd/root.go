package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/xtree/internal/config"
	"github.com/mj1618/xtree/internal/output"
	"github.com/mj1618/xtree/internal/platform"
	"github.com/mj1618/xtree/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "xtree",
	Short:        "Inspect the X11 window hierarchy",
	Long:         "A CLI tool that walks the X11 window tree and prints each window's names, attributes, geometry and decoded properties.",
	SilenceUsage: true,
}

var (
	// logger is configured from --verbose before any command runs.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// cfg holds the loaded config file; empty when there is none.
	cfg = &config.Config{}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("display", "", "X display to connect to (default: $DISPLAY)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/xtree/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log directory traffic to stderr")
	rootCmd.PersistentFlags().Bool("raw", false, "Disable smart defaults (terminal highlighting)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		// Explicit flag wins over the config file; text is the fallback.
		format := cfg.Format
		if rootCmd.PersistentFlags().Changed("format") {
			format, _ = rootCmd.PersistentFlags().GetString("format")
		}
		if format == "" {
			format = string(output.FormatText)
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// loadConfig reads --config if given, else the default path when present.
func loadConfig() (*config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path != "" {
		return config.Load(path, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return &config.Config{}, nil
	}
	return config.Load(path, false)
}

// openDirectory connects to the display named by --display or the config.
func openDirectory() (platform.Directory, error) {
	display := cfg.Display
	if rootCmd.PersistentFlags().Changed("display") {
		display, _ = rootCmd.PersistentFlags().GetString("display")
	}
	dir, err := platform.NewDirectory(display)
	if err != nil {
		return nil, err
	}
	logger.Debug("connected", "display", display, "root", dir.RootWindow())
	return dir, nil
}

// highlight reports whether text output should be styled for a terminal.
func highlight() bool {
	raw, _ := rootCmd.PersistentFlags().GetBool("raw")
	return !raw && output.OutputFormat == output.FormatText && !output.IsOutputPiped()
}
