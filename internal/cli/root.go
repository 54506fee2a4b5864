// Package cli provides the command-line interface for a11ykit.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/a11ykit/internal/colour"
	"github.com/jmylchreest/a11ykit/internal/config"
	"github.com/jmylchreest/a11ykit/internal/version"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	noColour   bool

	// Loaded by the root command before any subcommand runs.
	appConfig = config.Default()
	logger    = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "a11ykit",
		Short: "An accessibility auditor for UI element snapshots",
		Long: `a11ykit audits captured UI element snapshots for accessibility problems.

It rates foreground/background colour contrast against WCAG 2.0, checks
touch target sizes and accessibility metadata, validates colours against an
approved palette and suggests better-contrast alternatives.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable ANSI colour previews")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(coloursCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if cmd == versionCmd {
		return nil
	}

	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg
	logger = newLogger(cmd.ErrOrStderr(), logLevel(cfg))

	if noColour {
		colour.DisableColourOutput = true
	}

	logger.Debug("configuration loaded",
		"config", configPath,
		"validate_colours", cfg.ValidateColours,
		"approved_colours", len(cfg.ApprovedColours))
	return nil
}

// logLevel resolves the effective level: --verbose and --quiet win over the config.
func logLevel(cfg *config.Config) hclog.Level {
	switch {
	case verbose:
		return hclog.Debug
	case quiet:
		return hclog.Error
	default:
		return cfg.Level()
	}
}

func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "a11ykit",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
