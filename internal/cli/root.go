package cli

import (
	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
	format     string
	mask       bool
	color      string
}

const rootLong = `pesel validates and decodes 11-digit national identification numbers.

Identifiers are read from arguments, or one per line from stdin when no
arguments are given. Blank lines and lines starting with # are skipped.

Configuration is read from ./pesel.yaml (or --config), then PESEL_FORMAT,
PESEL_MASK and PESEL_COLOR (a .env file in the working directory is loaded
first), then flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Missing input (--strict)
  21 - Malformed input (--strict)
  22 - One or more identifiers rejected`

// NewRootCmd builds the full command tree. Each call returns independent
// commands and flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "pesel",
		Short:        "Validate and decode national identification numbers",
		Long:         rootLong,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.StringVar(&flags.configPath, "config", "", "Path to config file (default: ./pesel.yaml if present)")
	pf.StringVarP(&flags.format, "format", "o", "", "Output format: text, json or yaml")
	pf.BoolVar(&flags.mask, "mask", false, "Mask serial digits of echoed identifiers")
	pf.StringVar(&flags.color, "color", "", "Color mode: auto, always or never")

	rootCmd.AddCommand(
		newValidateCmd(flags),
		newParseCmd(flags),
		newCheckDigitCmd(flags),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute(args []string) error {
	if len(args) > 0 && args[0] == "--version" {
		printVersionInfo(NewRootCmd().OutOrStdout())
		return nil
	}
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
