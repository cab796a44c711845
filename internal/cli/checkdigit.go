package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pesel/pkg/pesel"
)

func newCheckDigitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "checkdigit <10-digit-prefix>",
		Short: "Compute the check digit for a 10-digit prefix",
		Long: `Compute the check digit for the first ten digits of an identifier and
print the complete 11-digit number.

Examples:
  pesel checkdigit 4405140135`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckDigit(cmd, flags, args[0])
		},
	}
}

func runCheckDigit(cmd *cobra.Command, flags *rootFlags, prefix string) error {
	env, err := newRunEnv(cmd, flags)
	if err != nil {
		return err
	}

	digit, err := pesel.CheckDigit(prefix)
	if err != nil {
		return err
	}
	env.logger.Verbose("Check digit for %s is %d", prefix, digit)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", prefix, digit)
	return err
}
