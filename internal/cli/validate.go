package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pesel/internal/report"
	"github.com/vvka-141/pesel/pkg/pesel"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [identifier...]",
		Short: "Check length, digits and check digit",
		Long: `Check identifiers structurally: exactly 11 digits with a matching check digit.

The birth date is not decoded; use "pesel parse" for that.

Examples:
  # Check a single identifier
  pesel validate 44051401359

  # Check a list, one per line
  pesel validate < ids.txt

  # Machine-readable output
  pesel validate 44051401359 44051401358 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args)
		},
	}
}

func runValidate(cmd *cobra.Command, flags *rootFlags, args []string) error {
	env, err := newRunEnv(cmd, flags)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	env.logger.Verbose("Validating %d identifier(s)", len(inputs))

	var rep report.Report
	for _, in := range inputs {
		rep.Add(env.builder.Validity(in))
	}

	if err := env.renderer.Render(cmd.OutOrStdout(), rep); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if rep.HasInvalid() {
		return fmt.Errorf("%w: %d of %d", pesel.ErrInvalidIdentifiers, rep.Summary.Invalid, rep.Summary.Total)
	}
	return nil
}
