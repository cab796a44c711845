package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pesel/internal/report"
	"github.com/vvka-141/pesel/pkg/pesel"
)

func newParseCmd(flags *rootFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse [identifier...]",
		Short: "Decode birth date and sex",
		Long: `Validate identifiers and decode their birth date and sex.

By default every input is decoded and rejected inputs are reported inline.
With --strict, processing stops at the first rejected input and the exit code
tells missing (20) from malformed (21) input.

Examples:
  # Decode one identifier
  pesel parse 44051401359

  # Decode a list as YAML with masked serial digits
  pesel parse --format yaml --mask < ids.txt

  # Fail fast
  pesel parse --strict 44051401359 90053201237`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, flags, strict, args)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Stop at the first rejected identifier")
	return cmd
}

func runParse(cmd *cobra.Command, flags *rootFlags, strict bool, args []string) error {
	env, err := newRunEnv(cmd, flags)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	env.logger.Verbose("Parsing %d identifier(s), strict=%v", len(inputs), strict)

	var rep report.Report
	var parseErr error
	for _, in := range inputs {
		if !strict {
			rep.Add(env.builder.Decode(in))
			continue
		}

		id, err := pesel.Parse(in)
		if err != nil {
			parseErr = err
			break
		}
		rep.Add(env.builder.FromIdentifier(id))
	}

	if err := env.renderer.Render(cmd.OutOrStdout(), rep); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if parseErr != nil {
		return parseErr
	}
	if rep.HasInvalid() {
		return fmt.Errorf("%w: %d of %d", pesel.ErrInvalidIdentifiers, rep.Summary.Invalid, rep.Summary.Total)
	}
	return nil
}
