package cmd

import (
	"github.com/spf13/cobra"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
	"github.com/msto63/strhelp/internal/render"
)

func newValidateFormatCmd(a *app) *cobra.Command {
	var strict bool

	validateCmd := &cobra.Command{
		Use:   "validate-format <format> [type...]",
		Short: "Check a printf format string against argument types",
		Long: `Checks that a printf format string has one conversion specifier per
argument type, in order, and that each specifier suits its type. Use
'strhelp types' for the accepted type names.

Example:
  strhelp validate-format '%d and %s' int 'char*'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, types := args[0], args[1:]

			err := strhelp.ValidatePrintfFormat(format, types)
			fields := []render.Field{
				{Label: "valid", Value: err == nil},
				{Label: "specifiers", Value: strhelp.CountConversionSpecs(format)},
			}
			if err != nil {
				fields = append(fields,
					render.Field{Label: "code", Value: sherror.GetCode(err).String()},
					render.Field{Label: "reason", Value: err.Error()})
			}
			a.logger.Debug("validated format", log.String("format", format), log.Bool("valid", err == nil))

			if rerr := a.out.Fields(fields...); rerr != nil {
				return rerr
			}
			if err != nil {
				if strict {
					return a.fail(err)
				}
				a.logger.WarnWithErr("format does not match argument types", err, log.String("format", format))
			}
			return nil
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the format is invalid")

	return validateCmd
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the argument types accepted by validate-format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.out.List(strhelp.KnownFormatTypes())
		},
	}
}
