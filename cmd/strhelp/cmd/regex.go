package cmd

import (
	"github.com/spf13/cobra"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
	"github.com/msto63/strhelp/internal/render"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <text> <pattern>",
		Short: "Print the offset of the first POSIX regex match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]

			offset := strhelp.FindRE(text, pattern)
			a.logger.Debug("find", log.String("pattern", pattern), log.Int("offset", offset))

			if offset == strhelp.FindError {
				return a.fail(sherror.Newf("pattern %q is invalid or matched at the end of the text", pattern).
					WithCode(sherror.CodeInvalidPattern).
					WithOperation("find").
					WithDetail("pattern", pattern))
			}

			return a.out.Fields(
				render.Field{Label: "offset", Value: offset},
				render.Field{Label: "matched", Value: offset != strhelp.FindNone},
			)
		},
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <text> <pattern> <replacement>",
		Short: "Replace the first match and everything after it",
		Long: `Replaces the first match of a POSIX regular expression, together with
the rest of the text, by the replacement. Patterns are usually anchored with
'$' so only a suffix is rewritten.

Example:
  strhelp replace class 'ss$' sses`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, replaced := strhelp.ReplaceRE(args[0], args[1], args[2])
			a.logger.Debug("replace", log.String("pattern", args[1]), log.Bool("replaced", replaced))

			return a.out.Fields(
				render.Field{Label: "result", Value: result},
				render.Field{Label: "replaced", Value: replaced},
			)
		},
	}
}

func newExtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <text> <wrapped-pattern>",
		Short: "Extract a capture group from text",
		Long: `Extracts a capture group from text. The pattern is written as
'<REGEX>' for the whole match or '<REGEX> \N' for capture group N.

Example:
  strhelp extract run_23_0010_yana.silo '<.*_([0-9]{4})_.*\..*> \1'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strhelp.ExtractRESubstr(args[0], args[1])
			if err != nil {
				return a.fail(err)
			}
			a.logger.Debug("extract", log.String("pattern", args[1]), log.String("value", value))

			return a.out.Fields(render.Field{Label: "value", Value: value})
		},
	}
}
