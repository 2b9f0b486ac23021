package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
	"github.com/msto63/strhelp/internal/render"
)

func newPluralCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plural <word>...",
		Short: "Print the English plural of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plurals := make([]interface{}, len(args))
			for i, w := range args {
				plurals[i] = strhelp.Plural(w)
			}
			a.logger.Debug("pluralized", log.Int("words", len(args)))
			return a.out.Records("word", args, "plural", plurals)
		},
	}
}

func newASCIICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ascii <text>...",
		Short: "Report whether each text is pure ASCII",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]interface{}, len(args))
			for i, text := range args {
				results[i] = strhelp.IsPureASCII(text)
			}
			return a.out.Records("text", args, "ascii", results)
		},
	}
}

func newRelevantCmd(a *app) *cobra.Command {
	var ignore, ignoreChars string

	relevantCmd := &cobra.Command{
		Use:   "relevant <string>...",
		Short: "Print the relevant characters of each string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grouping := a.cfg.Grouping
			if cmd.Flags().Changed("ignore") {
				grouping.Ignore = ignore
				grouping.IgnoreChars = ""
			}
			if cmd.Flags().Changed("ignore-chars") {
				grouping.IgnoreChars = ignoreChars
			}
			cfg := *a.cfg
			cfg.Grouping = grouping
			if err := cfg.Validate(); err != nil {
				return a.fail(err)
			}

			filter := strhelp.NewRelevanceFilter(grouping.IgnoreSet())
			values := make([]interface{}, len(args))
			for i, s := range args {
				values[i] = filter.Relevant(s)
			}
			return a.out.Records("string", args, "relevant", values)
		},
	}
	relevantCmd.Flags().StringVar(&ignore, "ignore", "", "ignore set: default, path or none")
	relevantCmd.Flags().StringVar(&ignoreChars, "ignore-chars", "", "explicit characters to ignore")

	return relevantCmd
}

func newSubstCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subst <source> <before> <after>",
		Short: "Replace every occurrence of a literal substring",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.out.Fields(render.Field{Label: "result", Value: strhelp.Replace(args[0], args[1], args[2])})
		},
	}
}
