package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
)

func newBasenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basename <path>...",
		Short: "Print the last component of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPathParts(args, "basename", strhelp.Basename)
		},
	}
}

func newDirnameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dirname <path>...",
		Short: "Print each path without its last component",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPathParts(args, "dirname", strhelp.Dirname)
		},
	}
}

func (a *app) runPathParts(paths []string, label string, part func(string) string) error {
	values := make([]interface{}, len(paths))
	for i, p := range paths {
		values[i] = part(p)
	}
	a.logger.Debug("split paths", log.String("part", label), log.Int("paths", len(paths)))

	if len(paths) == 1 {
		return a.out.List([]string{values[0].(string)})
	}
	return a.out.Records("path", paths, label, values)
}
