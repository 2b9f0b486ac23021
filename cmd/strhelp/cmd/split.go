package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strhelp/foundation/utils/strhelp"
	"github.com/msto63/strhelp/internal/render"
)

func newSplitCmd(a *app) *cobra.Command {
	var sep string

	splitCmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text on a separator, dropping empty tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := separator(sep)
			if err != nil {
				return a.fail(err)
			}
			return a.out.List(strhelp.Split(args[0], s))
		},
	}
	splitCmd.Flags().StringVarP(&sep, "sep", "d", ",", "separator character")

	return splitCmd
}

func newCarCmd(a *app) *cobra.Command {
	return newTokenCmd(a, "car", "Print the text before the first separator", strhelp.Car)
}

func newCdrCmd(a *app) *cobra.Command {
	return newTokenCmd(a, "cdr", "Print the text after the first separator", strhelp.Cdr)
}

func newTokenCmd(a *app, name, short string, token func(string, byte) string) *cobra.Command {
	var sep string

	tokenCmd := &cobra.Command{
		Use:   name + " <text>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := separator(sep)
			if err != nil {
				return a.fail(err)
			}
			return a.out.Fields(render.Field{Label: name, Value: token(args[0], s)})
		},
	}
	tokenCmd.Flags().StringVarP(&sep, "sep", "d", ",", "separator character")

	return tokenCmd
}
