package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/strhelp/foundation/core/cache"
	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "strhelp v%s\n", version.Release)
			for _, c := range version.Components() {
				fmt.Fprintf(out, "  %-11s %s\n", c+":", version.ComponentVersion(c))
			}
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

			hits, misses, _ := cache.Default().Stats()
			a.logger.Debug("regex cache", log.Field("hits", hits).Merge(log.Field("misses", misses)))
			return nil
		},
	}
}
