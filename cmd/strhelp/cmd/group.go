package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
)

type groupOptions struct {
	file        string
	leading     int
	ignore      string
	ignoreChars string
	numGroups   int
	groupSize   int
}

func newGroupCmd(a *app) *cobra.Command {
	opts := &groupOptions{}

	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Group strings",
		Long: `Groups strings read from the arguments, --file or stdin.

Examples:
  strhelp group leading --leading 4 mesh_0001 mesh_0002 vel_0001
  strhelp group paths < files.txt
  strhelp group alpha --groups 3 --file names.txt
  strhelp group set --size 10 < names.txt`,
	}
	groupCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "read strings from file, one per line")

	leadingCmd := &cobra.Command{
		Use:   "leading [string...]",
		Short: "Group by leading (or trailing) characters",
		Long: `Sorts the strings by their relevant characters and starts a new group
whenever the first N characters change. A negative N compares the last |N|
characters, zero the whole string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGroupLeading(cmd, args, opts)
		},
	}
	leadingCmd.Flags().IntVarP(&opts.leading, "leading", "n", 0, "number of leading characters (negative: trailing)")
	leadingCmd.Flags().StringVar(&opts.ignore, "ignore", "", "ignore set: default, path or none")
	leadingCmd.Flags().StringVar(&opts.ignoreChars, "ignore-chars", "", "explicit characters to ignore")

	pathsCmd := &cobra.Command{
		Use:   "paths [path...]",
		Short: "Group paths by directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGroupPaths(cmd, args, opts)
		},
	}

	alphaCmd := &cobra.Command{
		Use:   "alpha [string...]",
		Short: "Split sorted strings into a fixed number of groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGroupAlpha(cmd, args, opts)
		},
	}
	alphaCmd.Flags().IntVarP(&opts.numGroups, "groups", "g", 0, "number of groups")

	setCmd := &cobra.Command{
		Use:   "set [string...]",
		Short: "Split the sorted, de-duplicated strings into groups of fixed size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGroupSet(cmd, args, opts)
		},
	}
	setCmd.Flags().IntVarP(&opts.groupSize, "size", "s", 0, "strings per group")

	groupCmd.AddCommand(leadingCmd, pathsCmd, alphaCmd, setCmd)
	return groupCmd
}

func (a *app) runGroupLeading(cmd *cobra.Command, args []string, opts *groupOptions) error {
	list, err := readStrings(cmd, args, opts.file)
	if err != nil {
		return a.fail(err)
	}

	grouping := a.cfg.Grouping
	if cmd.Flags().Changed("leading") {
		grouping.Leading = opts.leading
	}
	if cmd.Flags().Changed("ignore") {
		grouping.Ignore = opts.ignore
		grouping.IgnoreChars = ""
	}
	if cmd.Flags().Changed("ignore-chars") {
		grouping.IgnoreChars = opts.ignoreChars
	}
	cfg := *a.cfg
	cfg.Grouping = grouping
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}

	groups := strhelp.GroupStrings(list, grouping.Leading, grouping.IgnoreSet())
	a.logger.Debug("grouped strings",
		log.Int("strings", len(list)),
		log.Int("leading", grouping.Leading),
		log.Int("groups", len(groups)))

	return a.out.Groups(groups)
}

func (a *app) runGroupPaths(cmd *cobra.Command, args []string, opts *groupOptions) error {
	list, err := readStrings(cmd, args, opts.file)
	if err != nil {
		return a.fail(err)
	}

	groups := strhelp.GroupStringsAsPaths(list)
	a.logger.Debug("grouped paths", log.Int("paths", len(list)), log.Int("groups", len(groups)))

	return a.out.Groups(groups)
}

func (a *app) runGroupAlpha(cmd *cobra.Command, args []string, opts *groupOptions) error {
	list, err := readStrings(cmd, args, opts.file)
	if err != nil {
		return a.fail(err)
	}

	numGroups := a.cfg.Grouping.NumGroups
	if cmd.Flags().Changed("groups") {
		numGroups = opts.numGroups
	}

	buckets, err := strhelp.GroupStringsFixedAlpha(list, numGroups)
	if err != nil {
		return a.fail(err)
	}
	a.logger.Debug("grouped alphabetically", log.Int("strings", len(list)), log.Int("groups", len(buckets)))

	return a.out.Buckets(buckets)
}

func (a *app) runGroupSet(cmd *cobra.Command, args []string, opts *groupOptions) error {
	list, err := readStrings(cmd, args, opts.file)
	if err != nil {
		return a.fail(err)
	}

	groupSize := a.cfg.Grouping.GroupSize
	if cmd.Flags().Changed("size") {
		groupSize = opts.groupSize
	}

	set := slices.Clone(list)
	slices.Sort(set)
	set = slices.Compact(set)

	buckets, err := strhelp.GroupSortedSetFixedAlpha(set, groupSize)
	if err != nil {
		return a.fail(err)
	}
	a.logger.Debug("grouped set",
		log.Int("strings", len(list)),
		log.Int("unique", len(set)),
		log.Int("groups", len(buckets)))

	return a.out.Buckets(buckets)
}
