package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/core/cache"
	"github.com/msto63/strhelp/foundation/core/log"
	"github.com/msto63/strhelp/internal/render"
	"github.com/msto63/strhelp/pkg/core/config"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile  string
	output   string
	logLevel string
	noColor  bool
	verbose  bool

	cfg    *config.Config
	logger *log.Logger
	out    *render.Renderer
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "strhelp",
		Short: "strhelp - string helpers for data file collections",
		Long: `strhelp groups, decomposes and inspects strings such as the file
names of a simulation database.

Commands:
  group     - group strings by leading characters, directory or alphabet
  basename  - last path component
  dirname   - path without its last component
  find      - locate a POSIX regular expression
  extract   - pull a capture group out of a string
  validate-format - check a printf format against argument types
  plural    - English plural of a noun`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $STRHELP_CONFIG or ./configs/strhelp.toml)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")

	rootCmd.AddCommand(
		newGroupCmd(a),
		newBasenameCmd(a),
		newDirnameCmd(a),
		newFindCmd(a),
		newReplaceCmd(a),
		newExtractCmd(a),
		newValidateFormatCmd(a),
		newTypesCmd(a),
		newPluralCmd(a),
		newASCIICmd(a),
		newRelevantCmd(a),
		newSubstCmd(a),
		newSplitCmd(a),
		newCarCmd(a),
		newCdrCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Execute runs the command line and prints any error to stderr
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the configuration, applies flag overrides and creates the
// logger and renderer for this invocation
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if a.logLevel != "" {
		cfg.General.LogLevel = a.logLevel
	}
	if a.verbose {
		cfg.General.LogLevel = "debug"
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := log.ParseLevel(cfg.General.LogLevel)
	format, _ := log.ParseFormat(cfg.General.LogFormat)
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   cfg.General.Name,
	}).WithRequestID(uuid.NewString()).WithName(cmd.Name())

	outFormat, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	a.out = render.New(cmd.OutOrStdout(), outFormat, !cfg.Output.NoColor)

	cache.Default().Resize(cfg.Cache.MaxPatterns)

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		log.String("output", cfg.Output.Format),
		log.String("ignore", cfg.Grouping.Ignore))
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if sherror.HasCode(err, sherror.CodeNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// fail logs err and returns it for cobra to report
func (a *app) fail(err error) error {
	a.logger.LogError(err)
	return err
}

func printError(w io.Writer, err error) {
	if code := sherror.GetCode(err); code != sherror.CodeUnknown {
		fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
