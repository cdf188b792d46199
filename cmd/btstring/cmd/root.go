package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/bt-tools/btstring/foundation/core/error"
	"github.com/bt-tools/btstring/foundation/core/errors"
	"github.com/bt-tools/btstring/foundation/core/log"
	"github.com/bt-tools/btstring/internal/settings"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	text      string

	settings *settings.Settings
	logger   *log.Logger
}

// Execute runs the btstring command line against the process arguments
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCommand builds a fresh command tree. Each call has its own flag
// state, so tests can run commands repeatedly.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "btstring",
		Short: "String utilities: balanced splitting, tags, counts and chunks",
		Long: `btstring exposes the stringx helpers on the command line.

Input text is taken from --text or, when the flag is absent, from stdin.
Settings come from --config, a discovered btstring.toml/.yaml, BTSTRING_*
environment variables and the built-in defaults, in that order.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
	}

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("parse_flags").
			Message("invalid flags for " + c.CommandPath()).
			Cause(err).
			Code(errors.CodeInvalidInput).
			Severity(mdwerror.SeverityLow).
			Build()
	})

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered btstring.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json|text|console|logfmt")
	root.PersistentFlags().StringVar(&a.text, "text", "", "input text (default: read stdin)")

	root.AddCommand(
		newBalanceCmd(a),
		newFirstCmd(a),
		newSegmentsCmd(a),
		newKVCmd(a),
		newTrimCmd(a),
		newDropCmd(a),
		newRandomCmd(a),
		newFindCmd(a),
		newStripCmd(a),
		newCountCmd(a),
		newChunkCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	// errors before the settings exist still need a logger
	a.logger = settings.BootLogger(cmd.ErrOrStderr())

	s, err := settings.Load(a.cfgFile, a.logger.WithLevel(a.bootLevel()))
	if err != nil {
		a.logger.LogError(err)
		return err
	}
	if a.logFormat != "" {
		format, err := log.ParseFormat(a.logFormat)
		if err != nil {
			err = errors.InvalidInput(errors.ModuleCLI, "log_format", a.logFormat, "json|text|console|logfmt")
			a.logger.LogError(err)
			return err
		}
		s.Log.Format = format
	}

	a.settings = s
	a.logger = s.Logger(cmd.ErrOrStderr(), a.verbose).
		WithCorrelationID(uuid.New().String()).
		WithField("command", cmd.Name())

	a.logger.Debug("invocation started", log.Fields{"args": args})
	return nil
}

func (a *app) bootLevel() log.Level {
	if a.verbose {
		return log.LevelDebug
	}
	return log.LevelInfo
}

// run wraps a command body: successful runs are timed at debug level,
// failures are logged with their error details
func (a *app) run(operation string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.logger.StartTimer(operation)
		if err := fn(cmd, args); err != nil {
			a.logger.LogError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

// ExitCode maps an error returned by Execute to a process exit status:
// 0 on success, 2 for usage and input errors, 1 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
