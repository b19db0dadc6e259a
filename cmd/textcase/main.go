// Command textcase applies the textcase operations to text given on the
// command line or read, one input per line, from a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options holds the state shared by all subcommands.
type options struct {
	configFile string
	inputFile  string
	verbose    bool
	noProgress bool

	config Config
	logger *zap.Logger
	// logSink replaces the logger's stderr output when set.
	logSink zapcore.WriteSyncer
}

func newOptions() *options {
	return &options{logger: zap.NewNop()}
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "textcase",
		Short: "Character level case and index operations on text",
		Long: `textcase applies case and index operations to text.

Each subcommand processes every positional argument, or with --file every
line of a file ("-" reads standard input), and prints one result per line.

Examples:
  textcase alternate longstring
  textcase initials --include-space=false "John Smith"
  textcase count --needle ll --file words.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML or TOML file with default option values")
	pf.StringVarP(&opts.inputFile, "file", "f", "", `read inputs from file, one per line ("-" for stdin)`)
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	pf.BoolVar(&opts.noProgress, "no-progress", false, "do not display a progress bar")

	root.AddCommand(
		newAlternateCmd(opts),
		newIsAlternateCmd(opts),
		newTitleCmd(opts),
		newIsTitleCmd(opts),
		newInitialsCmd(opts),
		newIndexAllCmd(opts),
		newIndexOfCmd(opts),
		newCharRightCmd(opts),
		newCharMidCmd(opts),
		newSubstrCmd(opts),
		newCountCmd(opts),
		newReverseCmd(opts),
	)
	root.AddCommand(newClassCmds(opts)...)
	return root
}

// setup loads the configuration file and builds the logger.
func (o *options) setup() error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if o.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if o.logSink != nil {
		enc := zapcore.NewConsoleEncoder(config.EncoderConfig)
		o.logger = zap.New(zapcore.NewCore(enc, o.logSink, config.Level))
	} else {
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		o.logger = logger
	}

	o.config = DefaultConfig()
	if o.configFile != "" {
		cfg, err := LoadConfig(o.configFile)
		if err != nil {
			return err
		}
		o.config = cfg
		o.logger.Debug("Loaded config", zap.String("path", o.configFile))
	}
	if o.noProgress {
		o.config.Progress = false
	}
	return nil
}

// execute runs root and flushes the logger. cobra skips the post run hooks
// when a command fails, so the flush happens here.
func execute(root *cobra.Command, opts *options) error {
	defer func() { _ = opts.logger.Sync() }()
	err := root.Execute()
	if err != nil {
		opts.logger.Debug("Command failed", zap.Error(err))
	}
	return err
}

func main() {
	opts := newOptions()
	if err := execute(newRootCmd(opts), opts); err != nil {
		os.Exit(1)
	}
}
