package cmd

import (
	"fmt"
	"os"

	"promptcat/pkg/concat"
	"promptcat/pkg/config"
	"promptcat/pkg/diag"
	"promptcat/pkg/logging"
	"promptcat/pkg/notebook"
	"promptcat/pkg/sink"
	"promptcat/pkg/version"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	flagIncludeHidden   bool
	flagIgnoreGitignore bool
	flagIgnorePatterns  []string
	flagNbconvert       string
	flagNbconvertFormat string
	flagOutput          string
	flagDebug           bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "promptcat [paths...]",
	Short: "Promptcat concatenates files into a single delimited text stream",
	Long: `Promptcat walks the given files and directories and concatenates every
text file it finds into a single delimited stream, ready to paste into a
large-language-model prompt.

Paths may also be piped on standard input, one per line; grep-style
path:line:text prefixes are understood. Hidden entries and .gitignore rules
are honored unless overridden, binary files are skipped, and Jupyter
notebooks can be rewritten as markdown or asciidoc before embedding.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	RootCmd.Flags().BoolVar(&flagIncludeHidden, "include-hidden", false, "include dot-prefixed files and directories")
	RootCmd.Flags().BoolVar(&flagIgnoreGitignore, "ignore-gitignore", false, "do not load .gitignore files during traversal")
	RootCmd.Flags().StringArrayVar(&flagIgnorePatterns, "ignore", nil, "glob pattern to exclude (repeatable)")
	RootCmd.Flags().StringVar(&flagNbconvert, "nbconvert", "", "convert .ipynb files with this tool, or 'internal' for the built-in converter")
	RootCmd.Flags().StringVar(&flagNbconvertFormat, "nbconvert-format", "markdown", "notebook output format: markdown or asciidoc")
	RootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "append records to this file instead of stdout")
	RootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.Load()
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, fileCfg)

	logger, err := logging.Setup(flagDebug, "promptcat", version.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	format, err := notebook.ParseFormat(flagNbconvertFormat)
	if err != nil {
		return err
	}

	// Only an interactive terminal suppresses the stdin path list; piped or
	// redirected input is consumed as work items.
	interactive := false
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	roots := concat.ResolveRoots(args, cmd.InOrStdin(), interactive, logger)
	if len(roots) == 0 {
		logger.Debug("No paths to process, showing help")
		return cmd.Help()
	}

	var out *sink.Sink
	if flagOutput != "" {
		out, err = sink.NewFileSink(flagOutput)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
	} else {
		out = sink.NewWriterSink(cmd.OutOrStdout())
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("Failed to close output sink", zap.Error(cerr))
		}
	}()

	errSink := sink.NewWriterSink(cmd.ErrOrStderr())
	defer func() {
		if cerr := errSink.Close(); cerr != nil {
			logger.Warn("Failed to close error sink", zap.Error(cerr))
		}
	}()

	colorize := false
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}
	reporter := diag.NewReporter(errSink, colorize)

	opts := concat.Options{
		IncludeHidden:   flagIncludeHidden,
		IgnoreGitignore: flagIgnoreGitignore,
		IgnorePatterns:  flagIgnorePatterns,
		NbconvertTool:   flagNbconvert,
		NbconvertFormat: format,
	}
	concat.Run(roots, opts, out, reporter, logger)
	return nil
}

// applyConfigDefaults folds the user config file into the flag values. A key
// applies only when the matching flag was left untouched on the command line,
// so explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command, file config.File) {
	flags := cmd.Flags()
	if !flags.Changed("include-hidden") {
		flagIncludeHidden = file.IncludeHidden
	}
	if !flags.Changed("ignore-gitignore") {
		flagIgnoreGitignore = file.IgnoreGitignore
	}
	if !flags.Changed("ignore") && len(file.Ignore) > 0 {
		flagIgnorePatterns = file.Ignore
	}
	if !flags.Changed("nbconvert") && file.Nbconvert != "" {
		flagNbconvert = file.Nbconvert
	}
	if !flags.Changed("nbconvert-format") && file.NbconvertFormat != "" {
		flagNbconvertFormat = file.NbconvertFormat
	}
	if !flags.Changed("debug") {
		flagDebug = file.Debug
	}
}
