package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/profilecss"
	"github.com/yacobolo/profilecss/internal/logging"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build, validate and publish the stylesheet",
	Long: `Read the configured sources in order, concatenate and minify them,
restore the backdrop-filter fallback the minifier drops, validate the result
and write it to the output path. Exits 1 on any error-severity issue.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd.Flags())
}

// addBuildFlags registers the flags shared by build, watch and the root command.
func addBuildFlags(f *pflag.FlagSet) {
	f.String("root", ".", "Directory sources and output are relative to")
	f.StringSlice("source", nil, "Ordered source files or glob patterns")
	f.StringSlice("exclude", nil, "Gitignore-style patterns removed from glob matches")
	f.String("output", profilecss.DefaultOutputPath, "Output file")
	f.Bool("no-minify", false, "Skip the minification engine")
	f.Int("precision", 0, "Significant digits kept in numbers (0 = all)")
	f.Int("max-output-chars", profilecss.DefaultMaxOutputChars, "Advisory size limit for the output")
	f.String("scope-prefix", profilecss.DefaultScopePrefix, "Compound selector that scopes rules to the profile page")
	f.StringSlice("protected", nil, "Host selectors the stylesheet must not reference")
	f.Int64("z-index-ceiling", profilecss.DefaultZIndexCeiling, "Highest allowed z-index")
}

func runBuild(_ *cobra.Command, _ []string) (err error) {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, syncLogger(log))
	}()

	code, err := buildOnce(buildConfig(), log)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// buildOnce runs the pipeline and prints the report. Fatal errors are returned;
// validation failures come back as a non-zero status.
func buildOnce(config profilecss.Config, log *zap.Logger) (int, error) {
	pipeline := profilecss.NewPipeline(log)

	report, err := pipeline.Run(config)
	if err != nil {
		return 1, fmt.Errorf("build failed: %w", err)
	}

	if !getBoolWithFallback("quiet", false) {
		format := profilecss.DetermineOutputFormat(getStringWithFallback("output-format", ""))
		profilecss.WriteOutput(os.Stdout, report, format, buildReportConfig())
	}

	return report.ExitCode(), nil
}

// newLogger builds the zap logger from the verbose and quiet settings
func newLogger() (*zap.Logger, error) {
	level := logging.LevelNormal
	switch {
	case getBoolWithFallback("quiet", false):
		level = logging.LevelNone
	case getBoolWithFallback("verbose", false):
		level = logging.LevelDebug
	}
	useColors := profilecss.ShouldUseColors(getBoolWithFallback("color", false))
	return logging.New(level, useColors, logOutput(), os.Stderr)
}

// logOutput keeps stdout free for reports when they are written as JSON.
func logOutput() io.Writer {
	if profilecss.DetermineOutputFormat(getStringWithFallback("output-format", "")) == profilecss.OutputJSON {
		return os.Stderr
	}
	return os.Stdout
}

// syncLogger flushes the logger. Syncing a console is not supported on every
// platform, so errors for stdout/stderr are ignored.
func syncLogger(log *zap.Logger) error {
	if err := log.Sync(); err != nil && !isConsoleSyncError(err) {
		return fmt.Errorf("flush log: %w", err)
	}
	return nil
}

func isConsoleSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
