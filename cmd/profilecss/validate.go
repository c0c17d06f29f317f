package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/profilecss"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an existing stylesheet against the host page rules",
	Long: `Run the host-safety checks on a CSS file without building it.
Defaults to the configured output file. Exits 1 on any error-severity issue.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.String("root", ".", "Directory the output path is relative to")
	f.String("output", profilecss.DefaultOutputPath, "File validated when no argument is given")
	f.String("scope-prefix", profilecss.DefaultScopePrefix, "Compound selector that scopes rules to the profile page")
	f.StringSlice("protected", nil, "Host selectors the stylesheet must not reference")
	f.Int64("z-index-ceiling", profilecss.DefaultZIndexCeiling, "Highest allowed z-index")
}

func runValidate(_ *cobra.Command, args []string) error {
	config := buildConfig()

	path := profilecss.OutputFile(config)
	if len(args) == 1 {
		path = args[0]
	}

	// #nosec G304 - path comes from the command line or trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	text := string(content)

	if err := profilecss.CheckSyntax(text); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	issues := profilecss.Validate(text, config.Rules)

	if !getBoolWithFallback("quiet", false) {
		format := profilecss.DetermineOutputFormat(getStringWithFallback("output-format", ""))
		profilecss.WriteValidation(os.Stdout, path, issues, format, buildReportConfig())
	}

	report := profilecss.BuildReport{Issues: issues}
	if code := report.ExitCode(); code != 0 {
		return &exitError{code: code}
	}
	return nil
}
