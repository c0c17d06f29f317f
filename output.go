package profilecss

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from the --output-format flag
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "text", "":
		return OutputText
	default:
		// Invalid format, fall back to the default
		return OutputText
	}
}

// WriteOutput writes the build report in the specified format
func WriteOutput(w io.Writer, report *BuildReport, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, report); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintMetrics(report)
		reporter.PrintIssues(report.Issues)
		reporter.PrintSummary(report.Issues)
	}
}

// WriteValidation writes issues for a stylesheet that was validated without a build
func WriteValidation(w io.Writer, path string, issues []ValidationIssue, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, &BuildReport{OutputPath: path, Issues: issues}); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintValidated(path)
		reporter.PrintIssues(issues)
		reporter.PrintSummary(issues)
	}
}
