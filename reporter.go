package profilecss

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Console styles by what they mark in a report
var (
	pathStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	severityStyles = map[string]lipgloss.Style{
		SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		SeverityWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
	severityMarkers = map[string]string{
		SeverityError:   "[ERROR]",
		SeverityWarning: "[WARN] ",
	}
)

// Reporter renders build reports for the console
type Reporter struct {
	w              io.Writer
	useColors      bool
	printCheckName bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:              w,
		useColors:      ShouldUseColors(config.UseColors),
		printCheckName: config.PrintCheckName,
	}
}

// ReportConfig controls console rendering
type ReportConfig struct {
	UseColors      bool // Force color output
	PrintCheckName bool // Show (z-index) style suffix on issues
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintMetrics outputs source count, sizes and compression
func (r *Reporter) PrintMetrics(report *BuildReport) {
	fmt.Fprintf(r.w, "Built %s\n", r.render(pathStyle, report.OutputPath))
	fmt.Fprintf(r.w, "  Sources:      %d\n", report.SourceCount)
	fmt.Fprintf(r.w, "  Original:     %d chars\n", report.OriginalSizeChars)
	fmt.Fprintf(r.w, "  Minified:     %d chars\n", report.FinalSizeChars)
	fmt.Fprintf(r.w, "  Compression:  %.2f%%\n", report.CompressionRatioPercent)
	if report.Restored > 0 {
		fmt.Fprintf(r.w, "  Restored:     %s\n", pluralizeCount(report.Restored, "backdrop-filter fallback", "backdrop-filter fallbacks"))
	}

	if report.SizeCeilingExceeded {
		fmt.Fprintln(r.w, r.render(severityStyles[SeverityWarning],
			fmt.Sprintf("  Output is %d chars, above the advisory limit of %d", report.FinalSizeChars, report.MaxOutputChars)))
	}
}

// PrintIssues outputs issues in validation order
func (r *Reporter) PrintIssues(issues []ValidationIssue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: marker, message, optional check name
func (r *Reporter) printIssue(issue ValidationIssue) {
	marker := r.render(severityStyles[issue.Severity], severityMarkers[issue.Severity])

	checkSuffix := ""
	if r.printCheckName && issue.Check != "" {
		checkSuffix = fmt.Sprintf(" (%s)", issue.Check)
	}

	fmt.Fprintf(r.w, "%s %s%s\n", marker, issue.Message, r.render(checkStyle, checkSuffix))
}

// PrintSummary outputs the issue count summary and the outcome
func (r *Reporter) PrintSummary(issues []ValidationIssue) {
	errors := countSeverity(issues, SeverityError)
	warnings := countSeverity(issues, SeverityWarning)

	fmt.Fprintln(r.w, "")
	if len(issues) > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(len(issues), "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}

	if errors > 0 {
		fmt.Fprintln(r.w, r.render(severityStyles[SeverityError], "Build failed"))
		return
	}
	fmt.Fprintln(r.w, r.render(successStyle, "Build succeeded"))
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// PrintValidated outputs the header for a standalone validation run
func (r *Reporter) PrintValidated(path string) {
	fmt.Fprintf(r.w, "Validated %s\n", r.render(pathStyle, path))
}

func (r *Reporter) render(style lipgloss.Style, text string) string {
	if !r.useColors || text == "" {
		return text
	}
	return style.Render(text)
}

// RenderError styles a fatal error message the way the report marks errors.
func RenderError(text string, useColors bool) string {
	if !useColors {
		return text
	}
	return severityStyles[SeverityError].Render(text)
}
