package profilecss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Sizes     JSONSizes   `json:"sizes"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains the outcome and issue counts
type JSONSummary struct {
	Outcome     string `json:"outcome"` // "success", "failure"
	TotalIssues int    `json:"total_issues"`
	Errors      int    `json:"errors"`
	Warnings    int    `json:"warnings"`
	Sources     int    `json:"sources"`
	Output      string `json:"output"`
}

// JSONSizes contains size metrics
type JSONSizes struct {
	OriginalChars           int     `json:"original_chars"`
	FinalChars              int     `json:"final_chars"`
	CompressionRatioPercent float64 `json:"compression_ratio_percent"`
	MaxChars                int     `json:"max_chars"`
	CeilingExceeded         bool    `json:"ceiling_exceeded"`
	RestoredFallbacks       int     `json:"restored_fallbacks"`
}

// JSONIssue represents a single validation issue
type JSONIssue struct {
	Severity string `json:"severity"`
	Check    string `json:"check"`
	Message  string `json:"message"`
}

// WriteJSON writes the build report as JSON
func WriteJSON(w io.Writer, report *BuildReport) error {
	output := buildJSONOutput(report, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts BuildReport to JSONOutput
func buildJSONOutput(report *BuildReport, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(report.Issues))
	for i, issue := range report.Issues {
		issues[i] = JSONIssue{
			Severity: issue.Severity,
			Check:    issue.Check,
			Message:  issue.Message,
		}
	}

	outcome := "success"
	if report.Failed() {
		outcome = "failure"
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			Outcome:     outcome,
			TotalIssues: len(report.Issues),
			Errors:      report.ErrorCount(),
			Warnings:    report.WarningCount(),
			Sources:     report.SourceCount,
			Output:      report.OutputPath,
		},
		Sizes: JSONSizes{
			OriginalChars:           report.OriginalSizeChars,
			FinalChars:              report.FinalSizeChars,
			CompressionRatioPercent: report.CompressionRatioPercent,
			MaxChars:                report.MaxOutputChars,
			CeilingExceeded:         report.SizeCeilingExceeded,
			RestoredFallbacks:       report.Restored,
		},
		Issues: issues,
	}
}
