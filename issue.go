package profilecss

// ValidationIssue represents a single host-safety violation
type ValidationIssue struct {
	Severity string `json:"severity"` // "warning", "error"
	Check    string `json:"check"`    // "z-index"
	Message  string `json:"message"`  // "z-index 99999 exceeds ceiling 10000"
}

// IsError reports whether the issue fails the build
func (i ValidationIssue) IsError() bool {
	return i.Severity == SeverityError
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Check names, in the order Validate runs them
const (
	CheckScopePrefix       = "scope-prefix"
	CheckProtectedSelector = "protected-selector"
	CheckFixedPosition     = "fixed-position"
	CheckZIndex            = "z-index"
)

// Issue message formats
const (
	IssueScopePrefix       = "found %d occurrence(s) of scoping prefix %q"
	IssueProtectedSelector = "protected host selector %q must not be targeted"
	IssueFixedPosition     = "found %d fixed positioning declaration(s)"
	IssueZIndex            = "z-index %s exceeds ceiling %d"
)

func countSeverity(issues []ValidationIssue, severity string) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}
