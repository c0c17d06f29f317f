package profilecss

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// position:fixed with optional whitespace around the colon
	fixedPositionPattern = regexp.MustCompile(`position\s*:\s*fixed`)

	// z-index:<integer>; the sign is captured so negative values parse
	zIndexPattern = regexp.MustCompile(`z-index\s*:\s*(-?\d+)`)
)

// Validate checks CSS text against the host-safety rules.
//
// Every check runs even when an earlier one reported something. Issues come out
// in check order (scope prefix, protected selectors, fixed positioning, z-index)
// and in match order within a check, so the same input always yields the same list.
func Validate(text string, rules Rules) []ValidationIssue {
	var issues []ValidationIssue
	issues = append(issues, checkScopePrefix(text, rules.ScopePrefix)...)
	issues = append(issues, checkProtectedSelectors(text, rules.ProtectedSelectors)...)
	issues = append(issues, checkFixedPosition(text)...)
	issues = append(issues, checkZIndex(text, rules.ZIndexCeiling)...)
	return issues
}

// checkScopePrefix is informational only.
// TODO: make this blocking once the host documents a limit for scoped rules.
func checkScopePrefix(text, prefix string) []ValidationIssue {
	if prefix == "" {
		return nil
	}
	count := strings.Count(text, prefix)
	if count == 0 {
		return nil
	}
	return []ValidationIssue{{
		Severity: SeverityWarning,
		Check:    CheckScopePrefix,
		Message:  fmt.Sprintf(IssueScopePrefix, count, prefix),
	}}
}

// checkProtectedSelectors reports each protected name once, however often it occurs.
func checkProtectedSelectors(text string, names []string) []ValidationIssue {
	var issues []ValidationIssue
	for _, name := range names {
		if name == "" || !strings.Contains(text, name) {
			continue
		}
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			Check:    CheckProtectedSelector,
			Message:  fmt.Sprintf(IssueProtectedSelector, name),
		})
	}
	return issues
}

func checkFixedPosition(text string) []ValidationIssue {
	count := len(fixedPositionPattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return nil
	}
	return []ValidationIssue{{
		Severity: SeverityError,
		Check:    CheckFixedPosition,
		Message:  fmt.Sprintf(IssueFixedPosition, count),
	}}
}

func checkZIndex(text string, ceiling int64) []ValidationIssue {
	var issues []ValidationIssue
	for _, match := range zIndexPattern.FindAllStringSubmatch(text, -1) {
		raw := match[1]
		if !exceedsCeiling(raw, ceiling) {
			continue
		}
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			Check:    CheckZIndex,
			Message:  fmt.Sprintf(IssueZIndex, raw, ceiling),
		})
	}
	return issues
}

// exceedsCeiling treats integers outside the int64 range by their sign.
func exceedsCeiling(raw string, ceiling int64) bool {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return !strings.HasPrefix(raw, "-")
	}
	return value > ceiling
}
