package profilecss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		css  string
		want []ValidationIssue
	}{
		{
			name: "clean stylesheet",
			css:  ".a{color:red;z-index:5}",
			want: nil,
		},
		{
			name: "scoped rules are a warning",
			css:  ".profile-page.profile-custom .a{color:red}.profile-page.profile-custom .b{color:blue}",
			want: []ValidationIssue{
				{Severity: SeverityWarning, Check: CheckScopePrefix, Message: `found 2 occurrence(s) of scoping prefix ".profile-page.profile-custom"`},
			},
		},
		{
			name: "protected selector reported once however often it appears",
			css:  ".notification-dropdown{display:none}.notification-dropdown a{color:red}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckProtectedSelector, Message: `protected host selector "notification-dropdown" must not be targeted`},
			},
		},
		{
			name: "protected selectors follow the configured order",
			css:  ".account-dropdown{}.site-header{}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckProtectedSelector, Message: `protected host selector "site-header" must not be targeted`},
				{Severity: SeverityError, Check: CheckProtectedSelector, Message: `protected host selector "account-dropdown" must not be targeted`},
			},
		},
		{
			name: "protected selector match is case-sensitive",
			css:  ".Site-Header{color:red}",
			want: nil,
		},
		{
			name: "fixed positioning with and without space",
			css:  ".a{position:fixed}.b{position: fixed}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckFixedPosition, Message: "found 2 fixed positioning declaration(s)"},
			},
		},
		{
			name: "other positioning is fine",
			css:  ".a{position:absolute}.b{position:sticky}",
			want: nil,
		},
		{
			name: "z-index above ceiling",
			css:  ".a{z-index: 10001}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckZIndex, Message: "z-index 10001 exceeds ceiling 10000"},
			},
		},
		{
			name: "z-index at ceiling passes",
			css:  ".a{z-index: 10000}",
			want: nil,
		},
		{
			name: "negative z-index passes",
			css:  ".a{z-index:-99999999999999999999}",
			want: nil,
		},
		{
			name: "z-index beyond int64 exceeds",
			css:  ".a{z-index:99999999999999999999}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckZIndex, Message: "z-index 99999999999999999999 exceeds ceiling 10000"},
			},
		},
		{
			name: "one issue per offending z-index in match order",
			css:  ".a{z-index:20000}.b{z-index:1}.c{z-index:99999}",
			want: []ValidationIssue{
				{Severity: SeverityError, Check: CheckZIndex, Message: "z-index 20000 exceeds ceiling 10000"},
				{Severity: SeverityError, Check: CheckZIndex, Message: "z-index 99999 exceeds ceiling 10000"},
			},
		},
		{
			name: "z-index auto is ignored",
			css:  ".a{z-index:auto}",
			want: nil,
		},
		{
			name: "all checks run in fixed order",
			css:  ".c{z-index:50000}.profile-page.profile-custom .site-footer{position:fixed}",
			want: []ValidationIssue{
				{Severity: SeverityWarning, Check: CheckScopePrefix, Message: `found 1 occurrence(s) of scoping prefix ".profile-page.profile-custom"`},
				{Severity: SeverityError, Check: CheckProtectedSelector, Message: `protected host selector "site-footer" must not be targeted`},
				{Severity: SeverityError, Check: CheckFixedPosition, Message: "found 1 fixed positioning declaration(s)"},
				{Severity: SeverityError, Check: CheckZIndex, Message: "z-index 50000 exceeds ceiling 10000"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.css, rules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	css := ".site-header{z-index:10002;position:fixed}.notification-dropdown{z-index:10003}"

	first := Validate(css, DefaultRules())
	require.Len(t, first, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Validate(css, DefaultRules()))
	}
}

func TestValidate_CustomRules(t *testing.T) {
	rules := Rules{
		ProtectedSelectors: []string{"top-bar", ""},
		ZIndexCeiling:      10,
	}

	got := Validate(".top-bar{z-index:11}.x{z-index:10}", rules)
	require.Len(t, got, 2)
	assert.Equal(t, CheckProtectedSelector, got[0].Check)
	assert.Equal(t, "z-index 11 exceeds ceiling 10", got[1].Message)

	// An empty scope prefix disables the audit
	assert.Empty(t, Validate(".a{}", Rules{ZIndexCeiling: 10}))
}
