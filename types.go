package profilecss

// SourceDocument is one stylesheet source as read from disk.
type SourceDocument struct {
	Path  string // "styles/base.css"
	Text  string
	Order int // Position in the resolved source list
}

// AggregatedStylesheet is the concatenation of all sources.
type AggregatedStylesheet struct {
	Text      string
	SizeChars int
}

// TransformResult is the minified and repaired stylesheet.
type TransformResult struct {
	Text      string
	SizeChars int
	Restored  int // Unprefixed fallbacks re-inserted by the repair pass
}

// Feature names a minifier transform that must be kept out of the engine's transform set.
type Feature string

// FeatureVendorPrefixes keeps vendor-prefixed declarations untouched.
const FeatureVendorPrefixes Feature = "vendor-prefixes"

// MinifierConfig configures the minification adapter
type MinifierConfig struct {
	Enabled          bool      // Run the minification engine (default: true)
	PreserveFeatures []Feature // [vendor-prefixes]
	Precision        int       // Significant digits for numbers, 0 keeps all
}

// Preserves reports whether feature is in the preserve set.
func (c MinifierConfig) Preserves(feature Feature) bool {
	for _, f := range c.PreserveFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// Rules holds the host-safety constraints checked by Validate
type Rules struct {
	ScopePrefix        string   // ".profile-page.profile-custom"
	ProtectedSelectors []string // Host-owned selectors the widget must never target
	ZIndexCeiling      int64    // Highest z-index allowed (inclusive)
}

// Config holds pipeline configuration
type Config struct {
	Root           string   // Directory that source patterns and OutputPath are relative to
	Sources        []string // Ordered literal paths or doublestar globs
	Excludes       []string // Gitignore-style patterns removed from glob matches
	OutputPath     string   // "dist/profile.min.css"
	Minifier       MinifierConfig
	Rules          Rules
	MaxOutputChars int // Advisory size ceiling for the published stylesheet
}

// Default configuration values
const (
	DefaultScopePrefix    = ".profile-page.profile-custom"
	DefaultZIndexCeiling  = 10000
	DefaultOutputPath     = "dist/profile.min.css"
	DefaultMaxOutputChars = 50000
)

// DefaultSources is the ordered list of stylesheets making up the widget.
var DefaultSources = []string{
	"styles/variables.css",
	"styles/base.css",
	"styles/layout.css",
	"styles/components.css",
	"styles/profile.css",
}

// DefaultProtectedSelectors are host page components the widget must leave alone.
var DefaultProtectedSelectors = []string{
	"site-header",
	"site-footer",
	"notification-dropdown",
	"account-dropdown",
}

// DefaultRules returns the host-safety rules for the profile page.
func DefaultRules() Rules {
	return Rules{
		ScopePrefix:        DefaultScopePrefix,
		ProtectedSelectors: append([]string(nil), DefaultProtectedSelectors...),
		ZIndexCeiling:      DefaultZIndexCeiling,
	}
}

// DefaultConfig returns the hardcoded build configuration.
func DefaultConfig() Config {
	return Config{
		Root:       ".",
		Sources:    append([]string(nil), DefaultSources...),
		OutputPath: DefaultOutputPath,
		Minifier: MinifierConfig{
			Enabled:          true,
			PreserveFeatures: []Feature{FeatureVendorPrefixes},
		},
		Rules:          DefaultRules(),
		MaxOutputChars: DefaultMaxOutputChars,
	}
}

// BuildReport summarizes a finished build. It is never written to disk by the pipeline.
type BuildReport struct {
	SourceCount             int
	OriginalSizeChars       int
	FinalSizeChars          int
	CompressionRatioPercent float64
	Restored                int
	Issues                  []ValidationIssue
	OutputPath              string
	MaxOutputChars          int
	SizeCeilingExceeded     bool
}

// ErrorCount returns the number of error-severity issues
func (r *BuildReport) ErrorCount() int {
	return countSeverity(r.Issues, SeverityError)
}

// WarningCount returns the number of warning-severity issues
func (r *BuildReport) WarningCount() int {
	return countSeverity(r.Issues, SeverityWarning)
}

// Failed reports whether the build must be treated as a failure.
// Warnings alone never fail a build.
func (r *BuildReport) Failed() bool {
	for _, issue := range r.Issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// ExitCode maps the outcome to a process exit status.
func (r *BuildReport) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText shows metrics and issues for humans (default)
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
