package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/profilecss"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".profilecss.yaml")
	configContent := `
verbose: true
root: web
sources:
  - "css/a.css"
  - "css/b.css"
output: out/site.css
max-output-chars: 1200

minify:
  enabled: false
  precision: 3

rules:
  scope-prefix: ".p.q"
  protected:
    - top-bar
  z-index-ceiling: 500
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "web", k.String("root"))
	assert.Equal(t, 3, k.Int("minify.precision"))
	assert.Equal(t, int64(500), k.Int64("rules.z-index-ceiling"))

	config := buildConfig()
	assert.Equal(t, "web", config.Root)
	assert.Equal(t, []string{"css/a.css", "css/b.css"}, config.Sources)
	assert.Equal(t, "out/site.css", config.OutputPath)
	assert.Equal(t, 1200, config.MaxOutputChars)
	assert.False(t, config.Minifier.Enabled)
	assert.Equal(t, 3, config.Minifier.Precision)
	assert.Equal(t, []profilecss.Feature{profilecss.FeatureVendorPrefixes}, config.Minifier.PreserveFeatures)
	assert.Equal(t, ".p.q", config.Rules.ScopePrefix)
	assert.Equal(t, []string{"top-bar"}, config.Rules.ProtectedSelectors)
	assert.Equal(t, int64(500), config.Rules.ZIndexCeiling)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.profilecss.yaml"))

	assert.Equal(t, profilecss.DefaultConfig(), buildConfig())
}

func TestBuildConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildConfig()
	assert.Equal(t, ".", config.Root)
	assert.Equal(t, profilecss.DefaultSources, config.Sources)
	assert.Equal(t, "dist/profile.min.css", config.OutputPath)
	assert.True(t, config.Minifier.Enabled)
	assert.True(t, config.Minifier.Preserves(profilecss.FeatureVendorPrefixes))
	assert.Equal(t, int64(10000), config.Rules.ZIndexCeiling)
	assert.Equal(t, 50000, config.MaxOutputChars)
	assert.Equal(t, []string{
		"site-header",
		"site-footer",
		"notification-dropdown",
		"account-dropdown",
	}, config.Rules.ProtectedSelectors)
}

func TestBuildConfig_EmptyPreserveList(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".profilecss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("minify:\n  preserve: []\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.False(t, config.Minifier.Preserves(profilecss.FeatureVendorPrefixes))
}

func TestBuildConfig_EmptyProtectedList(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".profilecss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("rules:\n  protected: []\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Empty(t, config.Rules.ProtectedSelectors)
	assert.Empty(t, profilecss.Validate(".site-header{color:red}", config.Rules))
}

func TestGetListWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, []string{"a"}, getListWithFallback("missing", []string{"a"}))

	require.NoError(t, k.Set("present", []string{}))
	assert.Empty(t, getListWithFallback("present", []string{"a"}))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".profilecss.yaml")
	configContent := `
output: from-file.css
rules:
  z-index-ceiling: 500
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("PROFILECSS_OUTPUT", "from-env.css")
	t.Setenv("PROFILECSS_RULES__Z_INDEX_CEILING", "900")
	t.Setenv("PROFILECSS_SOURCES", "a.css, b.css,")
	t.Setenv("PROFILECSS_MINIFY__ENABLED", "false")

	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, "from-env.css", config.OutputPath)
	assert.Equal(t, int64(900), config.Rules.ZIndexCeiling)
	assert.Equal(t, []string{"a.css", "b.css"}, config.Sources)
	assert.False(t, config.Minifier.Enabled)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"PROFILECSS_OUTPUT", "output"},
		{"PROFILECSS_MAX_OUTPUT_CHARS", "max-output-chars"},
		{"PROFILECSS_RULES__Z_INDEX_CEILING", "rules.z-index-ceiling"},
		{"PROFILECSS_MINIFY__PRESERVE", "minify.preserve"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestBuildCommand_FailsOnFixedPositioning(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(".a{color:red}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.css"), []byte(".b{position:fixed}"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"build", "--quiet", "--source", "a.css", "--source", "b.css", "--output", "dist/out.css"})
	err := cmd.Execute()

	var exit *exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.code)

	// Validation errors do not prevent publishing
	data, err := os.ReadFile(filepath.Join(dir, "dist", "out.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".a{color:red}")
	assert.Contains(t, string(data), ".b{position:fixed}")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created and parses back to the defaults
	data, err := os.ReadFile(".profilecss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "sources:")
	assert.Contains(t, string(data), "rules:")

	resetKoanf()
	require.NoError(t, loadConfigFromPath(".profilecss.yaml"))
	assert.Equal(t, profilecss.DefaultConfig(), buildConfig())
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".profilecss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".profilecss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".profilecss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "z-index-ceiling: 10000")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("config.key", false))
	assert.True(t, getBoolWithFallback("config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("config.key", 42))
}
