package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/profilecss"
)

const defaultConfigPath = ".profilecss.yaml"

var k = koanf.New(".")

// flagConfigKeys maps flag names to the config keys they override.
// Flags not listed use their own name as key.
var flagConfigKeys = map[string]string{
	"source":          "sources",
	"exclude":         "excludes",
	"precision":       "minify.precision",
	"scope-prefix":    "rules.scope-prefix",
	"protected":       "rules.protected",
	"z-index-ceiling": "rules.z-index-ceiling",
}

// listKeys are split on commas when they come from environment variables.
var listKeys = map[string]bool{
	"sources":         true,
	"excludes":        true,
	"minify.preserve": true,
	"rules.protected": true,
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		if f.Name == "no-minify" {
			disabled, _ := flags.GetBool(f.Name)
			return "minify.enabled", !disabled
		}
		key := f.Name
		if mapped, ok := flagConfigKeys[f.Name]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PROFILECSS_* prefix)
	if err := k.Load(env.ProviderWithValue("PROFILECSS_", ".", func(key, value string) (string, interface{}) {
		key = envKey(key)
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
// PROFILECSS_RULES__Z_INDEX_CEILING -> rules.z-index-ceiling
// PROFILECSS_OUTPUT -> output
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, "PROFILECSS_"))
	parts := strings.Split(key, "__")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, "_", "-")
	}
	return strings.Join(parts, ".")
}

// splitList splits a comma-separated value, dropping empty entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() profilecss.Config {
	defaults := profilecss.DefaultConfig()

	config := profilecss.Config{
		Root:       getStringWithFallback("root", defaults.Root),
		Sources:    getStringsWithFallback("sources", defaults.Sources),
		Excludes:   getStringsWithFallback("excludes", defaults.Excludes),
		OutputPath: getStringWithFallback("output", defaults.OutputPath),
		Minifier: profilecss.MinifierConfig{
			Enabled:   getBoolWithFallback("minify.enabled", defaults.Minifier.Enabled),
			Precision: getIntWithFallback("minify.precision", defaults.Minifier.Precision),
		},
		Rules: profilecss.Rules{
			ScopePrefix:        getStringWithFallback("rules.scope-prefix", defaults.Rules.ScopePrefix),
			ProtectedSelectors: getListWithFallback("rules.protected", defaults.Rules.ProtectedSelectors),
			ZIndexCeiling:      k.Int64("rules.z-index-ceiling"),
		},
		MaxOutputChars: getIntWithFallback("max-output-chars", defaults.MaxOutputChars),
	}

	if !k.Exists("rules.z-index-ceiling") {
		config.Rules.ZIndexCeiling = defaults.Rules.ZIndexCeiling
	}

	for _, feature := range getListWithFallback("minify.preserve", featureNames(defaults.Minifier.PreserveFeatures)) {
		config.Minifier.PreserveFeatures = append(config.Minifier.PreserveFeatures, profilecss.Feature(feature))
	}

	return config
}

// buildReportConfig constructs console rendering options from koanf state.
func buildReportConfig() profilecss.ReportConfig {
	return profilecss.ReportConfig{
		UseColors:      getBoolWithFallback("color", false),
		PrintCheckName: getBoolWithFallback("print-check-name", true),
	}
}

// getStringWithFallback returns the configured string, or defaultVal when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback returns the configured list, or defaultVal when unset or empty.
func getStringsWithFallback(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getListWithFallback returns the configured list, or defaultVal when the key is
// unset. Unlike getStringsWithFallback, an explicit empty list is kept.
func getListWithFallback(key string, defaultVal []string) []string {
	if k.Exists(key) {
		return k.Strings(key)
	}
	return defaultVal
}

func featureNames(features []profilecss.Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return names
}

// getBoolWithFallback returns the configured bool, or defaultVal when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the configured int, or defaultVal when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
