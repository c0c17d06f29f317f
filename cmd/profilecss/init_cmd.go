package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .profilecss.yaml config file",
	Long:  `Create a .profilecss.yaml configuration file in the current directory with the default build settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# profilecss configuration
# Docs: https://github.com/yacobolo/profilecss

verbose: false
output-format: text        # text | json

# Build inputs and output (relative to root)
root: .
sources:                   # Concatenated in this order
  - "styles/variables.css"
  - "styles/base.css"
  - "styles/layout.css"
  - "styles/components.css"
  - "styles/profile.css"
excludes: []               # Gitignore-style, applied to glob sources only
output: dist/profile.min.css
max-output-chars: 50000    # Advisory only

minify:
  enabled: true
  precision: 0             # 0 = keep all digits
  preserve:
    - vendor-prefixes

# Host page rules
rules:
  scope-prefix: ".profile-page.profile-custom"
  protected:
    - site-header
    - site-footer
    - notification-dropdown
    - account-dropdown
  z-index-ceiling: 10000
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
