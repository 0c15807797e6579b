package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# atfix - https://github.com/josephmate/atfix
# Matchers are tried in order. The first matching pattern wins.
# Matchers declared here are tried before the built-in checkstyle patterns.
# matchers:
#   - pattern: '\[WARN\] (.*):(\d+): at-clause should be preceded with an empty line\.'
#     path_group: 1
#     line_group: 2
# Set replace_builtin to true to drop the built-in patterns entirely.
# replace_builtin: false
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a commented template if it
// doesn't exist yet.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
