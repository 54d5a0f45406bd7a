// Package initcmd scaffolds the configuration file.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# pinbump - https://github.com/pinbump/pinbump
# files:
#   - pattern: .github/workflows/*.yaml
#   - pattern: "*/action.yaml"

ignore_actions:
# - name: actions/checkout
`
	filePermission os.FileMode = 0o644
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init writes the configuration template unless the file already exists.
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
