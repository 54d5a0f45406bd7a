// Package list enumerates the action references found in workflow files
// without rewriting anything.
package list

import (
	"io"

	"github.com/pinbump/pinbump/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *Param
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	stdout    io.Writer
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	LineTemplate      string
	Output            string
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, stdout io.Writer, param *Param) *Controller {
	return &Controller{
		fs:        fs,
		cfg:       &config.Config{},
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		stdout:    stdout,
	}
}
