// Package run implements the core logic for updating GitHub Actions
// version pins. The controller scans workflow files for uses declarations,
// resolves each distinct action (or action and tag) to a target pin via the
// GitHub API, and rewrites the matched references in place. It supports two
// modes: advancing commit hash pins to the latest release, and migrating
// tag pins to commit hash pins.
package run

import (
	"io"

	"github.com/pinbump/pinbump/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	repositoriesService RepositoriesService
	gitService          GitService
	fs                  afero.Fs
	cfg                 *config.Config
	param               *ParamRun
	cache               *resolveCache
	cfgFinder           ConfigFinder
	cfgReader           ConfigReader
	logger              *Logger
	targets             map[string]struct{}
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Actions           []string
	SarifPath         string
	Migrate           bool
	DryRun            bool
	Stderr            io.Writer
}

func New(repositoriesService RepositoriesService, gitService GitService, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	targets := make(map[string]struct{}, len(param.Actions))
	for _, action := range param.Actions {
		targets[action] = struct{}{}
	}
	return &Controller{
		repositoriesService: repositoriesService,
		gitService:          gitService,
		fs:                  fs,
		cfg:                 &config.Config{},
		param:               param,
		cache:               newResolveCache(),
		cfgFinder:           cfgFinder,
		cfgReader:           cfgReader,
		logger:              NewLogger(param.Stderr),
		targets:             targets,
	}
}
