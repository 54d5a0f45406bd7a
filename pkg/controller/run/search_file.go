package run

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		for _, p := range c.param.WorkflowFilePaths {
			f, err := afero.Exists(c.fs, p)
			if err != nil {
				return nil, fmt.Errorf("check if %s exists: %w", p, err)
			}
			if !f {
				return nil, logerr.WithFields(errors.New("the workflow file isn't found"), logrus.Fields{ //nolint:wrapcheck
					"workflow_file": p,
				})
			}
		}
		return c.param.WorkflowFilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	return ListWorkflows(c.fs)
}

func (c *Controller) searchFilesByGlob() ([]string, error) {
	files := []string{}
	configFileDir := filepath.Dir(c.param.ConfigFilePath)
	for _, file := range c.cfg.Files {
		matches, err := afero.Glob(c.fs, filepath.Join(configFileDir, file.Pattern))
		if err != nil {
			return nil, fmt.Errorf("search target files: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// ListWorkflows discovers workflow and composite action files with the
// default glob patterns.
func ListWorkflows(fs afero.Fs) ([]string, error) {
	patterns := []string{
		".github/workflows/*.yml",
		".github/workflows/*.yaml",
		"action.yml",
		"action.yaml",
		"*/action.yml",
		"*/action.yaml",
		"*/*/action.yml",
		"*/*/action.yaml",
	}
	files := []string{}
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("look for workflow or composite action files using glob: %w", logerr.WithFields(err, logrus.Fields{
				"pattern": pattern,
			}))
		}
		files = append(files, matches...)
	}
	return files, nil
}
