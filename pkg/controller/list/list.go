package list

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goccy/go-yaml"
	"github.com/pinbump/pinbump/pkg/controller/run"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ActionInfo is one listed reference.
type ActionInfo struct {
	FilePath   string `yaml:"file_path"`
	FileName   string `yaml:"file_name"`
	LineNumber int    `yaml:"line_number"`
	ActionName string `yaml:"action_name"`
	Version    string `yaml:"version"`
	Kind       string `yaml:"kind"`
	Comment    string `yaml:"comment,omitempty"`
}

func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	files, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	if len(files) == 0 {
		return run.ErrNoWorkflowFiles
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	infos := []*ActionInfo{}
	for _, file := range files {
		logE := logE.WithField("workflow_file", file)
		fileInfos, err := c.listWorkflow(file)
		if err != nil {
			logerr.WithError(logE, err).Warn("list actions in a workflow")
			continue
		}
		infos = append(infos, fileInfos...)
	}
	return c.output(infos, tmpl)
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	if err := c.cfgReader.Read(c.cfg, p); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	files, err := run.ListWorkflows(c.fs)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return files, nil
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

func (c *Controller) listWorkflow(file string) ([]*ActionInfo, error) {
	b, err := afero.ReadFile(c.fs, file)
	if err != nil {
		return nil, fmt.Errorf("read a workflow file: %w", err)
	}
	infos := []*ActionInfo{}
	for i, line := range strings.Split(string(b), "\n") {
		ref := run.ParseReference(line)
		if ref == nil {
			continue
		}
		infos = append(infos, &ActionInfo{
			FilePath:   file,
			FileName:   filepath.Base(file),
			LineNumber: i + 1,
			ActionName: ref.Action,
			Version:    ref.Version,
			Kind:       ref.Kind().String(),
			Comment:    ref.Comment,
		})
	}
	return infos, nil
}

func (c *Controller) output(infos []*ActionInfo, tmpl *template.Template) error {
	if c.param.Output == "yaml" {
		if err := yaml.NewEncoder(c.stdout).Encode(infos); err != nil {
			return fmt.Errorf("encode actions as YAML: %w", err)
		}
		return nil
	}
	for _, info := range infos {
		if tmpl != nil {
			if err := tmpl.Execute(c.stdout, info); err != nil {
				return fmt.Errorf("execute line template: %w", err)
			}
			fmt.Fprintln(c.stdout)
			continue
		}
		// Default CSV format: <FilePath>,<LineNumber>,<ActionName>,<Version>,<Kind>,<Comment>
		fmt.Fprintf(c.stdout, "%s,%d,%s,%s,%s,%s\n", info.FilePath, info.LineNumber, info.ActionName, info.Version, info.Kind, info.Comment)
	}
	return nil
}
