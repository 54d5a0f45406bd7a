// Package config loads the optional .pinbump.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Files         []*File         `json:"files,omitempty" jsonschema:"description=Target files. If files are passed via positional command line arguments, this is ignored"`
	IgnoreActions []*IgnoreAction `json:"ignore_actions,omitempty" yaml:"ignore_actions" jsonschema:"description=Actions that pinbump never updates"`
}

type File struct {
	Pattern string `json:"pattern" jsonschema:"description=A glob pattern of target files, relative to the configuration file"`
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := path.Match(f.Pattern, "a"); err != nil {
		return fmt.Errorf("parse pattern as a glob: %w", err)
	}
	return nil
}

type IgnoreAction struct {
	Name string `json:"name" jsonschema:"description=The action identifier owner/repo"`
}

func (ia *IgnoreAction) Init() error {
	if ia.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".pinbump.yaml", ".github/pinbump.yaml", ".pinbump.yml", ".github/pinbump.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	for _, ia := range cfg.IgnoreActions {
		if err := ia.Init(); err != nil {
			return fmt.Errorf("initialize ignore_action: %w", err)
		}
	}
	return nil
}
