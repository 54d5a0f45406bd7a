package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	data := []struct {
		name           string
		files          []string
		configFilePath string
		exp            string
	}{
		{
			name: "no configuration file",
		},
		{
			name:           "explicit path wins",
			files:          []string{".pinbump.yaml"},
			configFilePath: "custom.yaml",
			exp:            "custom.yaml",
		},
		{
			name:  "root before .github",
			files: []string{".github/pinbump.yaml", ".pinbump.yaml"},
			exp:   ".pinbump.yaml",
		},
		{
			name:  ".github fallback",
			files: []string{".github/pinbump.yaml"},
			exp:   ".github/pinbump.yaml",
		},
		{
			name:  "yml extension",
			files: []string{".pinbump.yml"},
			exp:   ".pinbump.yml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, file := range d.files {
				if err := afero.WriteFile(fs, file, []byte("{}\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			p, err := NewFinder(fs).Find(d.configFilePath)
			if err != nil {
				t.Fatal(err)
			}
			if p != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, p)
			}
		})
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()
	data := []struct {
		name           string
		content        string
		configFilePath string
		exp            *Config
		isErr          bool
	}{
		{
			name: "no configuration file",
			exp:  &Config{},
		},
		{
			name:           "files and ignore_actions",
			configFilePath: ".pinbump.yaml",
			content: `files:
  - pattern: .github/workflows/*.yaml
ignore_actions:
  - name: actions/checkout
`,
			exp: &Config{
				Files: []*File{
					{Pattern: ".github/workflows/*.yaml"},
				},
				IgnoreActions: []*IgnoreAction{
					{Name: "actions/checkout"},
				},
			},
		},
		{
			name:           "empty pattern",
			configFilePath: ".pinbump.yaml",
			content: `files:
  - pattern: ""
`,
			isErr: true,
		},
		{
			name:           "empty ignored action name",
			configFilePath: ".pinbump.yaml",
			content: `ignore_actions:
  - name: ""
`,
			isErr: true,
		},
		{
			name:           "broken YAML",
			configFilePath: ".pinbump.yaml",
			content:        "files: [",
			isErr:          true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.configFilePath != "" {
				if err := afero.WriteFile(fs, d.configFilePath, []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg := &Config{}
			err := NewReader(fs).Read(cfg, d.configFilePath)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error is expected")
			}
			if diff := cmp.Diff(d.exp, cfg); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
