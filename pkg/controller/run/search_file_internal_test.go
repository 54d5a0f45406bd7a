package run

import (
	"io"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pinbump/pinbump/pkg/config"
	"github.com/spf13/afero"
)

func Test_searchFiles(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		files []string
		cfg   *config.Config
		param *ParamRun
		exp   []string
		isErr bool
	}{
		{
			name: "default patterns",
			files: []string{
				".github/workflows/test.yaml",
				".github/workflows/release.yml",
				"action.yaml",
				"build/action.yml",
				"js/build/action.yml",
				"README.md",
			},
			param: &ParamRun{},
			exp: []string{
				".github/workflows/release.yml",
				".github/workflows/test.yaml",
				"action.yaml",
				"build/action.yml",
				"js/build/action.yml",
			},
		},
		{
			name: "named files take precedence",
			files: []string{
				".github/workflows/test.yaml",
				".github/workflows/release.yml",
			},
			param: &ParamRun{
				WorkflowFilePaths: []string{".github/workflows/test.yaml"},
			},
			exp: []string{".github/workflows/test.yaml"},
		},
		{
			name:  "named file is missing",
			files: []string{},
			param: &ParamRun{
				WorkflowFilePaths: []string{".github/workflows/missing.yaml"},
			},
			isErr: true,
		},
		{
			name: "config globs",
			files: []string{
				".github/workflows/test.yaml",
				"deploy/workflow.yaml",
			},
			cfg: &config.Config{
				Files: []*config.File{
					{Pattern: "deploy/*.yaml"},
				},
			},
			param: &ParamRun{},
			exp:   []string{"deploy/workflow.yaml"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, file := range d.files {
				if err := afero.WriteFile(fs, file, []byte("name: test\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if d.param.Stderr == nil {
				d.param.Stderr = io.Discard
			}
			ctrl := New(nil, nil, fs, config.NewFinder(fs), config.NewReader(fs), d.param)
			if d.cfg != nil {
				ctrl.cfg = d.cfg
			}
			files, err := ctrl.searchFiles()
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error is expected")
			}
			sort.Strings(files)
			if diff := cmp.Diff(d.exp, files); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
