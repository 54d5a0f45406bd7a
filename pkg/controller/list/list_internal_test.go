package list

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pinbump/pinbump/pkg/config"
	"github.com/pinbump/pinbump/pkg/controller/run"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const testWorkflow = `name: test
jobs:
  test:
    steps:
      - uses: actions/checkout@8e5e7e5ab8b370d6c329ec480221332ada57f0ab # v3.5.2
      - uses: actions/setup-go@v5
      - run: echo hello
`

func TestController_List(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		files map[string]string
		param *Param
		exp   string
		isErr bool
	}{
		{
			name: "default CSV",
			files: map[string]string{
				".github/workflows/test.yaml": testWorkflow,
			},
			param: &Param{},
			exp: `.github/workflows/test.yaml,5,actions/checkout,8e5e7e5ab8b370d6c329ec480221332ada57f0ab,hash,v3.5.2
.github/workflows/test.yaml,6,actions/setup-go,v5,tag,
`,
		},
		{
			name: "line template",
			files: map[string]string{
				".github/workflows/test.yaml": testWorkflow,
			},
			param: &Param{
				LineTemplate: "{{.ActionName}}@{{.Version}}",
			},
			exp: `actions/checkout@8e5e7e5ab8b370d6c329ec480221332ada57f0ab
actions/setup-go@v5
`,
		},
		{
			name:  "no workflow files",
			files: map[string]string{},
			param: &Param{},
			isErr: true,
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for file, content := range d.files {
				if err := afero.WriteFile(fs, file, []byte(content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			buf := &bytes.Buffer{}
			ctrl := New(fs, config.NewFinder(fs), config.NewReader(fs), buf, d.param)
			err := ctrl.List(t.Context(), logE)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error is expected")
			}
			if buf.String() != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, buf.String())
			}
		})
	}
}

func TestController_List_noWorkflowFiles(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	buf := &bytes.Buffer{}
	ctrl := New(fs, config.NewFinder(fs), config.NewReader(fs), buf, &Param{})
	logE := logrus.NewEntry(logrus.New())
	if err := ctrl.List(t.Context(), logE); !errors.Is(err, run.ErrNoWorkflowFiles) {
		t.Fatalf("wanted ErrNoWorkflowFiles, got %v", err)
	}
}
