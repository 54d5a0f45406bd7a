package list

import (
	"context"
	"io"

	"github.com/pinbump/pinbump/pkg/config"
	"github.com/pinbump/pinbump/pkg/controller/list"
	"github.com/pinbump/pinbump/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		stdout: stdout,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	stdout io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List action references in workflow files",
		Description: `Output each uses declaration found in workflow files.

$ pinbump list

The default output is CSV: <FilePath>,<LineNumber>,<ActionName>,<Version>,<Kind>,<Comment>.
A Go template or YAML output can be selected instead.

$ pinbump list --format '{{.ActionName}}@{{.Version}}'
$ pinbump list -o yaml
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Go text/template applied to each reference",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (yaml)",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	fs := afero.NewOsFs()
	ctrl := list.New(fs, config.NewFinder(fs), config.NewReader(fs), r.stdout, &list.Param{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    c.String("config"),
		LineTemplate:      c.String("format"),
		Output:            c.String("output"),
	})
	return ctrl.List(ctx, r.logE) //nolint:wrapcheck
}
