package run

import (
	"context"
	"os"

	"github.com/pinbump/pinbump/pkg/config"
	"github.com/pinbump/pinbump/pkg/controller/run"
	"github.com/pinbump/pinbump/pkg/github"
	"github.com/pinbump/pinbump/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Update GitHub Actions version pins",
		Description: `By default pinbump advances commit hash pins to the latest release.

$ pinbump run

If no argument is passed, pinbump searches workflow files from .github/workflows.
You can also pass workflow file paths as arguments.

$ pinbump run .github/actions/foo/action.yaml .github/actions/bar/action.yaml

With -m, tag pins are migrated to commit hash pins instead.

$ pinbump run -m
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "action",
				Aliases: []string{"a"},
				Usage:   "Target action (owner/repo). May be repeated. If set, other actions aren't updated",
			},
			&cli.BoolFlag{
				Name:    "migrate",
				Aliases: []string{"m"},
				Usage:   "Convert tag pins to commit hash pins instead of advancing hash pins",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Report changes without writing files",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Surface underlying error details",
			},
			&cli.StringFlag{
				Name:  "sarif",
				Usage: "Write findings to a SARIF file",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	logLevel := c.String("log-level")
	if c.Bool("verbose") && logLevel == "" {
		logLevel = "debug"
	}
	log.SetLevel(logLevel, r.logE)
	gh := github.New(ctx, r.logE)
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    c.String("config"),
		Actions:           c.StringSlice("action"),
		SarifPath:         c.String("sarif"),
		Migrate:           c.Bool("migrate"),
		DryRun:            c.Bool("dry-run"),
		Stderr:            os.Stderr,
	}
	ctrl := run.New(gh.Repositories, gh.Git, fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
