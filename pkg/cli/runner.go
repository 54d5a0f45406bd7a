// Package cli wires the command line interface. Argument parsing only; the
// business logic lives in pkg/controller.
package cli

import (
	"context"
	"io"

	"github.com/pinbump/pinbump/pkg/cli/initcmd"
	"github.com/pinbump/pinbump/pkg/cli/list"
	"github.com/pinbump/pinbump/pkg/cli/run"
	"github.com/pinbump/pinbump/pkg/cli/token"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:    "pinbump",
		Usage:   "Update GitHub Actions version pins. https://github.com/pinbump/pinbump",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("PINBUMP_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{
					"c",
				},
				Usage:   "configuration file path",
				Sources: cli.EnvVars("PINBUMP_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(r.LogE),
			list.New(r.LogE, r.Stdout),
			initcmd.New(r.LogE),
			token.New(r.LogE, r.Stdin),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
