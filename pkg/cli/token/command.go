package token

import (
	"context"
	"io"

	"github.com/pinbump/pinbump/pkg/controller/token"
	"github.com/pinbump/pinbump/pkg/github"
	"github.com/pinbump/pinbump/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, stdin io.Reader) *cli.Command {
	r := &runner{
		logE:  logE,
		stdin: stdin,
	}
	return r.Command()
}

type runner struct {
	logE  *logrus.Entry
	stdin io.Reader
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the GitHub Access token in the OS keyring",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store the GitHub Access token in the OS keyring",
				Description: `Store the GitHub Access token in the OS keyring.
The token is read from the argument, or from stdin if no argument is passed.

$ pinbump token set
`,
				Action: r.set,
			},
			{
				Name:  "remove",
				Usage: "Remove the GitHub Access token from the OS keyring",
				Aliases: []string{
					"rm",
				},
				Action: r.remove,
			},
		},
	}
}

func (r *runner) set(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	ctrl := token.New(github.NewTokenManager(), r.stdin)
	return ctrl.Set(c.Args().First()) //nolint:wrapcheck
}

func (r *runner) remove(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	ctrl := token.New(github.NewTokenManager(), r.stdin)
	return ctrl.Remove() //nolint:wrapcheck
}
