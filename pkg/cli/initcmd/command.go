package initcmd

import (
	"context"

	"github.com/pinbump/pinbump/pkg/controller/initcmd"
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
		Name:  "init",
		Usage: "Create .pinbump.yaml if it doesn't exist",
		Description: `Create .pinbump.yaml if it doesn't exist

$ pinbump init
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = ".pinbump.yaml"
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
