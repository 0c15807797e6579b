package initcmd

import (
	"context"

	"github.com/josephmate/atfix/pkg/controller/initcmd"
	"github.com/josephmate/atfix/pkg/log"
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
		Usage: "Create .atfix.yaml if it doesn't exist",
		Description: `Create .atfix.yaml if it doesn't exist

$ atfix init

You can also pass a configuration file path.

e.g.

$ atfix init .github/atfix.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = c.String("config")
	}
	if configFilePath == "" {
		configFilePath = ".atfix.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
