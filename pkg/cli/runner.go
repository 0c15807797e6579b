package cli

import (
	"context"
	"io"

	"github.com/josephmate/atfix/pkg/cli/fix"
	"github.com/josephmate/atfix/pkg/cli/initcmd"
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
		Name:    "atfix",
		Usage:   "Fix Javadoc at-clause violations reported by checkstyle. https://github.com/josephmate/atfix",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("ATFIX_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{
					"c",
				},
				Usage:   "configuration file path",
				Sources: cli.EnvVars("ATFIX_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			fix.New(r.LogE, r.Stdout, r.Stderr),
			initcmd.New(r.LogE),
			r.newVersionCommand(),
		},
	}

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
