package fix

import (
	"context"
	"errors"
	"io"

	"github.com/josephmate/atfix/pkg/config"
	"github.com/josephmate/atfix/pkg/controller/fix"
	"github.com/josephmate/atfix/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, stdout, stderr io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		stdout: stdout,
		stderr: stderr,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	stdout io.Writer
	stderr io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "fix",
		Usage:     "Fix at-clause violations reported in a build log",
		ArgsUsage: "<build log file>",
		Description: `Scan a build log for Javadoc at-clause violations and fix the reported files.

$ atfix fix build.log

Violations are applied from the bottom of the log to the top so that
insertions don't invalidate the line numbers of violations that haven't
been fixed yet.
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report violations without modifying files",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	if c.Args().Len() != 1 {
		return errors.New("atfix fix requires exactly one argument, the build log file path")
	}
	fs := afero.NewOsFs()
	param := &fix.ParamFix{
		LogFilePath:    c.Args().First(),
		ConfigFilePath: c.String("config"),
		Check:          c.Bool("check"),
		Stdout:         r.stdout,
		Stderr:         r.stderr,
	}
	ctrl := fix.New(fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
