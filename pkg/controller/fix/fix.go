package fix

import (
	"context"
	"fmt"

	"github.com/josephmate/atfix/pkg/config"
	"github.com/sirupsen/logrus"
)

func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	violations, err := c.scanLog(c.param.LogFilePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.param.Stdout, "Fixing %d at-clause violations\n", len(violations))
	for _, v := range orderForSafeApplication(violations) {
		logE := logE.WithFields(logrus.Fields{
			"file": v.File,
			"line": v.Line,
		})
		if err := c.patch(v); err != nil {
			return err
		}
		if c.param.Check {
			logE.Debug("found a violation")
			continue
		}
		logE.Debug("fixed a violation")
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	matchers := make([]*config.Matcher, 0, len(cfg.Matchers)+len(builtinMatchers))
	matchers = append(matchers, cfg.Matchers...)
	if !cfg.ReplaceBuiltin {
		matchers = append(matchers, builtinMatchers...)
	}
	c.matchers = matchers
	return nil
}
