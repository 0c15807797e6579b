// Package fix implements the core logic of atfix.
// It scans a build log for Javadoc at-clause violations reported by
// checkstyle's JavadocParagraph rule and patches each referenced file by
// inserting a blank comment continuation line before the reported line.
package fix

import (
	"io"

	"github.com/josephmate/atfix/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	param     *ParamFix
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	matchers  []*config.Matcher
	logger    *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamFix struct {
	LogFilePath    string
	ConfigFilePath string
	Check          bool
	Stdout         io.Writer
	Stderr         io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamFix) *Controller {
	return &Controller{
		fs:        fs,
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		matchers:  builtinMatchers,
		logger:    NewLogger(param.Stderr),
	}
}
