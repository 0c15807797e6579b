// Package config handles atfix configuration files.
// The configuration declares additional diagnostic matchers so new upstream
// log formats can be supported without a code change.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Matchers       []*Matcher `yaml:"matchers"`
	ReplaceBuiltin bool       `yaml:"replace_builtin"`
}

// Matcher describes one diagnostic message format.
// Pattern must match a whole log line. PathGroup and LineGroup are the
// capture group indexes of the file path and the line number.
type Matcher struct {
	Pattern   string `yaml:"pattern"`
	PathGroup int    `yaml:"path_group"`
	LineGroup int    `yaml:"line_group"`
	pattern   *regexp.Regexp
}

func (m *Matcher) Init() error {
	if m.Pattern == "" {
		return errors.New("pattern is required")
	}
	if m.PathGroup == 0 {
		m.PathGroup = 1
	}
	if m.LineGroup == 0 {
		m.LineGroup = 2
	}
	p, err := regexp.Compile(m.Pattern)
	if err != nil {
		return fmt.Errorf("compile pattern as a regular expression: %w", err)
	}
	if m.PathGroup > p.NumSubexp() {
		return fmt.Errorf("path_group %d exceeds the number of capture groups %d", m.PathGroup, p.NumSubexp())
	}
	if m.LineGroup > p.NumSubexp() {
		return fmt.Errorf("line_group %d exceeds the number of capture groups %d", m.LineGroup, p.NumSubexp())
	}
	m.pattern = p
	return nil
}

// Match reports whether the whole line matches the pattern, and returns the
// captured file path and line number text.
func (m *Matcher) Match(line string) (string, string, bool) {
	matches := m.pattern.FindStringSubmatch(line)
	if matches == nil || matches[0] != line {
		return "", "", false
	}
	return matches[m.PathGroup], matches[m.LineGroup], true
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".atfix.yaml", ".github/atfix.yaml", ".atfix.yml", ".github/atfix.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, m := range cfg.Matchers {
		if err := m.Init(); err != nil {
			return fmt.Errorf("initialize matcher: %w", err)
		}
	}
	return nil
}
