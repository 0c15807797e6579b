package fix

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/josephmate/atfix/pkg/config"
)

// Violation is one reported at-clause diagnostic, localized to a file path
// and a 1-indexed line number.
type Violation struct {
	File string
	Line int
}

// Built-in matchers for the known upstream diagnostic formats.
// checkstyle:
//
//	[checkstyle] [ERROR] <path>:<line>: Javadoc at-clause '@param' should be preceded with an empty line. [JavadocParagraph]
//
// sevntu-checks:
//
//	[ERROR] <path>:[<line>] (javadoc) JavadocParagraph: Javadoc at-clause '@param' should be preceded with an empty line.
var builtinMatchers = []*config.Matcher{
	mustMatcher(`\[checkstyle\] \[ERROR\] (.*):(\d+): Javadoc at-clause '@\w+' should be preceded with an empty line\. \[JavadocParagraph\]`),
	mustMatcher(`\[ERROR\] (.*):\[(\d+)\] \(javadoc\) JavadocParagraph: Javadoc at-clause '@\w+' should be preceded with an empty line\.`),
}

func mustMatcher(pattern string) *config.Matcher {
	m := &config.Matcher{Pattern: pattern}
	if err := m.Init(); err != nil {
		panic(err)
	}
	return m
}

func (c *Controller) scanLog(logFilePath string) ([]*Violation, error) {
	f, err := c.fs.Open(logFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a build log file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	violations := []*Violation{}
	for scanner.Scan() {
		v, err := c.parseLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		if v != nil {
			violations = append(violations, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a build log file: %w", err)
	}
	return violations, nil
}

// parseLine matches a log line against the matchers in order.
// The first matching pattern wins. Non-matching lines aren't an error.
func (c *Controller) parseLine(line string) (*Violation, error) {
	for _, m := range c.matchers {
		path, num, ok := m.Match(line)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("parse a captured line number %q as an integer: %w", num, err)
		}
		return &Violation{File: path, Line: n}, nil
	}
	return nil, nil //nolint:nilnil
}
