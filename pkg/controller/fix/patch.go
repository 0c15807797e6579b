package fix

import (
	"bufio"
	"fmt"
	"slices"
	"strings"
)

func (c *Controller) patch(v *Violation) error {
	if err := c.patchFile(v); err != nil {
		return fmt.Errorf("process a file %s: %w", v.File, err)
	}
	return nil
}

// patchFile loads the target file fresh, synthesizes a blank comment
// continuation line from the line before the violation, and inserts it
// immediately before the reported line. The file is loaded per violation
// on purpose: an earlier fix may already have shifted its content.
func (c *Controller) patchFile(v *Violation) error {
	lines, err := c.readFile(v.File)
	if err != nil {
		return err
	}
	newLine, err := blankCommentLine(lines, v.Line)
	if err != nil {
		return err
	}
	c.logger.Output(v, newLine)
	if c.param.Check {
		return nil
	}
	lines = slices.Insert(lines, v.Line-1, newLine)
	return c.writeFile(v.File, lines)
}

// blankCommentLine takes the line before the reported one, which must be
// inside a Javadoc block, and keeps everything up to and including the
// first asterisk. "   * @param foo" becomes "   *".
func blankCommentLine(lines []string, lineNumber int) (string, error) {
	// subtract 1 for line numbers being 1-indexed
	// subtract 1 for going to the previous line
	idx := lineNumber - 2
	if idx < 0 || idx >= len(lines) {
		return "", fmt.Errorf("the reported line number %d is out of range (the file has %d lines)", lineNumber, len(lines))
	}
	prev := lines[idx]
	i := strings.Index(prev, "*")
	if i < 0 {
		return "", fmt.Errorf("no comment continuation marker on line %d: %q", lineNumber-1, prev)
	}
	return prev[:i+1], nil
}

func (c *Controller) readFile(path string) ([]string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a file: %w", err)
	}
	return lines, nil
}

func (c *Controller) writeFile(path string, lines []string) error {
	f, err := c.fs.Create(path)
	if err != nil {
		return fmt.Errorf("create a file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("write a file: %w", err)
	}
	return nil
}
