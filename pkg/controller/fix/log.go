package fix

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger reports each applied fix to stderr, keeping stdout reserved for
// the summary line.
type Logger struct {
	stderr io.Writer
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Output(v *Violation, newLine string) {
	fmt.Fprintf(l.stderr, `%s:%d
%s
`, v.File, v.Line, l.green("+ "+newLine))
}
