package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Change(f *Finding) {
	fmt.Fprintf(l.stderr, `%s:%d
%s
%s
`, f.File, f.Line, l.red("- "+f.OldLine), l.green("+ "+f.NewLine))
}
