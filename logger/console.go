package logger

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// console routes levels to stdout/stderr and highlights warnings and errors.
// Only stderr output is ever styled, so color is detected from stderr alone.
// A highlighted line is wrapped in one color span; its text is never changed.
type console struct {
	stdout io.Writer
	stderr io.Writer

	styled *termenv.Output
}

func newConsole(stdout, stderr io.Writer, profile *termenv.Profile) *console {
	var opts []termenv.OutputOption
	if profile != nil {
		opts = append(opts, termenv.WithProfile(*profile))
	}
	return &console{
		stdout: stdout,
		stderr: stderr,
		styled: termenv.NewOutput(stderr, opts...),
	}
}

// render returns the text as it appears on the console for the level.
func (c *console) render(formatted string, level Level) string {
	var color termenv.Color
	switch level {
	case WarnLevel:
		color = termenv.ANSIYellow
	case ErrorLevel:
		color = termenv.ANSIRed
	default:
		return formatted
	}
	if c.styled.Profile == termenv.Ascii {
		return formatted
	}
	return c.styled.String(formatted).Foreground(color).String()
}

func (c *console) writerFor(level Level) io.Writer {
	if level == WarnLevel || level == ErrorLevel {
		return c.stderr
	}
	return c.stdout
}

func (c *console) write(formatted string, level Level) error {
	_, err := fmt.Fprintln(c.writerFor(level), c.render(formatted, level))
	return err
}
